// File: controllers/order.controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
	"nourshop-backend/stores"
)

// CreateOrder menangani checkout: menyimpan snapshot keranjang sebagai
// pesanan baru. Harga, nama dan gambar tiap item diambil ulang dari
// katalog; nilai kiriman klien tidak dipercaya.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		objectID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := ctrl.Products.FindByID(ctx, objectID)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID.Hex(),
			Name:      product.Name,
			Price:     product.Price,
			Qty:       item.Qty,
			Image:     product.Image,
		})
	}

	order := models.Order{
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}

	order, err := ctrl.Orders.Insert(ctx, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Event hanya notifikasi; pesanan sudah tersimpan, kegagalan publish
	// tidak menggagalkan checkout.
	if ctrl.Events != nil {
		if err := ctrl.Events.PublishOrder(ctx, order); err != nil {
			log.Println("Failed to publish order event:", err)
		}
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders menangani pengambilan semua pesanan (khusus admin),
// terbaru lebih dulu.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.Orders.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
