// File: controllers/controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"nourshop-backend/models"
	"nourshop-backend/stores"
)

// OrderPublisher mengirim event pesanan baru ke konsumer eksternal.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order models.Order) error
}

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Cld dan Events boleh nil; fitur terkait dilewati jika tidak dikonfigurasi.
type Controller struct {
	Products        stores.ProductStore
	Orders          stores.OrderStore
	Admins          stores.AdminStore
	Cld             *cloudinary.Cloudinary
	Events          OrderPublisher
	PasetoSecretKey []byte

	// Ping memeriksa koneksi database, diisi dari main.
	Ping func(ctx context.Context) error
}

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if ctrl.Ping != nil {
		if err := ctrl.Ping(ctx); err != nil {
			dbStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}
