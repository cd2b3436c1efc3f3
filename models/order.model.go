package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem adalah salinan nilai dari produk pada saat checkout.
// Perubahan produk setelah pesanan dibuat tidak mempengaruhi pesanan lama.
type OrderItem struct {
	ProductID string  `json:"_id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Qty       int     `json:"qty" bson:"qty"`
	Image     string  `json:"image" bson:"image"`
}

// Order mendefinisikan struktur pesanan yang tersimpan.
// Pesanan bersifat append-only: tidak ada operasi update atau delete.
type Order struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Phone     string             `json:"phone" bson:"phone"`
	Address   string             `json:"address" bson:"address"`
	Items     []OrderItem        `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// OrderItemInput hanya membawa ID produk dan jumlah; harga, nama dan
// gambar diambil ulang dari katalog oleh server.
type OrderItemInput struct {
	ProductID string `json:"_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

// OrderInput mendefinisikan payload checkout.
type OrderInput struct {
	Name    string           `json:"name" binding:"required"`
	Phone   string           `json:"phone" binding:"required"`
	Address string           `json:"address" binding:"required"`
	Items   []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}
