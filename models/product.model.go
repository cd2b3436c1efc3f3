package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product mendefinisikan struktur untuk produk katalog.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
}

// ProductInput mendefinisikan payload untuk pembuatan produk.
// ImageBase64 bersifat opsional; jika diisi, gambar diunggah ke Cloudinary
// dan field Image diganti dengan URL hasil unggahan.
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageBase64 string  `json:"image_base64"`
}
