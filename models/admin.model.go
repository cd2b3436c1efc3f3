package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin mendefinisikan struktur untuk pengguna admin.
// Password hanya menyimpan hash bcrypt dan tidak pernah diserialisasi ke JSON.
type Admin struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
