package stores

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
)

// ErrNotFound dikembalikan ketika dokumen yang dicari tidak ada.
var ErrNotFound = errors.New("document not found")

// ProductStore menyediakan akses ke koleksi produk.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Insert(ctx context.Context, product models.Product) (models.Product, error)
}

// OrderStore menyediakan akses ke koleksi pesanan.
// Pesanan bersifat append-only; All mengembalikan pesanan terbaru lebih dulu.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
}

// AdminStore menyediakan akses ke koleksi admin.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (models.Admin, error)
	Insert(ctx context.Context, admin models.Admin) (models.Admin, error)
}
