package stores

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
)

// Memory menampung implementasi store di memori, dipakai untuk pengujian
// dan menjalankan server tanpa MongoDB.
type Memory struct {
	Products *MemoryProducts
	Orders   *MemoryOrders
	Admins   *MemoryAdmins
}

// NewMemory membuat store memori kosong untuk semua koleksi.
func NewMemory() *Memory {
	return &Memory{
		Products: &MemoryProducts{},
		Orders:   &MemoryOrders{},
		Admins:   &MemoryAdmins{},
	}
}

// MemoryProducts adalah ProductStore di memori.
type MemoryProducts struct {
	mu       sync.Mutex
	products []models.Product
}

func (s *MemoryProducts) All(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryProducts) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryProducts) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, product)
	return product, nil
}

// MemoryOrders adalah OrderStore di memori.
type MemoryOrders struct {
	mu     sync.Mutex
	orders []models.Order

	AllCalls int
}

func (s *MemoryOrders) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *MemoryOrders) All(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AllCalls++
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	// Terbaru lebih dulu, sama seperti sort createdAt: -1 di MongoDB
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Len mengembalikan jumlah pesanan yang tersimpan.
func (s *MemoryOrders) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// MemoryAdmins adalah AdminStore di memori.
type MemoryAdmins struct {
	mu     sync.Mutex
	admins []models.Admin
}

func (s *MemoryAdmins) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (s *MemoryAdmins) Insert(ctx context.Context, admin models.Admin) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	s.admins = append(s.admins, admin)
	return admin, nil
}
