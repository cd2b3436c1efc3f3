// Package cart mengimplementasikan keranjang belanja sisi klien.
// Isi keranjang hanya hidup di perangkat klien dan baru dikirim ke
// server saat checkout.
package cart

import (
	"encoding/json"
	"fmt"

	"nourshop-backend/models"
)

// Item adalah satu baris keranjang: salinan field produk plus jumlah.
type Item struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

// Store menampung baris keranjang dan menyimpannya lewat Storage
// setiap kali berubah.
type Store struct {
	storage Storage
	items   []Item
}

// NewStore memuat keranjang tersimpan, atau memulai keranjang kosong
// jika belum ada yang tersimpan.
func NewStore(storage Storage) (*Store, error) {
	data, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	store := &Store{storage: storage}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &store.items); err != nil {
			return nil, fmt.Errorf("failed to decode cart: %w", err)
		}
	}
	return store, nil
}

// Add memasukkan produk ke keranjang. Produk yang sudah ada di keranjang
// hanya bertambah jumlahnya; tidak pernah ada dua baris untuk produk yang
// sama.
func (s *Store) Add(product models.Product) error {
	id := product.ID.Hex()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, Item{
			ProductID: id,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Qty:       1,
		})
	}
	return s.save()
}

// Items mengembalikan salinan baris keranjang saat ini.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total mengembalikan jumlah harga seluruh baris.
func (s *Store) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// Clear menghapus semua isi keranjang, termasuk yang tersimpan.
// Dipanggil setelah checkout berhasil.
func (s *Store) Clear() error {
	s.items = nil
	if err := s.storage.Delete(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
