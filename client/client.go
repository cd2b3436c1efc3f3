// Package client adalah klien HTTP untuk API nourshop: menelusuri
// katalog, checkout isi keranjang, dan alur admin (login + daftar
// pesanan).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"nourshop-backend/cart"
	"nourshop-backend/models"
)

// ErrEmptyCart dikembalikan ketika checkout dipanggil dengan keranjang
// kosong; tidak ada request yang dikirim.
var ErrEmptyCart = errors.New("cart is empty")

// APIError adalah body error JSON dari server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client memanggil API nourshop. Token diisi setelah Login berhasil dan
// dikirim sebagai bearer header pada endpoint terproteksi.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

// New membuat klien untuk base URL yang diberikan.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
	}
}

// Token mengembalikan token hasil login, kosong jika belum login.
func (c *Client) Token() string {
	return c.token
}

// Products mengambil semua produk katalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// Product mengambil satu produk berdasarkan ID.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product, false); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Checkout mengirim isi keranjang sebagai pesanan baru. Keranjang kosong
// ditolak tanpa request; keranjang dikosongkan hanya jika server berhasil
// menyimpan pesanan.
func (c *Client) Checkout(ctx context.Context, name, phone, address string, crt *cart.Store) (models.Order, error) {
	items := crt.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	payload := map[string]interface{}{
		"name":    name,
		"phone":   phone,
		"address": address,
		"items":   items,
	}

	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", payload, &order, false); err != nil {
		return models.Order{}, err
	}

	if err := crt.Clear(); err != nil {
		return order, err
	}
	return order, nil
}

// Login mengotentikasi admin dan menyimpan token untuk panggilan
// berikutnya.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", payload, &result, false); err != nil {
		return err
	}
	c.token = result.Token
	return nil
}

// Orders mengambil semua pesanan (butuh login), terbaru lebih dulu.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, result interface{}, authed bool) error {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			errBody.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}
