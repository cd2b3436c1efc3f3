package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
)

func TestGetProducts(t *testing.T) {
	mem, _, r := newTestEnv(t)

	_, err := mem.Products.Insert(context.Background(), models.Product{Name: "lamp", Price: 1000})
	require.NoError(t, err)
	_, err = mem.Products.Insert(context.Background(), models.Product{Name: "vase", Price: 500})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestGetProduct(t *testing.T) {
	mem, _, r := newTestEnv(t)

	p, err := mem.Products.Insert(context.Background(), models.Product{Name: "lamp", Price: 1000})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/products/"+p.ID.Hex(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "lamp", got.Name)
}

func TestGetProductNotFound(t *testing.T) {
	_, _, r := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductInvalidID(t *testing.T) {
	_, _, r := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/products/not-an-id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRequiresToken(t *testing.T) {
	mem, _, r := newTestEnv(t)

	body := map[string]interface{}{"name": "lamp", "price": 1000}
	w := doJSON(t, r, http.MethodPost, "/api/products", body, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")

	products, err := mem.Products.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProduct(t *testing.T) {
	mem, _, r := newTestEnv(t)
	headers := map[string]string{"Authorization": "Bearer " + adminToken(t, "adm-1")}

	body := map[string]interface{}{
		"name":        "lamp",
		"price":       1000,
		"image":       "/img/lamp.jpg",
		"description": "a lamp",
		"category":    "lighting",
	}
	w := doJSON(t, r, http.MethodPost, "/api/products", body, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "lamp", created.Name)
	assert.Equal(t, 1000.0, created.Price)

	products, err := mem.Products.All(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	_, _, r := newTestEnv(t)
	headers := map[string]string{"Authorization": "Bearer " + adminToken(t, "adm-1")}

	body := map[string]interface{}{"name": "lamp", "price": -5}
	w := doJSON(t, r, http.MethodPost, "/api/products", body, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
