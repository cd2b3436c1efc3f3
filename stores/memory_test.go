package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
)

func TestMemoryProductsFindByID(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	p, err := mem.Products.Insert(ctx, models.Product{Name: "lamp"})
	require.NoError(t, err)
	require.False(t, p.ID.IsZero())

	got, err := mem.Products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "lamp", got.Name)

	_, err = mem.Products.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryOrdersSortedNewestFirst(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	base := time.Now().UTC()

	// Disisipkan dalam urutan acak.
	for _, offset := range []time.Duration{time.Minute, 3 * time.Minute, 2 * time.Minute} {
		_, err := mem.Orders.Insert(ctx, models.Order{CreatedAt: base.Add(offset)})
		require.NoError(t, err)
	}

	orders, err := mem.Orders.All(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}
}

func TestMemoryAdminsFindByUsername(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_, err := mem.Admins.FindByUsername(ctx, "nour")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = mem.Admins.Insert(ctx, models.Admin{Username: "nour", Password: "hash"})
	require.NoError(t, err)

	admin, err := mem.Admins.FindByUsername(ctx, "nour")
	require.NoError(t, err)
	assert.Equal(t, "hash", admin.Password)
}
