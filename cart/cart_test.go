package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nourshop-backend/models"
)

func testStorage(t *testing.T) FileStorage {
	t.Helper()
	return FileStorage{Path: filepath.Join(t.TempDir(), "cart.json")}
}

func testProduct(name string, price float64) models.Product {
	return models.Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
		Image: "/img/" + name + ".jpg",
	}
}

func TestItemsEmptyWhenNothingStored(t *testing.T) {
	store, err := NewStore(testStorage(t))
	require.NoError(t, err)
	assert.Empty(t, store.Items())
}

func TestAddMergesByProductID(t *testing.T) {
	store, err := NewStore(testStorage(t))
	require.NoError(t, err)

	p1 := testProduct("lamp", 1000)
	p2 := testProduct("vase", 500)

	require.NoError(t, store.Add(p1))
	require.NoError(t, store.Add(p1))
	require.NoError(t, store.Add(p2))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, p1.ID.Hex(), items[0].ProductID)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, p2.ID.Hex(), items[1].ProductID)
	assert.Equal(t, 1, items[1].Qty)
}

func TestPersistsAcrossReload(t *testing.T) {
	storage := testStorage(t)

	store, err := NewStore(storage)
	require.NoError(t, err)
	p := testProduct("lamp", 1000)
	require.NoError(t, store.Add(p))
	require.NoError(t, store.Add(p))

	reloaded, err := NewStore(storage)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, p.ID.Hex(), items[0].ProductID)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, p.Name, items[0].Name)
	assert.Equal(t, p.Price, items[0].Price)
}

func TestClearRemovesPersistedState(t *testing.T) {
	storage := testStorage(t)

	store, err := NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.Add(testProduct("lamp", 1000)))
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Items())

	reloaded, err := NewStore(storage)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items())
}

func TestTotal(t *testing.T) {
	store, err := NewStore(testStorage(t))
	require.NoError(t, err)

	p1 := testProduct("lamp", 1000)
	p2 := testProduct("vase", 250)
	require.NoError(t, store.Add(p1))
	require.NoError(t, store.Add(p1))
	require.NoError(t, store.Add(p2))

	assert.Equal(t, 2250.0, store.Total())
}
