// internal/database/memory_test.go
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/practicebay/practicebay-api/internal/config"
	"github.com/practicebay/practicebay-api/internal/models"
)

func TestMemoryStoreInsertAndFindPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("test")

	err := store.InsertMany(ctx, "items", []interface{}{
		bson.M{"slug": "b", "n": 1},
		bson.M{"slug": "a", "n": 2},
		bson.M{"slug": "c", "n": 3},
	})
	require.NoError(t, err)

	n, err := store.Count(ctx, "items")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	docs, err := store.Find(ctx, "items", nil)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	var order []string
	for _, d := range docs {
		order = append(order, d.Lookup("slug").StringValue())
		_, err := d.LookupErr("_id")
		assert.Error(t, err, "identity field must not be returned")
	}
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestMemoryStoreFindOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("test")
	require.NoError(t, store.InsertOne(ctx, "items", bson.M{"slug": "a", "price": 12.5}))

	raw, err := store.FindOne(ctx, "items", bson.M{"slug": "a"})
	require.NoError(t, err)
	assert.Equal(t, 12.5, raw.Lookup("price").Double())

	_, err = store.FindOne(ctx, "items", bson.M{"slug": "missing"})
	assert.ErrorIs(t, err, ErrNoDocuments)

	_, err = store.FindOne(ctx, "empty", nil)
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestMemoryStoreUniqueSlugIndex(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("test")
	require.NoError(t, store.EnsureIndexes(ctx))

	require.NoError(t, store.InsertOne(ctx, models.CollectionProduct, bson.M{"slug": "a"}))

	err := store.InsertMany(ctx, models.CollectionProduct, []interface{}{
		bson.M{"slug": "b"},
		bson.M{"slug": "a"},
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	n, err := store.Count(ctx, models.CollectionProduct)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "a rejected batch inserts nothing")

	err = store.InsertMany(ctx, models.CollectionProduct, []interface{}{
		bson.M{"slug": "c"},
		bson.M{"slug": "c"},
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMemoryStoreDecodesIntoModels(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("test")

	desc := "desc"
	require.NoError(t, store.InsertOne(ctx, models.CollectionProduct, models.Product{
		Title:       "Mat",
		Slug:        "mat",
		Description: &desc,
		Price:       10,
		Images:      []string{"https://example.com/a.png"},
	}))

	raw, err := store.FindOne(ctx, models.CollectionProduct, bson.M{"slug": "mat"})
	require.NoError(t, err)

	p, err := models.DecodeProduct(raw)
	require.NoError(t, err)
	assert.Equal(t, "Mat", p.Title)
	assert.Equal(t, "desc", *p.Description)
	assert.Nil(t, p.Video)
	assert.Equal(t, []string{"https://example.com/a.png"}, p.Images)
}

func TestMemoryStoreListCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("test")
	require.NoError(t, store.InsertOne(ctx, "testimonial", bson.M{"name": "x"}))
	require.NoError(t, store.EnsureIndexes(ctx))

	names, err := store.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "testimonial"}, names)
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore("test")
	_, err := store.Count(ctx, "items")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.InsertOne(ctx, "items", bson.M{}), context.Canceled)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.DatabaseConfig{})
	require.NoError(t, err)
	assert.Nil(t, store)
	assert.Equal(t, "none", Describe(store))

	store, err = Open(ctx, config.DatabaseConfig{URL: config.MemoryURL, Name: "bay"})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "bay", store.Name())
	assert.Equal(t, "memory", Describe(store))
	Close(ctx, store)
}
