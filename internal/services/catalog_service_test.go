// internal/services/catalog_service_test.go
package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/practicebay/practicebay-api/internal/catalog"
	"github.com/practicebay/practicebay-api/internal/database"
	"github.com/practicebay/practicebay-api/internal/models"
)

var errStoreDown = errors.New("store down")

// faultyStore wraps a MemoryStore and fails selected operations.
type faultyStore struct {
	*database.MemoryStore

	mu          sync.Mutex
	failInsert  map[string]error
	failCount   map[string]error
	failFind    map[string]error
	failList    error
	insertCalls map[string]int
}

func newFaultyStore() *faultyStore {
	return &faultyStore{
		MemoryStore: database.NewMemoryStore("test"),
		failInsert:  map[string]error{},
		failCount:   map[string]error{},
		failFind:    map[string]error{},
		insertCalls: map[string]int{},
	}
}

func (f *faultyStore) insertErr(collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls[collection]++
	return f.failInsert[collection]
}

func (f *faultyStore) calls(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertCalls[collection]
}

func (f *faultyStore) Count(ctx context.Context, collection string) (int64, error) {
	if err := f.failCount[collection]; err != nil {
		return 0, err
	}
	return f.MemoryStore.Count(ctx, collection)
}

func (f *faultyStore) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if err := f.insertErr(collection); err != nil {
		return err
	}
	return f.MemoryStore.InsertOne(ctx, collection, doc)
}

func (f *faultyStore) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	if err := f.insertErr(collection); err != nil {
		return err
	}
	return f.MemoryStore.InsertMany(ctx, collection, docs)
}

func (f *faultyStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	if err := f.failFind[collection]; err != nil {
		return nil, err
	}
	return f.MemoryStore.Find(ctx, collection, filter)
}

func (f *faultyStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	if err := f.failFind[collection]; err != nil {
		return nil, err
	}
	return f.MemoryStore.FindOne(ctx, collection, filter)
}

func (f *faultyStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	return f.MemoryStore.ListCollectionNames(ctx)
}

func counts(t *testing.T, store database.Store) map[string]int64 {
	t.Helper()
	out := map[string]int64{}
	for _, c := range models.Collections {
		n, err := store.Count(context.Background(), c)
		require.NoError(t, err)
		out[c] = n
	}
	return out
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		store := database.NewMemoryStore("test")
		source := NewStoreCatalog(store)
		ctx := context.Background()

		for i := 0; i < n; i++ {
			result := source.EnsureSeeded(ctx)
			assert.True(t, result.OK())
			if i == 0 {
				assert.Equal(t, models.Collections, result.Seeded)
			} else {
				assert.Empty(t, result.Seeded)
			}
		}

		assert.Equal(t, map[string]int64{
			models.CollectionProduct:     5,
			models.CollectionTestimonial: 3,
			models.CollectionBundle:      1,
		}, counts(t, store), "after %d passes", n)

		products, err := source.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.Products(), products)

		testimonials, err := source.ListTestimonials(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.Testimonials(), testimonials)
	}
}

func TestConcurrentSeedingDoesNotDuplicate(t *testing.T) {
	store := database.NewMemoryStore("test")
	require.NoError(t, store.EnsureIndexes(context.Background()))
	source := NewStoreCatalog(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = source.ListProducts(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, map[string]int64{
		models.CollectionProduct:     5,
		models.CollectionTestimonial: 3,
		models.CollectionBundle:      1,
	}, counts(t, store))
}

func TestDuplicateProductSeedIsRejectedByIndex(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore("test")
	require.NoError(t, store.EnsureIndexes(ctx))

	// A second process may have seeded products between our count and insert.
	first := NewSeeder(store)
	require.True(t, first.EnsureSeeded(ctx).OK())

	err := store.InsertMany(ctx, models.CollectionProduct, catalog.Documents(models.CollectionProduct))
	assert.ErrorIs(t, err, database.ErrDuplicateKey)
	assert.Equal(t, int64(5), counts(t, store)[models.CollectionProduct])
}

func TestFallbackMatchesSeededStore(t *testing.T) {
	ctx := context.Background()

	fallback, err := NewCatalogSource(nil).ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, fallback, 5)
	assert.Equal(t, catalog.Products(), fallback)

	stored, err := NewCatalogSource(database.NewMemoryStore("test")).ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, fallback, stored)
}

func TestNewCatalogSourceSelectsVariant(t *testing.T) {
	assert.IsType(t, &FallbackCatalog{}, NewCatalogSource(nil))
	assert.IsType(t, &StoreCatalog{}, NewCatalogSource(database.NewMemoryStore("test")))
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	sources := map[string]CatalogSource{
		"fallback": NewFallbackCatalog(),
		"store":    NewStoreCatalog(database.NewMemoryStore("test")),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			p, err := source.GetProduct(ctx, "premium-putting-mat-10ft")
			require.NoError(t, err)
			assert.Equal(t, 129.0, p.Price)
			assert.True(t, p.InStock)
			assert.Equal(t, "Premium 10ft Putting Mat", p.Title)

			_, err = source.GetProduct(ctx, "nonexistent-slug")
			assert.ErrorIs(t, err, ErrProductNotFound)
		})
	}
}

func TestBundleItemsReferenceEveryProduct(t *testing.T) {
	ctx := context.Background()
	sources := map[string]CatalogSource{
		"fallback": NewFallbackCatalog(),
		"store":    NewStoreCatalog(database.NewMemoryStore("test")),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			bundle, err := source.GetBundle(ctx)
			require.NoError(t, err)
			require.NotNil(t, bundle)

			products, err := source.ListProducts(ctx)
			require.NoError(t, err)

			require.Len(t, bundle.Items, len(products))
			for _, p := range products {
				assert.Contains(t, bundle.Items, p.Slug)
			}
			assert.Equal(t, 219.0, bundle.BundlePrice)
		})
	}
}

func TestRepeatedReadsDoNotReseed(t *testing.T) {
	ctx := context.Background()
	store := newFaultyStore()
	source := NewStoreCatalog(store)

	first, err := source.ListTestimonials(ctx)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := source.ListTestimonials(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}

	assert.Equal(t, int64(3), counts(t, store)[models.CollectionTestimonial])
	assert.Equal(t, 1, store.calls(models.CollectionTestimonial))
}

func TestSeedFailureIsIsolatedPerCollection(t *testing.T) {
	ctx := context.Background()
	store := newFaultyStore()
	store.failInsert[models.CollectionTestimonial] = errStoreDown
	source := NewStoreCatalog(store)

	result := source.EnsureSeeded(ctx)
	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Failed[models.CollectionTestimonial], errStoreDown)
	assert.Equal(t, []string{models.CollectionProduct, models.CollectionBundle}, result.Seeded)

	products, err := source.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)

	testimonials, err := source.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, testimonials)

	// The next request retries the failed collection.
	delete(store.failInsert, models.CollectionTestimonial)
	testimonials, err = source.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)
}

func TestCountFailureSkipsCollection(t *testing.T) {
	ctx := context.Background()
	store := newFaultyStore()
	store.failCount[models.CollectionProduct] = errStoreDown

	result := NewSeeder(store).EnsureSeeded(ctx)
	assert.ErrorIs(t, result.Failed[models.CollectionProduct], errStoreDown)
	assert.Equal(t, 0, store.calls(models.CollectionProduct))
	assert.Equal(t, []string{models.CollectionTestimonial, models.CollectionBundle}, result.Seeded)
}

func TestMissingBundleIsAbsentNotAnError(t *testing.T) {
	store := newFaultyStore()
	store.failInsert[models.CollectionBundle] = errStoreDown

	bundle, err := NewStoreCatalog(store).GetBundle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestReadFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := newFaultyStore()
	store.failFind[models.CollectionProduct] = errStoreDown
	source := NewStoreCatalog(store)

	_, err := source.ListProducts(ctx)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = source.GetProduct(ctx, "swing-trainer-aid")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestStoredDocumentsMissingFieldsGetDefaults(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore("test")
	require.NoError(t, store.InsertOne(ctx, models.CollectionProduct, bson.M{
		"title": "Bare",
		"slug":  "bare",
		"price": 10.0,
	}))
	require.NoError(t, store.InsertOne(ctx, models.CollectionTestimonial, bson.M{
		"name":  "Ann",
		"quote": "Fine.",
	}))

	source := NewStoreCatalog(store)

	p, err := source.GetProduct(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProductRating, p.Rating)
	assert.Equal(t, models.DefaultProductCategory, p.Category)
	assert.True(t, p.InStock)
	assert.Equal(t, 0, p.ReviewsCount)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, 10.0, p.Price)

	testimonials, err := source.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, models.DefaultTestimonialRating, testimonials[0].Rating)
	assert.Nil(t, testimonials[0].Photo)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	fallback := NewFallbackCatalog().Status(ctx)
	assert.False(t, fallback.Connected)
	assert.Equal(t, "none", fallback.Backend)

	store := newFaultyStore()
	source := NewStoreCatalog(store)
	source.EnsureSeeded(ctx)

	status := source.Status(ctx)
	assert.True(t, status.Connected)
	assert.Equal(t, "test", status.DatabaseName)
	assert.ElementsMatch(t, models.Collections, status.Collections)
	assert.NoError(t, status.Err)

	store.failList = errStoreDown
	status = source.Status(ctx)
	assert.ErrorIs(t, status.Err, errStoreDown)
	assert.Empty(t, status.Collections)
}
