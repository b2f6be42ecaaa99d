// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/practicebay/practicebay-api/internal/catalog"
	"github.com/practicebay/practicebay-api/internal/database"
	"github.com/practicebay/practicebay-api/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const maxReportedCollections = 10

// CatalogSource answers the catalog read queries. StoreCatalog reads a
// document store and seeds it on every call; FallbackCatalog serves the
// built-in catalog when no store is configured.
type CatalogSource interface {
	EnsureSeeded(ctx context.Context) SeedResult
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	// GetBundle returns nil without error when the store holds no bundle.
	GetBundle(ctx context.Context) (*models.Bundle, error)
	Status(ctx context.Context) SourceStatus
}

type SourceStatus struct {
	Connected    bool
	Backend      string
	DatabaseName string
	Collections  []string
	Err          error
}

// NewCatalogSource picks the source variant once, at startup.
func NewCatalogSource(store database.Store) CatalogSource {
	if store == nil {
		return NewFallbackCatalog()
	}
	return NewStoreCatalog(store)
}

type StoreCatalog struct {
	store  database.Store
	seeder *Seeder
}

func NewStoreCatalog(store database.Store) *StoreCatalog {
	return &StoreCatalog{
		store:  store,
		seeder: NewSeeder(store),
	}
}

func (s *StoreCatalog) EnsureSeeded(ctx context.Context) SeedResult {
	return s.seeder.EnsureSeeded(ctx)
}

func (s *StoreCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.EnsureSeeded(ctx)

	docs, err := s.store.Find(ctx, models.CollectionProduct, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, raw := range docs {
		p, err := models.DecodeProduct(raw)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *StoreCatalog) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	s.EnsureSeeded(ctx)

	raw, err := s.store.FindOne(ctx, models.CollectionProduct, bson.M{"slug": slug})
	if err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p, err := models.DecodeProduct(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *StoreCatalog) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	s.EnsureSeeded(ctx)

	docs, err := s.store.Find(ctx, models.CollectionTestimonial, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	testimonials := make([]models.Testimonial, 0, len(docs))
	for _, raw := range docs {
		t, err := models.DecodeTestimonial(raw)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, nil
}

func (s *StoreCatalog) GetBundle(ctx context.Context) (*models.Bundle, error) {
	s.EnsureSeeded(ctx)

	raw, err := s.store.FindOne(ctx, models.CollectionBundle, nil)
	if err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bundle: %w", err)
	}

	b, err := models.DecodeBundle(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *StoreCatalog) Status(ctx context.Context) SourceStatus {
	status := SourceStatus{
		Connected:    true,
		Backend:      database.Describe(s.store),
		DatabaseName: s.store.Name(),
		Collections:  []string{},
	}

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		status.Err = err
		return status
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	status.Collections = names
	return status
}

type FallbackCatalog struct{}

func NewFallbackCatalog() *FallbackCatalog {
	return &FallbackCatalog{}
}

// EnsureSeeded is a no-op: there is no store to seed.
func (f *FallbackCatalog) EnsureSeeded(ctx context.Context) SeedResult {
	return SeedResult{Failed: map[string]error{}}
}

func (f *FallbackCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return catalog.Products(), nil
}

func (f *FallbackCatalog) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	p, ok := catalog.Product(slug)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (f *FallbackCatalog) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return catalog.Testimonials(), nil
}

func (f *FallbackCatalog) GetBundle(ctx context.Context) (*models.Bundle, error) {
	b := catalog.Bundle()
	return &b, nil
}

func (f *FallbackCatalog) Status(ctx context.Context) SourceStatus {
	return SourceStatus{
		Backend:     database.Describe(nil),
		Collections: []string{},
	}
}
