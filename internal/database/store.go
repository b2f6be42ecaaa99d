// internal/database/store.go
package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/practicebay/practicebay-api/internal/models"
)

var (
	ErrNoDocuments  = errors.New("no documents in result")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is the document store the catalog reads from and seeds.
// Find and FindOne never return the store identity field (_id) and
// return documents in insertion order.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	Count(ctx context.Context, collection string) (int64, error)
	InsertOne(ctx context.Context, collection string, doc interface{}) error
	InsertMany(ctx context.Context, collection string, docs []interface{}) error
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}

type uniqueIndex struct {
	Collection string
	Field      string
	Name       string
}

// Product slugs are the public lookup key. A unique index also makes a
// second concurrent product seed fail instead of duplicating the catalog.
var uniqueIndexes = []uniqueIndex{
	{Collection: models.CollectionProduct, Field: "slug", Name: "uniq_product_slug"},
}

func normalizeFilter(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
