// internal/database/connection.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/practicebay/practicebay-api/internal/config"
)

// Open connects to the configured document store. It returns a nil Store
// and no error when no store is configured.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	if !cfg.Enabled() {
		logrus.Info("No database configured, serving the built-in catalog")
		return nil, nil
	}

	var store Store
	if cfg.IsMemory() {
		store = NewMemoryStore(cfg.Name)
	} else {
		mongoStore, err := NewMongoStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store = mongoStore
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Warn("Some database indexes could not be created")
	}

	logrus.WithField("database", store.Name()).Info("Database connection established successfully")
	return store, nil
}

func Close(ctx context.Context, store Store) {
	if store == nil {
		return
	}

	if err := store.Close(ctx); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// Describe reports the store kind for diagnostics.
func Describe(store Store) string {
	switch store.(type) {
	case nil:
		return "none"
	case *MemoryStore:
		return "memory"
	case *MongoStore:
		return "mongodb"
	default:
		return fmt.Sprintf("%T", store)
	}
}
