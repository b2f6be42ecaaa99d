// internal/services/seeder.go
package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/practicebay/practicebay-api/internal/catalog"
	"github.com/practicebay/practicebay-api/internal/database"
	"github.com/practicebay/practicebay-api/internal/models"
)

// SeedResult reports what one seeding pass did. Collections that already
// held documents appear in neither list.
type SeedResult struct {
	Seeded []string
	Failed map[string]error
}

func (r SeedResult) OK() bool {
	return len(r.Failed) == 0
}

// Seeder fills empty collections with the default catalog. A collection is
// only written while it is empty, so repeated passes converge on the same
// contents. Failures are logged and left for the next pass to retry.
type Seeder struct {
	store database.Store
	group singleflight.Group
}

func NewSeeder(store database.Store) *Seeder {
	return &Seeder{store: store}
}

// EnsureSeeded runs one seeding pass. Callers arriving while a pass is in
// flight wait for it and share its result.
func (s *Seeder) EnsureSeeded(ctx context.Context) SeedResult {
	v, _, _ := s.group.Do("seed", func() (interface{}, error) {
		return s.seed(ctx), nil
	})
	return v.(SeedResult)
}

func (s *Seeder) seed(ctx context.Context) SeedResult {
	result := SeedResult{Failed: map[string]error{}}

	for _, collection := range models.Collections {
		seeded, err := s.seedCollection(ctx, collection)
		if err != nil {
			result.Failed[collection] = err
			continue
		}
		if seeded {
			result.Seeded = append(result.Seeded, collection)
		}
	}

	return result
}

func (s *Seeder) seedCollection(ctx context.Context, collection string) (bool, error) {
	log := logrus.WithField("collection", collection)

	count, err := s.store.Count(ctx, collection)
	if err != nil {
		log.WithError(err).Warn("Failed to check collection before seeding")
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	docs := catalog.Documents(collection)
	if collection == models.CollectionBundle {
		err = s.store.InsertOne(ctx, collection, docs[0])
	} else {
		err = s.store.InsertMany(ctx, collection, docs)
	}

	if err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			log.WithError(err).Debug("Collection was seeded concurrently")
		} else {
			log.WithError(err).Warn("Failed to seed collection")
		}
		return false, err
	}

	log.WithField("documents", len(docs)).Info("Seeded collection with default content")
	return true, nil
}
