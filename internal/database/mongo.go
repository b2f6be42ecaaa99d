// internal/database/mongo.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/practicebay/practicebay-api/internal/config"
)

var (
	withoutID      = bson.D{{Key: "_id", Value: 0}}
	insertionOrder = bson.D{{Key: "_id", Value: 1}}
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(ctx context.Context, cfg config.DatabaseConfig) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.Timeout()).
		SetServerSelectionTimeout(cfg.Timeout())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return wrapWriteError(collection, err)
	}
	return nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.db.Collection(collection).InsertMany(ctx, docs); err != nil {
		return wrapWriteError(collection, err)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	opts := options.Find().SetProjection(withoutID).SetSort(insertionOrder)

	cursor, err := s.db.Collection(collection).Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.Raw{}
	for cursor.Next(ctx) {
		// cursor.Current is reused by the next call
		docs = append(docs, append(bson.Raw(nil), cursor.Current...))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return docs, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	opts := options.FindOne().SetProjection(withoutID).SetSort(insertionOrder)

	raw, err := s.db.Collection(collection).FindOne(ctx, normalizeFilter(filter), opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocuments
		}
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return raw, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	var errs []error
	for _, idx := range uniqueIndexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idx.Name),
		}
		if _, err := s.db.Collection(idx.Collection).Indexes().CreateOne(ctx, model); err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithFields(logrus.Fields{
				"collection": idx.Collection,
				"index":      idx.Name,
			}).Warn("Failed to create index")
			errs = append(errs, fmt.Errorf("index %s: %w", idx.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func wrapWriteError(collection string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert %s: %w: %v", collection, ErrDuplicateKey, err)
	}
	return fmt.Errorf("insert %s: %w", collection, err)
}
