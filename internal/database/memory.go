// internal/database/memory.go
package database

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process document store. Documents are kept as BSON,
// exactly as a Mongo server would receive them, so reads go through the
// same decode path as the Mongo-backed store.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.Raw
	unique      map[string][]string
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]bson.Raw),
		unique:      make(map[string][]string),
	}
}

func (s *MemoryStore) Name() string {
	return s.name
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Count(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	return s.InsertMany(ctx, collection, []interface{}{doc})
}

// InsertMany stores all documents or none of them.
func (s *MemoryStore) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := make([]bson.Raw, 0, len(docs))
	for _, doc := range docs {
		raw, err := encodeWithID(doc)
		if err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		encoded = append(encoded, raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range s.unique[collection] {
		if err := checkUnique(s.collections[collection], encoded, field); err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
	}

	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = []bson.Raw{}
	}
	s.collections[collection] = append(s.collections[collection], encoded...)
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.Raw{}
	for _, raw := range s.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", collection, err)
		}
		if !ok {
			continue
		}
		out, err := stripID(raw)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", collection, err)
		}
		docs = append(docs, out)
	}
	return docs, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.Raw, error) {
	docs, err := s.Find(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

func (s *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) EnsureIndexes(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, idx := range uniqueIndexes {
		if err := checkUnique(nil, s.collections[idx.Collection], idx.Field); err != nil {
			return fmt.Errorf("index %s: %w", idx.Name, err)
		}
		if !contains(s.unique[idx.Collection], idx.Field) {
			s.unique[idx.Collection] = append(s.unique[idx.Collection], idx.Field)
		}
		if _, ok := s.collections[idx.Collection]; !ok {
			s.collections[idx.Collection] = []bson.Raw{}
		}
	}
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func encodeWithID(doc interface{}) (bson.Raw, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	for _, e := range d {
		if e.Key == "_id" {
			return data, nil
		}
	}

	d = append(bson.D{{Key: "_id", Value: primitive.NewObjectID()}}, d...)
	return bson.Marshal(d)
}

func stripID(raw bson.Raw) (bson.Raw, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}

	d := make(bson.D, 0, len(elems))
	for _, e := range elems {
		if e.Key() == "_id" {
			continue
		}
		d = append(d, bson.E{Key: e.Key(), Value: e.Value()})
	}
	return bson.Marshal(d)
}

// matches implements equality filters on top-level fields.
func matches(raw bson.Raw, filter bson.M) (bool, error) {
	for key, want := range filter {
		got, err := raw.LookupErr(key)
		if err != nil {
			return false, nil
		}
		t, data, err := bson.MarshalValue(want)
		if err != nil {
			return false, err
		}
		if got.Type != t || !bytes.Equal(got.Value, data) {
			return false, nil
		}
	}
	return true, nil
}

// checkUnique rejects incoming documents whose field value already exists,
// either in the stored documents or earlier in the same batch.
func checkUnique(existing, incoming []bson.Raw, field string) error {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, raw := range existing {
		if v, err := raw.LookupErr(field); err == nil {
			seen[v.String()] = struct{}{}
		}
	}
	for _, raw := range incoming {
		v, err := raw.LookupErr(field)
		if err != nil {
			continue
		}
		if _, dup := seen[v.String()]; dup {
			return fmt.Errorf("%w: %s %s", ErrDuplicateKey, field, v.String())
		}
		seen[v.String()] = struct{}{}
	}
	return nil
}

func contains(items []string, item string) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}
