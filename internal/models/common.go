// internal/models/common.go
package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names
const (
	CollectionProduct     = "product"
	CollectionTestimonial = "testimonial"
	CollectionBundle      = "bundle"
)

// Collections lists every collection the catalog owns, in seeding order.
var Collections = []string{CollectionProduct, CollectionTestimonial, CollectionBundle}

// Field defaults applied when a stored document omits them
const (
	DefaultProductRating     = 4.8
	DefaultProductCategory   = "training"
	DefaultTestimonialRating = 5.0
)

func String(s string) *string {
	return &s
}

func decodeInto(raw bson.Raw, v interface{}, kind string) error {
	if err := bson.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", kind, err)
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
