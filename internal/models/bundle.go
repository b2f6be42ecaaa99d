// internal/models/bundle.go
package models

import "go.mongodb.org/mongo-driver/bson"

// Bundle is the singleton offer grouping several products. Items holds
// product slugs; they are plain references, nothing enforces them.
type Bundle struct {
	Title        string   `json:"title" bson:"title" validate:"required"`
	Description  *string  `json:"description" bson:"description,omitempty"`
	Items        []string `json:"items" bson:"items" validate:"dive,slug"`
	RegularPrice float64  `json:"regular_price" bson:"regular_price" validate:"gte=0"`
	BundlePrice  float64  `json:"bundle_price" bson:"bundle_price" validate:"gte=0"`
	SavingsText  *string  `json:"savings_text" bson:"savings_text,omitempty"`
	Image        *string  `json:"image" bson:"image,omitempty" validate:"omitempty,url"`
}

// AbsentBundle is what /api/bundle renders when the store holds no bundle:
// the bundle shape with every field null.
type AbsentBundle struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Items        []string `json:"items"`
	RegularPrice *float64 `json:"regular_price"`
	BundlePrice  *float64 `json:"bundle_price"`
	SavingsText  *string  `json:"savings_text"`
	Image        *string  `json:"image"`
}

func DecodeBundle(raw bson.Raw) (Bundle, error) {
	b := Bundle{Items: []string{}}
	if err := decodeInto(raw, &b, "bundle"); err != nil {
		return Bundle{}, err
	}
	if b.Items == nil {
		b.Items = []string{}
	}
	return b, nil
}

func (b Bundle) Clone() Bundle {
	c := b
	c.Description = cloneString(b.Description)
	c.SavingsText = cloneString(b.SavingsText)
	c.Image = cloneString(b.Image)
	c.Items = cloneStrings(b.Items)
	return c
}
