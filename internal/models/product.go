// internal/models/product.go
package models

import "go.mongodb.org/mongo-driver/bson"

type Product struct {
	Title        string   `json:"title" bson:"title" validate:"required"`
	Slug         string   `json:"slug" bson:"slug" validate:"required,slug"`
	Description  *string  `json:"description" bson:"description,omitempty"`
	Details      *string  `json:"details" bson:"details,omitempty"`
	Price        float64  `json:"price" bson:"price" validate:"gte=0"`
	Rating       float64  `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	ReviewsCount int      `json:"reviews_count" bson:"reviews_count" validate:"gte=0"`
	Images       []string `json:"images" bson:"images" validate:"dive,url"`
	Video        *string  `json:"video" bson:"video,omitempty" validate:"omitempty,url"`
	Benefits     []string `json:"benefits" bson:"benefits"`
	InStock      bool     `json:"in_stock" bson:"in_stock"`
	Category     string   `json:"category" bson:"category"`
}

// NewProduct returns a product carrying the field defaults.
func NewProduct() Product {
	return Product{
		Rating:   DefaultProductRating,
		Images:   []string{},
		Benefits: []string{},
		InStock:  true,
		Category: DefaultProductCategory,
	}
}

// DecodeProduct decodes a stored document over the product defaults, so
// fields missing from the document keep their default value.
func DecodeProduct(raw bson.Raw) (Product, error) {
	p := NewProduct()
	if err := decodeInto(raw, &p, "product"); err != nil {
		return Product{}, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	return p, nil
}

func (p Product) Clone() Product {
	c := p
	c.Description = cloneString(p.Description)
	c.Details = cloneString(p.Details)
	c.Video = cloneString(p.Video)
	c.Images = cloneStrings(p.Images)
	c.Benefits = cloneStrings(p.Benefits)
	return c
}
