// internal/models/testimonial.go
package models

import "go.mongodb.org/mongo-driver/bson"

type Testimonial struct {
	Name   string  `json:"name" bson:"name" validate:"required"`
	Quote  string  `json:"quote" bson:"quote" validate:"required"`
	Rating float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Photo  *string `json:"photo" bson:"photo,omitempty" validate:"omitempty,url"`
}

func NewTestimonial() Testimonial {
	return Testimonial{Rating: DefaultTestimonialRating}
}

func DecodeTestimonial(raw bson.Raw) (Testimonial, error) {
	t := NewTestimonial()
	if err := decodeInto(raw, &t, "testimonial"); err != nil {
		return Testimonial{}, err
	}
	return t, nil
}

func (t Testimonial) Clone() Testimonial {
	c := t
	c.Photo = cloneString(t.Photo)
	return c
}
