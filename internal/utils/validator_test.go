// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Slug   string  `validate:"required,slug"`
	Rating float64 `validate:"gte=0,lte=5"`
	Photo  string  `validate:"omitempty,url"`
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("premium-putting-mat-10ft"))
	assert.True(t, IsSlug("a"))
	assert.False(t, IsSlug(""))
	assert.False(t, IsSlug("Upper-Case"))
	assert.False(t, IsSlug("trailing-"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug("has space"))
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Slug: "ok-slug", Rating: 4.5}))

	err := ValidateStruct(sample{Slug: "Bad Slug", Rating: 7, Photo: "not a url"})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "slug", byField["slug"].Tag)
	assert.Equal(t, "lte", byField["rating"].Tag)
	assert.Equal(t, "Rating must be at most 5", byField["rating"].Message)
	assert.Equal(t, "url", byField["photo"].Tag)
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
