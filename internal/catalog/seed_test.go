// internal/catalog/seed_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicebay/practicebay-api/internal/models"
)

func TestSeedCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSeedCatalogSizes(t *testing.T) {
	assert.Len(t, Products(), 5)
	assert.Len(t, Testimonials(), 3)
	assert.Equal(t, "The Complete Home Training System", Bundle().Title)
}

func TestBundleItemsMatchProductSlugs(t *testing.T) {
	products := Products()
	bundle := Bundle()

	require.Len(t, bundle.Items, len(products))
	for i, p := range products {
		assert.Equal(t, p.Slug, bundle.Items[i])
	}
}

func TestProductLookup(t *testing.T) {
	p, ok := Product("premium-putting-mat-10ft")
	require.True(t, ok)
	assert.Equal(t, 129.0, p.Price)
	assert.True(t, p.InStock)
	assert.Equal(t, 127, p.ReviewsCount)
	assert.Nil(t, p.Video)

	_, ok = Product("nonexistent-slug")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	products := Products()
	products[0].Title = "changed"
	products[0].Images[0] = "changed"
	*products[0].Description = "changed"

	bundle := Bundle()
	bundle.Items[0] = "changed"

	testimonials := Testimonials()
	*testimonials[0].Photo = "changed"

	fresh := Products()
	assert.Equal(t, "Premium 10ft Putting Mat", fresh[0].Title)
	assert.NotEqual(t, "changed", fresh[0].Images[0])
	assert.NotEqual(t, "changed", *fresh[0].Description)
	assert.Equal(t, "premium-putting-mat-10ft", Bundle().Items[0])
	assert.NotEqual(t, "changed", *Testimonials()[0].Photo)
}

func TestDocuments(t *testing.T) {
	assert.Len(t, Documents(models.CollectionProduct), 5)
	assert.Len(t, Documents(models.CollectionTestimonial), 3)
	assert.Len(t, Documents(models.CollectionBundle), 1)
	assert.Nil(t, Documents("orders"))

	doc, ok := Documents(models.CollectionProduct)[1].(models.Product)
	require.True(t, ok)
	assert.Equal(t, "swing-trainer-aid", doc.Slug)
}
