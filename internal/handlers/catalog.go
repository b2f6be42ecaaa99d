// internal/handlers/catalog.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/practicebay/practicebay-api/internal/i18n"
	"github.com/practicebay/practicebay-api/internal/models"
	"github.com/practicebay/practicebay-api/internal/services"
	"github.com/practicebay/practicebay-api/internal/utils"
)

type CatalogHandler struct {
	source services.CatalogSource
}

func NewCatalogHandler(source services.CatalogSource) *CatalogHandler {
	return &CatalogHandler{source: source}
}

// GET /api/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.source.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, products)
}

// GET /api/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.source.GetProduct(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound, gin.H{"slug": slug})
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// GET /api/testimonials
func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.source.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, testimonials)
}

// GET /api/bundle
func (h *CatalogHandler) GetBundle(c *gin.Context) {
	bundle, err := h.source.GetBundle(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	if bundle == nil {
		utils.OKResponse(c, models.AbsentBundle{})
		return
	}
	utils.OKResponse(c, bundle)
}
