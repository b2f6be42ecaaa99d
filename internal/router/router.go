// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/practicebay/practicebay-api/internal/config"
	"github.com/practicebay/practicebay-api/internal/handlers"
	"github.com/practicebay/practicebay-api/internal/middleware"
	"github.com/practicebay/practicebay-api/internal/services"
	"github.com/practicebay/practicebay-api/internal/utils"
)

// Initialize wires the HTTP routes. A nil limiter disables rate limiting.
func Initialize(source services.CatalogSource, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(source)
	systemHandler := handlers.NewSystemHandler(source, cfg)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	r.NoRoute(utils.RouteNotFoundResponse)

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Diagnostics)

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/:slug", catalogHandler.GetProduct)
		}

		api.GET("/testimonials", catalogHandler.ListTestimonials)
		api.GET("/bundle", catalogHandler.GetBundle)
	}

	return r
}
