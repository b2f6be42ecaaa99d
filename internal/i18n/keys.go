// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	KeyAPIRunning = "api.running"

	// Catalog
	KeyProductNotFound = "product.not_found"

	// Errors
	KeyErrorInternal      = "error.internal"
	KeyErrorRateLimited   = "error.rate_limited"
	KeyErrorRouteNotFound = "error.route_not_found"
)
