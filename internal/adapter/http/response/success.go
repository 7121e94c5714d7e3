package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// PricingStore names the configured pricing configuration store
	PricingStore string `json:"pricingStore,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, pricingStore string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:       "ok",
		PricingStore: pricingStore,
	})
}

// SearchResults writes a 200 OK response with search results, marked no-store.
func SearchResults(c echo.Context, results *domain.SearchResponse) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(http.StatusOK, results)
}

// PricingConfig writes a 200 OK response with a pricing configuration.
func PricingConfig(c echo.Context, cfg *domain.PricingConfiguration) error {
	return c.JSON(http.StatusOK, cfg)
}
