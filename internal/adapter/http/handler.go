package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/synthetic-flight-search/internal/adapter/http/response"
	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Generates deterministic one-way, round-trip or multi-city offers for a route.
// @Description Unknown airports and same-city routes return an empty list.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainQuery(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// PricingConfigManager reads and replaces the admin pricing configuration.
type PricingConfigManager interface {
	Get(ctx context.Context) (*domain.PricingConfiguration, error)
	Put(ctx context.Context, cfg *domain.PricingConfiguration) error
	StoreName() string
}

// PricingConfigHandler handles the admin pricing configuration endpoints.
type PricingConfigHandler struct {
	service PricingConfigManager
}

// NewPricingConfigHandler creates a PricingConfigHandler.
func NewPricingConfigHandler(svc PricingConfigManager) *PricingConfigHandler {
	return &PricingConfigHandler{service: svc}
}

// GetPricingConfig handles GET /api/v1/pricing-config
//
// @Summary Get the pricing configuration
// @Tags pricing
// @Produce json
// @Success 200 {object} domain.PricingConfiguration
// @Failure 404 {object} response.ErrorDetail "No configuration stored"
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Router /api/v1/pricing-config [get]
func (h *PricingConfigHandler) GetPricingConfig(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.PricingConfig(c, cfg)
}

// PutPricingConfig handles PUT /api/v1/pricing-config
//
// @Summary Replace the pricing configuration
// @Description Searches pick up the new configuration once the cached copy is dropped.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body domain.PricingConfiguration true "Pricing configuration"
// @Success 200 {object} domain.PricingConfiguration
// @Failure 400 {object} response.ErrorDetail "Invalid configuration"
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Router /api/v1/pricing-config [put]
func (h *PricingConfigHandler) PutPricingConfig(c echo.Context) error {
	var cfg domain.PricingConfiguration
	if err := c.Bind(&cfg); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := h.service.Put(c.Request().Context(), &cfg); err != nil {
		return handleError(c, err)
	}
	return response.PricingConfig(c, &cfg)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *PricingConfigHandler) Health(c echo.Context) error {
	return response.Health(c, h.service.StoreName())
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrInvalidPricingConfig):
		return response.InvalidPricingConfig(c, err.Error())
	case errors.Is(err, domain.ErrPricingConfigNotFound):
		return response.PricingConfigNotFound(c)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, domain.ErrSearchTimeout), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}
