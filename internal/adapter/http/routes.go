package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the health check, the versioned API and the Swagger UI.
func RegisterRoutes(e *echo.Echo, flights *FlightHandler, pricing *PricingConfigHandler) {
	RegisterRoutesWithMiddleware(e, flights, pricing)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// /api/v1 group only. The health check and the docs stay unwrapped.
func RegisterRoutesWithMiddleware(e *echo.Echo, flights *FlightHandler, pricing *PricingConfigHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", pricing.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", middleware...)

	api.POST("/flights/search", flights.SearchFlights)

	api.GET("/pricing-config", pricing.GetPricingConfig)
	api.PUT("/pricing-config", pricing.PutPricingConfig)
}
