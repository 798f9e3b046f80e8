package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/flightprint/flightprint-api/internal/adapter/http/middleware"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
)

// Handlers groups the handlers mounted by RegisterRoutes.
// Directory and History are optional; nil skips their routes.
type Handlers struct {
	Flights   *FlightHandler
	Directory *DirectoryHandler
	History   *HistoryHandler
}

// RouteConfig carries the per-group limits and the optional metrics registry.
type RouteConfig struct {
	// SearchLimit guards the provider-backed flight search
	SearchLimit middleware.RateLimitConfig

	// APILimit guards the remaining /api/v1 routes
	APILimit middleware.RateLimitConfig

	// Metrics exposes /metrics when non-nil
	Metrics *metrics.Registry

	// Swagger mounts /swagger/* when true
	Swagger bool
}

// RegisterRoutes registers all FlightPrint API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h Handlers, cfg RouteConfig) {
	// Operational endpoints (no version prefix, no rate limit)
	e.GET("/health", h.Flights.Health)
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	if cfg.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.GET("/search", h.Flights.SearchFlights, middleware.RateLimit(cfg.SearchLimit))

	limited := api.Group("", middleware.RateLimit(cfg.APILimit))

	if h.Directory != nil {
		airports := limited.Group("/airports")
		airports.GET("/search", h.Directory.SearchAirports)
		airports.GET("/popular", h.Directory.PopularAirports)
		airports.GET("/:code", h.Directory.GetAirport)

		limited.GET("/airlines", h.Directory.ListAirlines)
	}

	if h.History != nil {
		searches := limited.Group("/searches")
		searches.GET("/recent", h.History.Recent)
		searches.GET("/popular", h.History.PopularRoutes)
		searches.GET("/stats", h.History.Stats)
		searches.DELETE("", h.History.Cleanup)
	}
}
