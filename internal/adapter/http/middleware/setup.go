package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
)

// Config selects the optional parts of the global chain.
type Config struct {
	// Metrics enables per-route instrumentation when non-nil
	Metrics *metrics.Registry

	// AllowedOrigins feeds the CORS middleware
	AllowedOrigins []string

	Recovery RecoveryConfig
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. ContextLogger - Attaches a request-scoped logger to the request context
//  3. CORS - Answers preflight requests before any handler work
//  4. RequestLogger - Logs all requests with request ID and final status
//  5. Metrics - Records the status after errors have been rendered
//  6. Recover - Innermost, catches panics and returns 500
//
// It also installs ErrorHandler. Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, cfg Config) {
	e.HTTPErrorHandler = ErrorHandler(log)
	for _, mw := range Chain(log, cfg) {
		e.Use(mw)
	}
}

// Chain returns the global middleware as a slice, in Setup order.
func Chain(log zerolog.Logger, cfg Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		ContextLogger(log),
		CORS(cfg.AllowedOrigins),
		RequestLogger(log),
		Metrics(cfg.Metrics),
		RecoverWithConfig(log, cfg.Recovery),
	}
}
