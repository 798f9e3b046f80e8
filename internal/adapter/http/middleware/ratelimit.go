package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
)

// RateLimitConfig allows each client IP Requests per Window, refilled evenly.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration

	// Burst is the bucket size; defaults to Requests
	Burst int

	// ExpiresIn drops idle client buckets after this long
	ExpiresIn time.Duration
}

// RateLimit returns middleware that rejects clients exceeding cfg with a 429.
// Clients are keyed by their real IP. A zero Requests or Window disables limiting.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.Requests
	}
	if cfg.ExpiresIn <= 0 {
		cfg.ExpiresIn = cfg.Window
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.BadRequest(c, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c)
		},
	})
}
