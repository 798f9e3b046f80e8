package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per
// route template. A nil registry turns it into a pass-through.
func Metrics(reg *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if reg == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			reg.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
