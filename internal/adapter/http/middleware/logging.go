package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, path, status, duration, and client info.
// The logger should be the zerolog.Logger instance from the logger package.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Render through Echo's error handler so the logged status is final.
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
