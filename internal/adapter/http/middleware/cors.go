package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// corsMaxAge is how long browsers may cache a preflight response, in seconds.
const corsMaxAge = 600

// CORS returns middleware answering cross-origin requests for the given
// origins. An empty list or "*" allows any origin.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsMaxAge,
	})
	return echo.WrapMiddleware(c.Handler)
}
