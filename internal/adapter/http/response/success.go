package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// Checks maps optional dependencies to "ok" or their error.
	Checks map[string]string `json:"checks,omitempty"`
}

// Health writes a health check response. Any failed check turns the status
// into "degraded" with a 503.
func Health(c echo.Context, checks map[string]string) error {
	status, code := "ok", http.StatusOK
	for _, v := range checks {
		if v != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(code, &HealthResponse{Status: status, Checks: checks})
}
