// Package response provides standardized HTTP response builders for the FlightPrint API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusSuccess is the status field of every successful envelope.
const StatusSuccess = "success"

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeRateLimited        = "rate_limited"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidQuery       = "Failed to parse query parameters"
	MsgValidationFailed   = "Request validation failed"
	MsgNotFound           = "Resource not found"
	MsgRateLimited        = "Too many requests, please try again later"
	MsgServiceUnavailable = "The flight search provider is currently unavailable"
	MsgTimeout            = "The flight search provider did not respond in time"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
