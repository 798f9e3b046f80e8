package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	if message == "" {
		message = MsgNotFound
	}
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, &ErrorDetail{
		Code:    CodeRateLimited,
		Message: MsgRateLimited,
	})
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return ServiceUnavailableWithMessage(c, MsgServiceUnavailable)
}

// ServiceUnavailableWithMessage writes a 503 Service Unavailable response with a custom message.
func ServiceUnavailableWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, &ErrorDetail{
		Code:    CodeServiceUnavailable,
		Message: message,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
