package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
)

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or wrong methods, in the same body shape as handler errors.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := response.MsgInternalError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("Unhandled error")
		}

		body := &response.ErrorDetail{Code: codeForStatus(status), Message: message}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
	}
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return response.CodeNotFound
	case status == http.StatusTooManyRequests:
		return response.CodeRateLimited
	case status == http.StatusServiceUnavailable:
		return response.CodeServiceUnavailable
	case status == http.StatusGatewayTimeout:
		return response.CodeTimeout
	case status >= 500:
		return response.CodeInternalError
	default:
		return response.CodeInvalidRequest
	}
}
