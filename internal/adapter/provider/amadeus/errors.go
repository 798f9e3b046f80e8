package amadeus

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/flightprint/flightprint-api/internal/infrastructure/retry"
)

// StatusError is a non-2xx answer from the Amadeus API.
type StatusError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
}

// Transient reports whether the request may succeed when repeated.
func (e *StatusError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// newStatusError reads the error body and marks client errors permanent.
func newStatusError(op string, status int, body []byte) error {
	err := &StatusError{Op: op, StatusCode: status, Detail: errorDetail(body)}
	if err.Transient() {
		return err
	}
	return retry.NewPermanent(err)
}

// IsUnauthorized reports whether err carries a 401 from the API.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized
}

// errorDetail extracts errors[0].detail, or the OAuth error description.
func errorDetail(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.message()
}
