package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Health(c, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Empty(t, result.Checks)
}

func TestHealth_Degraded(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Health(c, map[string]string{"mongo": "connection refused"}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "degraded", result.Status)
	assert.Equal(t, "connection refused", result.Checks["mongo"])
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"bad request", func(c echo.Context) error { return BadRequest(c, "Invalid input") }, http.StatusBadRequest, CodeInvalidRequest, "Invalid input"},
		{"validation message", func(c echo.Context) error { return ValidationErrorWithMessage(c, "adults must be between 1 and 9") }, http.StatusBadRequest, CodeValidationError, "adults must be between 1 and 9"},
		{"not found default", func(c echo.Context) error { return NotFound(c, "") }, http.StatusNotFound, CodeNotFound, MsgNotFound},
		{"not found custom", func(c echo.Context) error { return NotFound(c, "Airport not found") }, http.StatusNotFound, CodeNotFound, "Airport not found"},
		{"too many requests", TooManyRequests, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited},
		{"service unavailable", ServiceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable},
		{"gateway timeout", GatewayTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
		{"request cancelled", RequestCancelled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled},
		{"internal error", InternalServerError, http.StatusInternalServerError, CodeInternalError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()
	details := map[string]string{
		"origin":   "origin is required",
		"maxPrice": "maxPrice must be a number",
	}

	require.NoError(t, ValidationError(c, details))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, OK(c, map[string]int{"total": 3}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3}`, rec.Body.String())
}
