package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightprint/flightprint-api/internal/infrastructure/logger"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
)

func decodeLog(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be valid JSON")
	return entry
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "existing-request-id-12345")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, "existing-request-id-12345", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "existing-request-id-12345", GetRequestID(c))
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

func TestContextLogger_TagsRequestContext(t *testing.T) {
	var logBuf bytes.Buffer
	base := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "ctx-req-id")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequestID()(ContextLogger(base)(func(c echo.Context) error {
		log := logger.FromContext(c.Request().Context(), zerolog.Nop())
		log.Info().Msg("inside handler")
		return nil
	}))
	require.NoError(t, handler(c))

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "ctx-req-id", entry["request_id"])
	assert.Equal(t, "inside handler", entry["message"])
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf).With().Timestamp().Logger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?origin=JFK", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	req.Header.Set("X-Real-IP", "192.168.1.100")
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/flights/search", entry["path"])
	assert.Equal(t, "origin=JFK", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.String(tt.status, "body")
			})
			require.NoError(t, handler(c))

			entry := decodeLog(t, &logBuf)
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestRequestLogger_RendersReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zerolog.Nop())
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

	handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such thing")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(404), decodeLog(t, &logBuf)["status"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)
	c.Set("request_id", "panic-test-id")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic("test panic message")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, rec.Body.String(), "test panic message")

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-test-id", entry["request_id"])
	assert.Equal(t, "test panic message", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.True(t, strings.Contains(stack, "goroutine"))
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic(errors.New("boom"))
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decodeLog(t, &logBuf)["panic"])
}

func TestRecoverWithConfig_DisablesStack(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

	handler := RecoverWithConfig(zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack")
	})
	_ = handler(c)

	assert.NotContains(t, decodeLog(t, &logBuf), "stack")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/normal", nil), rec)

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

// =====================================================
// Error Handler Tests
// =====================================================

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "not_found"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "invalid_request"},
		{"too many requests", echo.ErrTooManyRequests, http.StatusTooManyRequests, "rate_limited"},
		{"plain error", errors.New("hidden detail"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			ErrorHandler(zerolog.Nop())(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotContains(t, rec.Body.String(), "hidden detail")
		})
	}
}

// =====================================================
// Metrics, CORS and Rate Limit Tests
// =====================================================

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	reg := metrics.NewRegistry()
	e := echo.New()
	e.Use(Metrics(reg))
	e.GET("/api/v1/airports/:code", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for _, code := range []string{"JFK", "LAX"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/airports/"+code, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(reg.HTTPRequests.WithLabelValues("GET", "/api/v1/airports/:code", "200")))
}

func TestMetrics_NilRegistryPassesThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

	handler := Metrics(nil)(func(c echo.Context) error {
		return c.String(http.StatusTeapot, "tea")
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://app.flightprint.io"}))
	e.GET("/api/v1/airlines", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airlines", nil)
	req.Header.Set("Origin", "https://app.flightprint.io")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.flightprint.io", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/airlines", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	e := echo.New()
	e.GET("/limited", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(RateLimitConfig{Requests: 2, Window: time.Minute}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	e := echo.New()
	e.GET("/open", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(RateLimitConfig{}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

// =====================================================
// Setup Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	reg := metrics.NewRegistry()

	e := echo.New()
	Setup(e, zerolog.New(&logBuf), Config{Metrics: reg})
	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, logBuf.String(), "Panic recovered")
	assert.Contains(t, logBuf.String(), "HTTP request")
	assert.Equal(t, float64(1), testutil.ToFloat64(reg.HTTPRequests.WithLabelValues("GET", "/panic", "500")))
}

func TestSetup_UnknownRouteUsesErrorBody(t *testing.T) {
	e := echo.New()
	Setup(e, zerolog.Nop(), Config{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["code"])
}

func TestChain_Length(t *testing.T) {
	assert.Len(t, Chain(zerolog.Nop(), Config{}), 6)
}
