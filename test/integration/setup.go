// Package integration provides helpers and integration tests for the flight search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, and providers.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flightprint/flightprint-api/internal/adapter/http"
	"github.com/flightprint/flightprint-api/internal/adapter/http/middleware"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/metrics"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
	"github.com/flightprint/flightprint-api/internal/usecase"
)

// Now is the fixed clock of every integration test; fixture flights depart 2026-11-01.
var Now = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// DepartureDate matches the fixture offers.
const DepartureDate = "2026-11-01"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Metrics *metrics.Registry
}

// ServerOptions customizes NewTestServer.
type ServerOptions struct {
	History usecase.HistoryUseCase
	Routes  httpAdapter.RouteConfig
}

// NewTestServer creates a test server with the full middleware chain and routes.
func NewTestServer(uc usecase.FlightSearchUseCase, opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	reg := opts.Routes.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
		opts.Routes.Metrics = reg
	}
	middleware.Setup(e, zerolog.Nop(), middleware.Config{Metrics: reg})

	handlers := httpAdapter.Handlers{
		Flights:   httpAdapter.NewFlightHandler(uc),
		Directory: httpAdapter.NewDirectoryHandler(usecase.NewAirportUseCase(time.Hour, timeutil.NewMockClock(Now))),
	}
	if opts.History != nil {
		handlers.History = httpAdapter.NewHistoryHandler(opts.History)
	}
	httpAdapter.RegisterRoutes(e, handlers, opts.Routes)

	return &TestServer{Echo: e, Metrics: reg}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string, headers map[string]string) Response {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search runs GET /api/v1/flights/search with the given query parameters.
func (ts *TestServer) Search(query url.Values) Response {
	return ts.Do(http.MethodGet, "/api/v1/flights/search?"+query.Encode(), nil)
}

// SearchQuery returns a valid JFK to LAX query on DepartureDate.
func SearchQuery() url.Values {
	return url.Values{
		"origin":        {"JFK"},
		"destination":   {"LAX"},
		"departureDate": {DepartureDate},
	}
}

// ParseSearchResponse parses the response body as a search envelope.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CreateUseCase creates a use case on the fixed clock with default configuration.
func CreateUseCase(provider domain.FlightProvider, opts ...usecase.Option) usecase.FlightSearchUseCase {
	return CreateUseCaseWithConfig(provider, nil, opts...)
}

// CreateUseCaseWithConfig creates a use case on the fixed clock with custom configuration.
func CreateUseCaseWithConfig(provider domain.FlightProvider, config *usecase.Config, opts ...usecase.Option) usecase.FlightSearchUseCase {
	opts = append([]usecase.Option{usecase.WithClock(timeutil.NewMockClock(Now))}, opts...)
	return usecase.NewFlightSearchUseCase(provider, config, opts...)
}

// DefaultSearchCriteria returns valid criteria for testing the use case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: DepartureDate,
		Adults:        1,
	}
}

// FlightIDs returns the offer IDs in result order.
func FlightIDs(flights []domain.Flight) []string {
	ids := make([]string, len(flights))
	for i, f := range flights {
		ids[i] = f.FlightOfferID
	}
	return ids
}
