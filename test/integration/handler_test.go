package integration

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flightprint/flightprint-api/internal/adapter/http"
	"github.com/flightprint/flightprint-api/internal/adapter/http/middleware"
	"github.com/flightprint/flightprint-api/internal/adapter/provider/mockfile"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/usecase"
	"github.com/flightprint/flightprint-api/test/mock"
	fixtures "github.com/flightprint/flightprint-api/test/testutil"
)

func newFixtureServer(t *testing.T) *TestServer {
	t.Helper()
	provider := mockfile.NewAdapter(fixtures.TestDataPath(t, "amadeus_offers.json"))
	return NewTestServer(CreateUseCase(provider), ServerOptions{})
}

// TestHandler_SearchFlights_FixtureRoundTrip runs the full stack against the fixture provider.
func TestHandler_SearchFlights_FixtureRoundTrip(t *testing.T) {
	ts := newFixtureServer(t)

	resp := ts.Search(SearchQuery())

	require.Equal(t, http.StatusOK, resp.Code)
	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 5, body.Meta.OffersReceived, "JFK-LAX fixture offers")
	assert.Equal(t, 1, body.Meta.OffersDropped, "offer without price")
	assert.Equal(t, 4, body.TotalFound)
	assert.Equal(t, 4, body.Results)
	assert.Equal(t, "mockfile", body.Meta.Provider)
	assert.Equal(t, domain.SortByBestValue, body.Meta.SortBy)
	assert.Equal(t, "JFK", body.Meta.Criteria.Origin)
	assert.Equal(t, 1, body.Meta.Criteria.Adults)
	assert.Equal(t, domain.TravelClassEconomy, body.Meta.Criteria.TravelClass)

	for _, f := range body.Data.Flights {
		assert.Positive(t, f.CarbonEmissions.Weight, "flight %s", f.FlightOfferID)
		assert.Equal(t, domain.WeightUnitKG, f.CarbonEmissions.WeightUnit)
		assert.Equal(t, Now, f.FetchedAt.UTC())
		assert.NotEmpty(t, f.Airlines)
	}
	assert.NotEmpty(t, resp.Headers.Get(middleware.RequestIDHeader))
}

// TestHandler_SortingApplied checks that sortBy=price keeps fewer stops first.
func TestHandler_SortingApplied(t *testing.T) {
	ts := newFixtureServer(t)
	q := SearchQuery()
	q.Set("sortBy", "price")

	resp := ts.Search(q)

	require.Equal(t, http.StatusOK, resp.Code)
	body, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "3", "2"}, FlightIDs(body.Data.Flights))
}

// TestHandler_FiltersApplied checks the query string filters end to end.
func TestHandler_FiltersApplied(t *testing.T) {
	tests := []struct {
		name    string
		filters url.Values
		wantIDs []string
	}{
		{name: "direct only", filters: url.Values{"maxStops": {"0"}, "sortBy": {"price"}}, wantIDs: []string{"1", "4", "3"}},
		{name: "single airline", filters: url.Values{"airlines": {"aa"}}, wantIDs: []string{"2"}},
		{name: "price cap", filters: url.Values{"maxPrice": {"300"}}, wantIDs: []string{"2"}},
		{name: "nothing matches", filters: url.Values{"maxPrice": {"10"}}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newFixtureServer(t)
			q := SearchQuery()
			for k, v := range tt.filters {
				q[k] = v
			}

			resp := ts.Search(q)

			require.Equal(t, http.StatusOK, resp.Code)
			body, err := resp.ParseSearchResponse()
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, FlightIDs(body.Data.Flights))
			assert.Equal(t, len(tt.wantIDs), body.TotalFound)
		})
	}
}

// TestHandler_ValidationErrors checks 400 responses for bad input at both layers.
func TestHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(url.Values)
		wantCode string
	}{
		{name: "missing origin", mutate: func(q url.Values) { q.Del("origin") }, wantCode: "validation_error"},
		{name: "past departure", mutate: func(q url.Values) { q.Set("departureDate", "2026-10-14") }, wantCode: "validation_error"},
		{name: "bad airport code", mutate: func(q url.Values) { q.Set("origin", "JF1") }, wantCode: "validation_error"},
		{name: "return before departure", mutate: func(q url.Values) { q.Set("returnDate", "2026-10-30") }, wantCode: "validation_error"},
		{name: "too many adults", mutate: func(q url.Values) { q.Set("adults", "10") }, wantCode: "validation_error"},
		{name: "explicit zero adults", mutate: func(q url.Values) { q.Set("adults", "0") }, wantCode: "validation_error"},
		{name: "unknown class", mutate: func(q url.Values) { q.Set("travelClass", "COACH") }, wantCode: "validation_error"},
		{name: "bad sort", mutate: func(q url.Values) { q.Set("sortBy", "random") }, wantCode: "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mock.NewProvider("mock")
			ts := NewTestServer(CreateUseCase(provider), ServerOptions{})
			q := SearchQuery()
			tt.mutate(q)

			resp := ts.Search(q)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			body, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Zero(t, provider.CallCount(), "provider must not be called")
		})
	}
}

// TestHandler_ServiceUnavailable checks the mapping of provider failures to 503.
func TestHandler_ServiceUnavailable(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithError(domain.NewProviderError("mock", errors.New("upstream 500")))
	ts := NewTestServer(CreateUseCase(provider), ServerOptions{})

	resp := ts.Search(SearchQuery())

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "service_unavailable", body["code"])
	assert.NotContains(t, string(resp.Body), "upstream 500")
}

// TestHandler_Timeout checks that a slow provider yields 504.
func TestHandler_Timeout(t *testing.T) {
	provider := mock.NewProvider("slow").
		WithDelay(500 * time.Millisecond).
		WithOffers(mock.SampleOffers(DepartureDate, 2))
	uc := CreateUseCaseWithConfig(provider, &usecase.Config{ProviderTimeout: 50 * time.Millisecond})
	ts := NewTestServer(uc, ServerOptions{})

	start := time.Now()
	resp := ts.Search(SearchQuery())

	assert.Less(t, time.Since(start), 400*time.Millisecond, "should not wait for the slow provider")
	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "timeout", body["code"])
}

// TestHandler_HealthCheck checks /health through the full chain.
func TestHandler_HealthCheck(t *testing.T) {
	ts := newFixtureServer(t)

	resp := ts.Do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}

// TestHandler_MetricsExposed checks that searches show up on /metrics.
func TestHandler_MetricsExposed(t *testing.T) {
	ts := newFixtureServer(t)

	require.Equal(t, http.StatusOK, ts.Search(SearchQuery()).Code)
	resp := ts.Do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), "flightprint_http_requests_total")
	assert.Equal(t, float64(1), testutil.ToFloat64(
		ts.Metrics.HTTPRequests.WithLabelValues("GET", "/api/v1/flights/search", "200")))
}

// TestHandler_SearchRateLimited checks that the search route has its own budget.
func TestHandler_SearchRateLimited(t *testing.T) {
	provider := mock.NewProvider("mock").WithOffers(mock.SampleOffers(DepartureDate, 1))
	ts := NewTestServer(CreateUseCase(provider), ServerOptions{
		Routes: httpAdapter.RouteConfig{
			SearchLimit: middleware.RateLimitConfig{Requests: 2, Window: time.Minute},
		},
	})

	path := "/api/v1/flights/search?" + SearchQuery().Encode()
	headers := map[string]string{"X-Real-IP": "203.0.113.7"}
	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, ts.Do(http.MethodGet, path, headers).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 2, provider.CallCount())

	// Other routes are unaffected.
	assert.Equal(t, http.StatusOK, ts.Do(http.MethodGet, "/api/v1/airports/popular", headers).Code)
}

// TestHandler_AirportEndpoints checks the directory routes through the full chain.
func TestHandler_AirportEndpoints(t *testing.T) {
	ts := newFixtureServer(t)

	resp := ts.Do(http.MethodGet, "/api/v1/airports/search?query=JFK", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"code":"JFK"`)

	resp = ts.Do(http.MethodGet, "/api/v1/airports/XXX", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.Do(http.MethodGet, "/api/v1/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "not_found", body["code"])
}
