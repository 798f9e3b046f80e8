package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flightprint/flightprint-api/internal/adapter/http/response"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/usecase"
)

// healthCheckTimeout bounds each dependency ping of /health.
const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency that /health pings.
type Pinger interface {
	Ping(ctx context.Context) error
}

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	checks  map[string]Pinger
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
		checks:  map[string]Pinger{},
	}
}

// WithHealthCheck adds a dependency pinged by Health.
func (h *FlightHandler) WithHealthCheck(name string, p Pinger) *FlightHandler {
	h.checks[name] = p
	return h
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Fetches offers from the provider, normalizes them, estimates emissions and ranks them
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code" example(JFK)
// @Param destination query string true "Destination IATA code" example(LAX)
// @Param departureDate query string true "Departure date (YYYY-MM-DD)" example(2026-11-01)
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Adult travelers (1-9)" default(1)
// @Param travelClass query string false "ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST" default(ECONOMY)
// @Param sortBy query string false "best, price, duration or emissions" default(best)
// @Param maxPrice query number false "Maximum grand total"
// @Param maxStops query int false "Maximum number of stops"
// @Param maxEmissions query number false "Maximum CO2 in kg"
// @Param minDuration query int false "Minimum duration in minutes"
// @Param maxDuration query int false "Maximum duration in minutes"
// @Param airlines query string false "Comma-separated carrier codes"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Provider timeout"
// @Router /api/v1/flights/search [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	req, err := ParseSearchRequest(c)
	if err != nil {
		return handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(req)
	opts := ToSearchOptions(req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result, opts.SortBy))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	if len(h.checks) == 0 {
		return response.Health(c, nil)
	}

	results := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		if err := p.Ping(ctx); err != nil {
			results[name] = err.Error()
		} else {
			results[name] = "ok"
		}
		cancel()
	}
	return response.Health(c, results)
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "")
	case domain.IsProviderTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsProviderUnavailable(err):
		return response.ServiceUnavailable(c)
	default:
		c.Logger().Error(err)
		return response.InternalServerError(c)
	}
}
