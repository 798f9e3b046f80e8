// Package http provides the HTTP handler layer for the FlightPrint API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// SearchFlightsRequest holds the query parameters of GET /api/v1/flights/search.
// Date, code and passenger rules are enforced by domain.SearchCriteria; this
// type only checks presence, number formats and filter sanity.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `query:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// ReturnDate turns the search into a round trip
	ReturnDate string `query:"returnDate"`

	// Adults is the number of adult travelers (1-9, default 1)
	Adults int `query:"adults"`

	// TravelClass is ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST
	TravelClass string `query:"travelClass"`

	// SortBy is best, price, duration or emissions
	SortBy string `query:"sortBy"`

	// adultsSet is true when the adults parameter was sent; only an absent value defaults to 1
	adultsSet bool

	MaxPrice       *float64
	MaxStops       *int
	MaxEmissionsKg *float64
	MinDuration    *int
	MaxDuration    *int
	Airlines       []string
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// ParseSearchRequest binds and validates the search query string.
// The returned error is always a *ValidationErrors.
func ParseSearchRequest(c echo.Context) (*SearchFlightsRequest, error) {
	req := &SearchFlightsRequest{}
	errs := &ValidationErrors{}

	binder := echo.QueryParamsBinder(c).
		FailFast(false).
		String("origin", &req.Origin).
		String("destination", &req.Destination).
		String("departureDate", &req.DepartureDate).
		String("returnDate", &req.ReturnDate).
		Int("adults", &req.Adults).
		String("travelClass", &req.TravelClass).
		String("sortBy", &req.SortBy)
	for _, err := range binder.BindErrors() {
		var be *echo.BindingError
		if errors.As(err, &be) {
			errs.Add(be.Field, be.Field+" must be a whole number")
		}
	}

	_, req.adultsSet = c.QueryParams()["adults"]

	req.MaxPrice = optionalFloat(c, "maxPrice", errs)
	req.MaxStops = optionalInt(c, "maxStops", errs)
	req.MaxEmissionsKg = optionalFloat(c, "maxEmissions", errs)
	req.MinDuration = optionalInt(c, "minDuration", errs)
	req.MaxDuration = optionalInt(c, "maxDuration", errs)
	req.Airlines = splitList(c.QueryParams()["airlines"])

	req.validate(errs)
	if errs.HasErrors() {
		return nil, errs
	}
	return req, nil
}

func (r *SearchFlightsRequest) validate(errs *ValidationErrors) {
	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	if strings.TrimSpace(r.DepartureDate) == "" {
		errs.Add("departureDate", "departureDate is required")
	}

	if r.adultsSet && (r.Adults < domain.MinAdults || r.Adults > domain.MaxAdults) {
		errs.Add("adults", fmt.Sprintf("adults must be between %d and %d", domain.MinAdults, domain.MaxAdults))
	}

	if r.SortBy != "" && !domain.SortOption(strings.ToLower(r.SortBy)).IsValid() {
		errs.Add("sortBy", "sortBy must be one of: best, price, duration, emissions")
	}

	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("maxPrice", "maxPrice must be a positive number")
	}
	if r.MaxStops != nil && *r.MaxStops < 0 {
		errs.Add("maxStops", "maxStops must be a non-negative number")
	}
	if r.MaxEmissionsKg != nil && *r.MaxEmissionsKg < 0 {
		errs.Add("maxEmissions", "maxEmissions must be a positive number")
	}
	if r.MinDuration != nil && *r.MinDuration < 0 {
		errs.Add("minDuration", "minDuration must be a non-negative number")
	}
	if r.MaxDuration != nil && *r.MaxDuration < 0 {
		errs.Add("maxDuration", "maxDuration must be a non-negative number")
	}
	if r.MinDuration != nil && r.MaxDuration != nil && *r.MinDuration > *r.MaxDuration {
		errs.Add("minDuration", "minDuration must be less than or equal to maxDuration")
	}

	for i, code := range r.Airlines {
		normalized := strings.ToUpper(code)
		if len(normalized) < 2 || len(normalized) > 3 {
			errs.Add(fmt.Sprintf("airlines[%d]", i), "airline code must be 2 or 3 characters")
		}
		r.Airlines[i] = normalized
	}
}

func optionalFloat(c echo.Context, name string, errs *ValidationErrors) *float64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(name, name+" must be a number")
		return nil
	}
	return &v
}

func optionalInt(c echo.Context, name string, errs *ValidationErrors) *int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, name+" must be a whole number")
		return nil
	}
	return &v
}

// splitList accepts both repeated parameters and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// queryLimit reads an optional non-negative integer parameter; 0 means unset.
func queryLimit(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative whole number", name)
	}
	return v, nil
}
