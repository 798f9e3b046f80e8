package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format of search dates.
const DateLayout = "2006-01-02"

// Passenger limits accepted by the provider.
const (
	MinAdults = 1
	MaxAdults = 9
)

// SearchCriteria defines the parameters for a flight search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travelers (default: 1)
	Adults int `json:"adults"`

	// TravelClass is the requested cabin (default: ECONOMY)
	TravelClass TravelClass `json:"travelClass"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SetDefaults normalizes casing and applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.DepartureDate = strings.TrimSpace(s.DepartureDate)
	s.ReturnDate = strings.TrimSpace(s.ReturnDate)
	s.TravelClass = TravelClass(strings.ToUpper(strings.TrimSpace(string(s.TravelClass))))

	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TravelClass == "" {
		s.TravelClass = TravelClassEconomy
	}
}

// Validate checks the criteria against the calendar day of now.
// Checks run in a fixed order and stop at the first failure.
func (s *SearchCriteria) Validate(now time.Time) error {
	if s.Origin == "" || s.Destination == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidAirportCode)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", ErrInvalidAirportCode, s.Origin)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidAirportCode, s.Destination)
	}

	departure, err := time.ParseInLocation(DateLayout, s.DepartureDate, now.Location())
	if err != nil {
		return fmt.Errorf("%w: departureDate must be YYYY-MM-DD, got %q", ErrInvalidDateFormat, s.DepartureDate)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if departure.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDepartureDate, s.DepartureDate, today.Format(DateLayout))
	}

	if s.ReturnDate != "" {
		ret, err := time.ParseInLocation(DateLayout, s.ReturnDate, now.Location())
		if err != nil {
			return fmt.Errorf("%w: returnDate must be YYYY-MM-DD, got %q", ErrInvalidReturnDate, s.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate %s is before departureDate %s", ErrInvalidReturnDate, s.ReturnDate, s.DepartureDate)
		}
	}

	if s.Adults < MinAdults || s.Adults > MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d, got %d", ErrInvalidPassengers, MinAdults, MaxAdults, s.Adults)
	}

	if !s.TravelClass.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTravelClass, s.TravelClass)
	}

	return nil
}

// DepartureTime returns the parsed departure date at midnight UTC.
func (s SearchCriteria) DepartureTime() (time.Time, error) {
	return time.Parse(DateLayout, s.DepartureDate)
}

// IsRoundTrip reports whether a return date was requested.
func (s SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != ""
}

// TripType returns "return" for round trips and "oneway" otherwise.
func (s SearchCriteria) TripType() string {
	if s.IsRoundTrip() {
		return "return"
	}
	return "oneway"
}
