package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/flightprint/flightprint-api/internal/airport"
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/cache"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// Airport search settings.
const (
	MinAirportQueryLength = 2
	MaxAirportResults     = 50
	DefaultAirportTTL     = time.Hour
)

// AirportUseCase serves airport autocomplete and lookups.
type AirportUseCase interface {
	// Search returns airports whose code, name, city or country contains query.
	// Queries shorter than MinAirportQueryLength return an empty list.
	Search(ctx context.Context, query string) ([]domain.Airport, error)

	// Get returns the airport for a code, IATA or ICAO identifier.
	Get(ctx context.Context, code string) (domain.Airport, error)

	// Popular returns the curated list of frequently searched airports.
	Popular(ctx context.Context) []domain.Airport
}

type airportUseCase struct {
	directory []domain.Airport
	results   *cache.Cache[[]domain.Airport]
	ttl       time.Duration
}

// NewAirportUseCase creates an AirportUseCase over the static directory.
// A non-positive ttl uses DefaultAirportTTL.
func NewAirportUseCase(ttl time.Duration, clock timeutil.Clock) AirportUseCase {
	if ttl <= 0 {
		ttl = DefaultAirportTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &airportUseCase{
		directory: airport.All(),
		results:   cache.NewWithClock(cache.CloneSlice[domain.Airport], clock),
		ttl:       ttl,
	}
}

// Search implements AirportUseCase.
func (uc *airportUseCase) Search(_ context.Context, query string) ([]domain.Airport, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinAirportQueryLength {
		return []domain.Airport{}, nil
	}

	key := "search:" + q
	if cached, ok := uc.results.Get(key); ok {
		return cached, nil
	}

	matches := matchAirports(uc.directory, q)
	uc.results.Set(key, matches, uc.ttl)
	return matches, nil
}

// matchAirports keeps substring matches, puts exact code hits first, then
// code prefixes, and leaves the remainder in directory order.
func matchAirports(directory []domain.Airport, q string) []domain.Airport {
	type hit struct {
		airport domain.Airport
		rank    int
	}

	hits := make([]hit, 0, 16)
	for _, a := range directory {
		code := strings.ToLower(a.Code)
		switch {
		case code == q || strings.ToLower(a.ICAO) == q:
			hits = append(hits, hit{a, 0})
		case strings.HasPrefix(code, q):
			hits = append(hits, hit{a, 1})
		case airportContains(a, q):
			hits = append(hits, hit{a, 2})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	if len(hits) > MaxAirportResults {
		hits = hits[:MaxAirportResults]
	}
	out := make([]domain.Airport, len(hits))
	for i, h := range hits {
		out[i] = h.airport
	}
	return out
}

func airportContains(a domain.Airport, q string) bool {
	for _, field := range []string{a.IATA, a.ICAO, a.Name, a.City, a.Country, a.CountryName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Get implements AirportUseCase.
func (uc *airportUseCase) Get(_ context.Context, code string) (domain.Airport, error) {
	a, ok := airport.Lookup(code)
	if !ok {
		return domain.Airport{}, domain.ErrNotFound
	}
	return a, nil
}

// Popular implements AirportUseCase.
func (uc *airportUseCase) Popular(context.Context) []domain.Airport {
	return airport.Popular()
}

var _ AirportUseCase = (*airportUseCase)(nil)
