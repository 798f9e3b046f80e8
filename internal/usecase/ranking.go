package usecase

import (
	"sort"

	"github.com/flightprint/flightprint-api/internal/airline"
	"github.com/flightprint/flightprint-api/internal/domain"
)

// Priority score terms.
const (
	directBonus      = 1000.0
	premiumBonus     = 500.0
	perStopPenalty   = 200.0
	priceDivisor     = 10.0
	perSeatBonus     = 2.0
	perMinutePenalty = 0.5
)

// PriorityScore is the single ranking function; higher is better.
//
//	score = 1000·[stops = 0] + 500·[any premium carrier]
//	      − 200·stops − grandTotal/10 + 2·bookableSeats
//	      − 0.5·minutes(first itinerary)
//
// Only the first itinerary's duration counts, so a long return leg is not penalized.
func PriorityScore(f domain.Flight) float64 {
	score := 0.0

	if f.Stops == 0 {
		score += directBonus
	}

	for _, a := range f.Airlines {
		if airline.IsPremium(a.Code) {
			score += premiumBonus
			break
		}
	}

	score -= perStopPenalty * float64(f.Stops)
	score -= f.Price.GrandTotal / priceDivisor
	score += perSeatBonus * float64(f.NumberOfBookableSeats)
	score -= perMinutePenalty * float64(f.DurationMinutes())

	return score
}

// RankFlights returns a copy of flights with RankingScore set, ordered by score
// descending. Equal scores keep their input order.
func RankFlights(flights []domain.Flight) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	for i := range result {
		result[i].RankingScore = PriorityScore(result[i])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RankingScore > result[j].RankingScore
	})

	return result
}

// SortFlights reorders ranked flights for display. SortByBestValue keeps the
// priority order; every other option sorts by stops first and then by its own key.
// The sort is stable and the input slice is not modified.
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	var key func(domain.Flight) float64
	switch sortBy {
	case domain.SortByPrice:
		key = func(f domain.Flight) float64 { return f.Price.GrandTotal }
	case domain.SortByDuration:
		key = func(f domain.Flight) float64 { return float64(f.DurationMinutes()) }
	case domain.SortByEmissions:
		key = func(f domain.Flight) float64 { return f.CarbonEmissions.Weight }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Stops != result[j].Stops {
			return result[i].Stops < result[j].Stops
		}
		return key(result[i]) < key(result[j])
	})

	return result
}
