// Package emissions estimates per-passenger CO2 for a flight when the provider
// does not declare it, and converts emission weights into everyday equivalents.
package emissions

import (
	"math"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// DefaultDistanceKm is used for every route missing from the distance table.
const DefaultDistanceKm = 1500.0

// stopPenalty is the extra share of emissions added per stop.
const stopPenalty = 0.20

// factors are kg CO2 per passenger-km by cabin.
var factors = map[domain.TravelClass]float64{
	domain.TravelClassEconomy:        0.09,
	domain.TravelClassPremiumEconomy: 0.13,
	domain.TravelClassBusiness:       0.20,
	domain.TravelClassFirst:          0.27,
}

// routeDistances holds great-circle distances in km, keyed by origin+destination.
var routeDistances = map[string]float64{
	"JFKLAX": 3983,
	"JFKLHR": 5541,
	"LAXSFO": 543,
	"LASDFW": 1789,
	"ORDLAX": 2799,
}

// Factor returns the kg/passenger-km factor for a cabin. Unknown cabins use ECONOMY.
func Factor(cabin domain.TravelClass) float64 {
	if f, ok := factors[cabin]; ok {
		return f
	}
	return factors[domain.TravelClassEconomy]
}

// Estimate returns the rounded CO2 kilograms for one passenger flying distanceKm.
// Negative distance or stops are treated as zero.
func Estimate(distanceKm float64, cabin domain.TravelClass, stops int) int {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}
	if stops < 0 {
		stops = 0
	}

	multiplier := 1 + stopPenalty*float64(stops)
	return int(math.Round(distanceKm * Factor(cabin) * multiplier))
}

// RouteDistance looks up the distance between two airports in either direction.
func RouteDistance(origin, destination string) float64 {
	if d, ok := routeDistances[origin+destination]; ok {
		return d
	}
	if d, ok := routeDistances[destination+origin]; ok {
		return d
	}
	return DefaultDistanceKm
}

// Equivalence constants used by Insights.
const (
	kgPerTreeYear = 21.0
	kgPerCarKm    = 0.12
	kgPerHomeDay  = 30.0
)

// Insights converts an emission weight into trees, car kilometres and home energy days.
func Insights(kg float64) domain.EcoInsights {
	if kg <= 0 {
		return domain.EcoInsights{}
	}
	return domain.EcoInsights{
		TreesNeeded:     int(math.Ceil(kg / kgPerTreeYear)),
		CarKmEquivalent: int(math.Round(kg / kgPerCarKm)),
		HomeEnergyDays:  math.Round(kg/kgPerHomeDay*10) / 10,
	}
}
