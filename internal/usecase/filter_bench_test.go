package usecase

import (
	"strconv"
	"testing"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// BenchmarkApplyFilters benchmarks the filter application with various filter combinations
func BenchmarkApplyFilters(b *testing.B) {
	carriers := []string{"AA", "WN", "EK", "B6", "DL"}
	flights := make([]domain.Flight, domain.DefaultMaxOffers)
	for i := range flights {
		flights[i] = rankedFlight(strconv.Itoa(i), i%3, carriers[i%len(carriers)], float64(100+i), "PT5H", 9)
		flights[i].CarbonEmissions = domain.CarbonEmissions{Weight: float64(200 + i), WeightUnit: domain.WeightUnitKG}
	}

	b.Run("no_filters", func(b *testing.B) {
		filters := &domain.FilterOptions{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, filters)
		}
	})

	b.Run("price_filter", func(b *testing.B) {
		filters := &domain.FilterOptions{MaxPrice: floatRef(250)}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, filters)
		}
	})

	b.Run("airline_filter", func(b *testing.B) {
		filters := &domain.FilterOptions{Airlines: []string{"EK", "DL"}}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, filters)
		}
	})

	b.Run("all_filters", func(b *testing.B) {
		filters := &domain.FilterOptions{
			MaxPrice:       floatRef(300),
			MaxStops:       intRef(1),
			Airlines:       []string{"AA", "B6"},
			MaxEmissionsKg: floatRef(400),
			DurationRange:  &domain.DurationRange{MinMinutes: intRef(60), MaxMinutes: intRef(600)},
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, filters)
		}
	})
}
