package http

import (
	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/usecase"
)

// ToDomainCriteria converts a SearchFlightsRequest to domain.SearchCriteria.
// Casing and defaults are applied by the use case.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		TravelClass:   domain.TravelClass(req.TravelClass),
	}
}

// ToSearchOptions extracts filter and sort options from a SearchFlightsRequest.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	opts.SortBy = domain.ParseSortOption(req.SortBy)

	filters := &domain.FilterOptions{
		MaxPrice:       req.MaxPrice,
		MaxStops:       req.MaxStops,
		Airlines:       req.Airlines,
		MaxEmissionsKg: req.MaxEmissionsKg,
	}
	if req.MinDuration != nil || req.MaxDuration != nil {
		filters.DurationRange = &domain.DurationRange{
			MinMinutes: req.MinDuration,
			MaxMinutes: req.MaxDuration,
		}
	}
	if !filters.IsEmpty() {
		opts.Filters = filters
	}
	return opts
}
