// Package usecase holds the flight search pipeline: offer normalization,
// priority ranking and the search orchestration around the provider call.
package usecase

import "github.com/flightprint/flightprint-api/internal/domain"

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria applied before ranking
	Filters *domain.FilterOptions

	// SortBy selects the display order (default: best, the priority order)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByBestValue,
	}
}
