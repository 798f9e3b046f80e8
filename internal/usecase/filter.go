package usecase

import "github.com/flightprint/flightprint-api/internal/domain"

// ApplyFilters returns the flights matching every criterion in opts.
// The input slice is never modified; a nil or empty opts returns it as is.
func ApplyFilters(flights []domain.Flight, opts *domain.FilterOptions) []domain.Flight {
	if opts.IsEmpty() {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if opts.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}
