package domain

import "strings"

// SortOption defines the available display orderings for flight results.
// Every option keeps fewer stops first; the option only breaks ties.
type SortOption string

// Available sort options.
const (
	// SortByBestValue keeps the ranking engine's order (default)
	SortByBestValue SortOption = "best"

	// SortByPrice sorts by grand total ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by first itinerary duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByEmissions sorts by CO2 weight ascending (greenest first)
	SortByEmissions SortOption = "emissions"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByBestValue, SortByPrice, SortByDuration, SortByEmissions:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByBestValue if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByBestValue
}

// FilterOptions defines optional filters to apply to normalized flights.
type FilterOptions struct {
	// MaxPrice filters out flights whose grand total is above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops filters out flights with more stops than this value
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only flights that use at least one of these carrier codes
	// Empty slice means no filtering by airline
	Airlines []string `json:"airlines,omitempty"`

	// MaxEmissionsKg filters out flights emitting more CO2 than this weight
	MaxEmissionsKg *float64 `json:"maxEmissionsKg,omitempty"`

	// DurationRange filters flights by first itinerary duration in minutes
	DurationRange *DurationRange `json:"durationRange,omitempty"`
}

// DurationRange represents a duration range filter for flights.
type DurationRange struct {
	// MinMinutes is the minimum acceptable flight duration in minutes (inclusive)
	MinMinutes *int `json:"minMinutes,omitempty"`

	// MaxMinutes is the maximum acceptable flight duration in minutes (inclusive)
	MaxMinutes *int `json:"maxMinutes,omitempty"`
}

// IsValid checks if the duration range is valid.
// Returns false if min > max, or if any values are negative.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}
	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// Contains checks if a given duration (in minutes) falls within the range.
func (dr *DurationRange) Contains(durationMinutes int) bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && durationMinutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && durationMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil ||
		(f.MaxPrice == nil && f.MaxStops == nil && len(f.Airlines) == 0 &&
			f.MaxEmissionsKg == nil && f.DurationRange == nil)
}

// MatchesFlight checks if a flight matches all the filter criteria.
func (f *FilterOptions) MatchesFlight(flight Flight) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && flight.Price.GrandTotal > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, code := range f.Airlines {
			if flight.HasAirline(code) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MaxEmissionsKg != nil && flight.CarbonEmissions.Weight > *f.MaxEmissionsKg {
		return false
	}

	if f.DurationRange != nil && !f.DurationRange.Contains(flight.DurationMinutes()) {
		return false
	}

	return true
}
