package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Provider timestamps are airport-local wall clock values, usually without an offset.
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseLocalTimestamp parses a provider segment timestamp.
// Values without an offset are returned as UTC wall clock time.
func ParseLocalTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range localTimestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", value, lastErr)
}
