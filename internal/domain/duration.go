package domain

import (
	"regexp"
	"strconv"
)

// UnknownDurationMinutes is used whenever a duration token cannot be read.
const UnknownDurationMinutes = 9999

// durationPattern matches the hour/minute part of provider duration tokens ("PT2H30M").
// It is deliberately unanchored: day components ("P1DT2H") never match.
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// DurationMinutes converts a duration token into minutes.
// Empty or unreadable tokens yield UnknownDurationMinutes.
func DurationMinutes(token string) int {
	if token == "" {
		return UnknownDurationMinutes
	}

	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return UnknownDurationMinutes
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return hours*60 + minutes
}

// FormatMinutes renders minutes as "Xh Ym", "Xh" or "Ym".
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
