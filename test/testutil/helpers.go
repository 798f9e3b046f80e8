// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// TestDataPath returns the absolute path of a file in test/testdata.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadOffers decodes the "data" array of a provider response fixture.
func LoadOffers(t *testing.T, filename string) []domain.RawOffer {
	t.Helper()

	var body struct {
		Data []domain.RawOffer `json:"data"`
	}
	if err := json.Unmarshal(LoadTestJSON(t, filename), &body); err != nil {
		t.Fatalf("Failed to decode offers in %s: %v", filename, err)
	}
	return body.Data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns the date days after now in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
