// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
)

// ProjectRoot returns the repository root directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// WriteJSON encodes v into a file under dir and returns its path.
func WriteJSON(t *testing.T, dir, filename string, v interface{}) string {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("Failed to encode %s: %v", filename, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// DecodeJSON decodes data into a T, failing the test on error.
func DecodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Failed to decode JSON: %v\n%s", err, data)
	}
	return v
}

// FixedClock returns a mock clock stopped at an RFC3339 time.
func FixedClock(t *testing.T, ts string) *timeutil.MockClock {
	t.Helper()
	return timeutil.NewMockClock(MustParseTime(t, ts))
}

// PricingWithClassMultiplier returns the default configuration with one cabin
// multiplier replaced.
func PricingWithClassMultiplier(class domain.CabinClass, multiplier float64) *domain.PricingConfiguration {
	cfg := domain.DefaultPricingConfiguration()
	for i := range cfg.ServiceClasses {
		if cfg.ServiceClasses[i].Name == string(class) {
			cfg.ServiceClasses[i].Multiplier = multiplier
		}
	}
	return cfg
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

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
