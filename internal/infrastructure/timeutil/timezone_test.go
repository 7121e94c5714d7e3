package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	ClearLocationCache()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"UTC", false},
		{"America/New_York", false},
		{"Europe/Chisinau", false},
		{"Invalid/Timezone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := GetLocation(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, loc)
				assert.Contains(t, err.Error(), "failed to load timezone")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, loc.String())
		})
	}
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	loc1, err := GetLocation("Europe/London")
	require.NoError(t, err)
	loc2, err := GetLocation("Europe/London")
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, tz := range []string{UTC, "America/New_York", "Europe/London", "Asia/Singapore"} {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				loc, err := GetLocation(name)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(tz)
		}
	}
	wg.Wait()
}

func TestMustGetLocation(t *testing.T) {
	assert.NotPanics(t, func() { MustGetLocation(UTC) })
	assert.Panics(t, func() { MustGetLocation("Not/AZone") })
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-08-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 7, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("07/08/2025")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		days int
		want string
	}{
		{"zero days", "2025-08-07", 0, "2025-08-07"},
		{"next day", "2025-08-07", 1, "2025-08-08"},
		{"week rolls the month", "2025-08-28", 7, "2025-09-04"},
		{"year end", "2025-12-31", 1, "2026-01-01"},
		{"leap day", "2028-02-28", 1, "2028-02-29"},
		{"backwards", "2025-03-01", -1, "2025-02-28"},
		{"unparseable date is kept", "soon", 3, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddDays(tt.date, tt.days))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tokyo := MustGetLocation("Asia/Tokyo")
	utc := time.Date(2025, 8, 7, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-08-07", FormatDate(utc))
	assert.Equal(t, "2025-08-08", FormatDate(utc.In(tokyo)))
}
