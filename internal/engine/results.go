package engine

import (
	"sort"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// Pin tolerances.
const (
	pinPriceTolerance    = 100
	pinDurationTolerance = 120
)

// SortByPrice orders flights cheapest first; equal prices keep ID order.
func SortByPrice(flights []domain.GeneratedFlight) {
	sort.SliceStable(flights, func(i, j int) bool {
		if flights[i].Price != flights[j].Price {
			return flights[i].Price < flights[j].Price
		}
		return flights[i].ID < flights[j].ID
	})
}

// SelectResults returns at most limit offers from pool, cheapest first. When
// departed is set, offers it reports are dropped and the list is refilled from
// the cheapest remaining pool offers, departed or not, so that the result stays
// at min(limit, len(pool)).
func SelectResults(pool []domain.GeneratedFlight, limit int, departed func(domain.GeneratedFlight) bool) []domain.GeneratedFlight {
	sorted := append([]domain.GeneratedFlight(nil), pool...)
	SortByPrice(sorted)

	if departed == nil {
		return truncate(sorted, limit)
	}

	kept := make([]domain.GeneratedFlight, 0, limit)
	ids := make(map[int]bool, len(sorted))
	for _, f := range sorted {
		if !departed(f) {
			kept = append(kept, f)
			ids[f.ID] = true
		}
	}

	for _, f := range sorted {
		if len(kept) >= limit {
			break
		}
		if !ids[f.ID] {
			kept = append(kept, f)
			ids[f.ID] = true
		}
	}

	SortByPrice(kept)
	return truncate(kept, limit)
}

// DepartedBy reports offers whose departure clock is at or before nowMinute.
// Offers with an unreadable clock are kept.
func DepartedBy(nowMinute int) func(domain.GeneratedFlight) bool {
	return func(f domain.GeneratedFlight) bool {
		m, err := ParseClock(f.Departure.Time)
		return err == nil && m <= nowMinute
	}
}

// MatchSelected returns the index of the first offer that matches the fingerprint:
// same airline by canonical name, price within 100 and duration within 120 minutes.
func MatchSelected(flights []domain.GeneratedFlight, sel domain.SelectedOffer, sameAirline func(a, b string) bool) (int, bool) {
	selMinutes, err := domain.ParseDuration(sel.Duration)
	if err != nil {
		return 0, false
	}
	for i, f := range flights {
		if !sameAirline(f.Airline, sel.Airline) {
			continue
		}
		if abs(f.Price-sel.Price) <= pinPriceTolerance && abs(f.DurationMinutes-selMinutes) <= pinDurationTolerance {
			return i, true
		}
	}
	return 0, false
}

// MoveToFront moves flights[i] to index 0, keeping the others in order.
func MoveToFront(flights []domain.GeneratedFlight, i int) []domain.GeneratedFlight {
	if i <= 0 || i >= len(flights) {
		return flights
	}
	pinned := flights[i]
	copy(flights[1:i+1], flights[:i])
	flights[0] = pinned
	return flights
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
