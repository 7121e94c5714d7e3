package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// TestEligibleAirlines_DomesticUSA tests that US-internal routes only get domestic carriers.
func TestEligibleAirlines_DomesticUSA(t *testing.T) {
	c := testCatalog(t)

	eligible := EligibleAirlines(c.Airlines(), airport(t, c, "JFK"), airport(t, c, "LAX"))

	require.NotEmpty(t, eligible)
	for _, a := range eligible {
		assert.True(t, a.DomesticUSA, "%s is not a domestic USA carrier", a.Name)
	}
}

// TestEligibleAirlines_InternationalExcludesDomestic tests that domestic carriers never fly abroad.
func TestEligibleAirlines_InternationalExcludesDomestic(t *testing.T) {
	c := testCatalog(t)

	eligible := EligibleAirlines(c.Airlines(), airport(t, c, "JFK"), airport(t, c, "LHR"))

	require.NotEmpty(t, eligible)
	names := map[string]bool{}
	for _, a := range eligible {
		assert.False(t, a.DomesticUSA, "%s should not serve an international route", a.Name)
		names[a.Name] = true
	}
	assert.True(t, names["British Airways"])
	// premium Middle East carriers reach long routes
	assert.True(t, names["Emirates"])
}

// TestEligibleAirlines_MiddleEastReach tests the distance rule for premium Middle East carriers.
func TestEligibleAirlines_MiddleEastReach(t *testing.T) {
	roster := []reference.Airline{
		{Name: "Gulf Premium", Country: "Qatar", Continent: reference.MiddleEast, Premium: true},
		{Name: "Local", Country: "France", Continent: reference.Europe},
	}
	cdg := reference.Airport{Code: "CDG", City: "Paris", Country: "France", Lat: 49.0097, Lon: 2.5479}
	ams := reference.Airport{Code: "AMS", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lon: 4.7683}
	sin := reference.Airport{Code: "SIN", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lon: 103.9915}

	short := EligibleAirlines(roster, cdg, ams)
	require.Len(t, short, 1)
	assert.Equal(t, "Local", short[0].Name)

	long := EligibleAirlines(roster, cdg, sin)
	assert.Len(t, long, 2)
}

// TestEligibleAirlines_WidensWhenEmpty tests that an empty match falls back to the roster.
func TestEligibleAirlines_WidensWhenEmpty(t *testing.T) {
	roster := []reference.Airline{
		{Name: "Faraway", Country: "Japan", Continent: reference.Asia},
	}
	a := reference.Airport{Code: "AAA", City: "A", Country: "Atlantis"}
	b := reference.Airport{Code: "BBB", City: "B", Country: "Lemuria"}

	eligible := EligibleAirlines(roster, a, b)

	require.Len(t, eligible, 1)
	assert.Equal(t, "Faraway", eligible[0].Name)
}

// TestPrioritize_NationalFirst tests that endpoint-country carriers lead the list.
func TestPrioritize_NationalFirst(t *testing.T) {
	c := testCatalog(t)
	jfk, lhr := airport(t, c, "JFK"), airport(t, c, "LHR")
	eligible := EligibleAirlines(c.Airlines(), jfk, lhr)

	national := 0
	for _, a := range eligible {
		if a.Country == "United Kingdom" || a.Country == reference.UnitedStates {
			national++
		}
	}
	require.Greater(t, national, 0)

	prioritized := Prioritize(eligible, jfk, lhr, NewStream(99))

	require.Len(t, prioritized, len(eligible))
	for i := 0; i < national; i++ {
		assert.Contains(t, []string{"United Kingdom", reference.UnitedStates}, prioritized[i].Country)
	}
}

// TestPrioritize_Deterministic tests that the shuffle follows the stream.
func TestPrioritize_Deterministic(t *testing.T) {
	c := testCatalog(t)
	jfk, sin := airport(t, c, "JFK"), airport(t, c, "SIN")
	eligible := EligibleAirlines(c.Airlines(), jfk, sin)

	a := Prioritize(eligible, jfk, sin, NewStream(5))
	b := Prioritize(eligible, jfk, sin, NewStream(5))

	assert.Equal(t, a, b)
}

// TestSelectCarriers tests cycling through a short list.
func TestSelectCarriers(t *testing.T) {
	list := []reference.Airline{{Name: "A"}, {Name: "B"}}

	got := SelectCarriers(list, 5)

	require.Len(t, got, 5)
	assert.Equal(t, []string{"A", "B", "A", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name, got[4].Name})
	assert.Nil(t, SelectCarriers(nil, 3))
}

// TestRouteCarriers_Override tests that forced routes skip the general rules in both directions.
func TestRouteCarriers_Override(t *testing.T) {
	c := testCatalog(t)
	rmo, ias := airport(t, c, "RMO"), airport(t, c, "IAS")

	for _, pair := range [][2]reference.Airport{{rmo, ias}, {ias, rmo}} {
		s := NewStream(1)
		carriers := routeCarriers(c, pair[0], pair[1], s)

		require.Len(t, carriers, 1)
		assert.Equal(t, "HiSky", carriers[0].Name)
		assert.Equal(t, 0, s.Draws())
	}
}
