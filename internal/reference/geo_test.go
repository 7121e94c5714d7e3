package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDistanceKm tests the haversine distance on known pairs.
func TestDistanceKm(t *testing.T) {
	jfk := Airport{Code: "JFK", Lat: 40.6413, Lon: -73.7781}
	lhr := Airport{Code: "LHR", Lat: 51.4700, Lon: -0.4543}

	assert.InDelta(t, 5540, DistanceKm(jfk, lhr), 15)
	assert.InDelta(t, DistanceKm(jfk, lhr), DistanceKm(lhr, jfk), 1e-9)
	assert.Zero(t, DistanceKm(jfk, jfk))
}

// TestNormalizeCountry tests alias folding.
func TestNormalizeCountry(t *testing.T) {
	tests := map[string]string{
		"USA":                      UnitedStates,
		"united states of america": UnitedStates,
		"UK":                       "United Kingdom",
		"UAE":                      "United Arab Emirates",
		"Türkiye":                  "Turkey",
		"France":                   "France",
		"Atlantis":                 "Atlantis",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeCountry(in), in)
	}
}

// TestContinentOfCountry tests continent lookup.
func TestContinentOfCountry(t *testing.T) {
	assert.Equal(t, NorthAmerica, ContinentOfCountry("USA"))
	assert.Equal(t, Europe, ContinentOfCountry("Moldova"))
	assert.Equal(t, MiddleEast, ContinentOfCountry("Qatar"))
	assert.Equal(t, Asia, ContinentOfCountry("Japan"))
	assert.Equal(t, Other, ContinentOfCountry("Atlantis"))
}

// TestRegionOf tests hub region lookup.
func TestRegionOf(t *testing.T) {
	assert.Equal(t, NorthAmerica, RegionOf("jfk"))
	assert.Equal(t, MiddleEast, RegionOf("DXB"))
	assert.Equal(t, "", RegionOf("RMO"))
}

// TestGateways tests that gateway lookup ignores pair order and returns copies.
func TestGateways(t *testing.T) {
	a := Gateways(Europe, NorthAmerica)
	b := Gateways(NorthAmerica, Europe)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	assert.Empty(t, Gateways(Europe, Europe))

	a[0] = "XXX"
	assert.NotEqual(t, "XXX", Gateways(Europe, NorthAmerica)[0])
}

// TestMajorHubs tests the returned copy.
func TestMajorHubs(t *testing.T) {
	hubs := MajorHubs(Europe)
	assert.Equal(t, "LHR", hubs[0])

	hubs[0] = "XXX"
	assert.Equal(t, "LHR", MajorHubs(Europe)[0])
	assert.Empty(t, MajorHubs("Atlantis"))
}
