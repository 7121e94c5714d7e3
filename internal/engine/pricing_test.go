package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

var allClasses = []domain.CabinClass{
	domain.CabinEconomy,
	domain.CabinPremiumEconomy,
	domain.CabinBusiness,
	domain.CabinFirst,
}

// TestNewPriceStrategy tests strategy selection.
func TestNewPriceStrategy(t *testing.T) {
	assert.Equal(t, domain.PricingModelFallback, NewPriceStrategy(nil).Name())
	assert.Equal(t, domain.PricingModelFallback, NewPriceStrategy(&domain.PricingConfiguration{}).Name())
	assert.Equal(t, domain.PricingModelConfigured, NewPriceStrategy(domain.DefaultPricingConfiguration()).Name())
}

// TestNewPriceStrategy_CopiesConfig tests that later edits do not leak into the strategy.
func TestNewPriceStrategy_CopiesConfig(t *testing.T) {
	cfg := domain.DefaultPricingConfiguration()
	strategy := NewPriceStrategy(cfg)

	cfg.TripTypes[1].Multiplier = 9

	assert.Equal(t, 1.8, strategy.TripMultiplier(domain.TripRoundTrip))
}

// TestClassifyRegion tests the region rules.
func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{"United States", "USA", domain.RegionUSADomestic},
		{"United States", "United Kingdom", domain.RegionUSAToEurope},
		{"France", "United States", domain.RegionUSAToEurope},
		{"Japan", "United States", domain.RegionUSAToAsia},
		{"France", "Germany", domain.RegionWithinEurope},
		{"Germany", "Japan", domain.RegionEuropeToAsia},
		{"Japan", "Singapore", domain.RegionWithinAsia},
		{"United Arab Emirates", "India", domain.RegionMiddleEast},
		{"Brazil", "South Africa", domain.RegionInternational},
		{"United States", "Brazil", domain.RegionInternational},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRegion(tt.from, tt.to))
		})
	}
}

// TestStrategies_ClassMonotonic tests that, with identical draws, every cabin upgrade costs strictly more.
func TestStrategies_ClassMonotonic(t *testing.T) {
	strategies := map[string]PriceStrategy{
		"fallback":   FallbackStrategy{},
		"configured": NewPriceStrategy(domain.DefaultPricingConfiguration()),
	}
	routes := []PriceInput{
		{DistanceKm: 5540, FromCountry: "United States", ToCountry: "United Kingdom"},
		{DistanceKm: 340, FromCountry: "France", ToCountry: "United Kingdom"},
		{DistanceKm: 3980, FromCountry: "United States", ToCountry: "United States"},
		{DistanceKm: 10800, FromCountry: "Brazil", ToCountry: "Japan", Airline: reference.Airline{Premium: true}},
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			for _, route := range routes {
				for seed := int64(1); seed <= 25; seed++ {
					prev := -1
					for _, class := range allClasses {
						in := route
						in.CabinClass = class
						price := strategy.LegPrice(in, NewStream(seed))
						assert.Greater(t, price, prev, "%s %v seed %d", class, route, seed)
						prev = price
					}
				}
			}
		})
	}
}

// TestConfiguredStrategy_WithinBand tests that configured prices stay inside the band plus jitter.
func TestConfiguredStrategy_WithinBand(t *testing.T) {
	cfg := domain.DefaultPricingConfiguration()
	band, ok := cfg.Band(domain.RegionWithinEurope, domain.ShortHaul)
	require.True(t, ok)
	strategy := NewPriceStrategy(cfg)

	lo := math.Floor(band.MinPrice * (1 - band.FluctuationPercent/100))
	hi := math.Ceil(band.MaxPrice + band.MinPrice*band.FluctuationPercent/100)

	for seed := int64(1); seed <= 200; seed++ {
		price := strategy.LegPrice(PriceInput{
			DistanceKm:  340,
			CabinClass:  domain.CabinEconomy,
			FromCountry: "United Kingdom",
			ToCountry:   "France",
		}, NewStream(seed))
		assert.GreaterOrEqual(t, float64(price), lo)
		assert.LessOrEqual(t, float64(price), hi)
	}
}

// TestConfiguredStrategy_FallsBackPerLeg tests that a missing band prices like the fallback model.
func TestConfiguredStrategy_FallsBackPerLeg(t *testing.T) {
	cfg := &domain.PricingConfiguration{
		RegionPricing: []domain.RegionPricing{{
			Region:    domain.RegionUSADomestic,
			ShortHaul: []domain.PriceBand{{RouteLabel: "hop", MinPrice: 100, MaxPrice: 200}},
		}},
		ServiceClasses: []domain.Multiplier{{Name: "Economy", Multiplier: 1}},
	}
	strategy := NewPriceStrategy(cfg)
	require.Equal(t, domain.PricingModelConfigured, strategy.Name())

	tests := []struct {
		name string
		in   PriceInput
	}{
		{"missing region", PriceInput{DistanceKm: 880, CabinClass: domain.CabinEconomy, FromCountry: "France", ToCountry: "Germany"}},
		{"missing haul", PriceInput{DistanceKm: 3980, CabinClass: domain.CabinEconomy, FromCountry: "United States", ToCountry: "United States"}},
		{"missing class", PriceInput{DistanceKm: 600, CabinClass: domain.CabinFirst, FromCountry: "United States", ToCountry: "United States"}},
		{"missing country", PriceInput{DistanceKm: 600, CabinClass: domain.CabinEconomy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := FallbackStrategy{}.LegPrice(tt.in, NewStream(77))
			assert.Equal(t, want, strategy.LegPrice(tt.in, NewStream(77)))
		})
	}

	// trip types absent from the configuration use the fallback multipliers
	assert.Equal(t, 1.8, strategy.TripMultiplier(domain.TripRoundTrip))
}

// TestFallbackStrategy_Floor tests the minimum fare on very short routes.
func TestFallbackStrategy_Floor(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		price := FallbackStrategy{}.LegPrice(PriceInput{
			DistanceKm:  100,
			CabinClass:  domain.CabinEconomy,
			FromCountry: "France",
			ToCountry:   "Belgium",
		}, NewStream(seed))
		assert.GreaterOrEqual(t, price, 79)
		assert.LessOrEqual(t, price, 91)
	}
}

// TestFallbackStrategy_USAInternationalFloor tests the higher floor out of the USA.
func TestFallbackStrategy_USAInternationalFloor(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		price := FallbackStrategy{}.LegPrice(PriceInput{
			DistanceKm:  550,
			CabinClass:  domain.CabinEconomy,
			FromCountry: "United States",
			ToCountry:   "Canada",
		}, NewStream(seed))
		assert.GreaterOrEqual(t, price, 349)
	}
}

// TestTripMultipliers tests the one-way relative convention shared by both models.
func TestTripMultipliers(t *testing.T) {
	for _, strategy := range []PriceStrategy{FallbackStrategy{}, NewPriceStrategy(domain.DefaultPricingConfiguration())} {
		assert.Equal(t, 1.0, strategy.TripMultiplier(domain.TripOneWay))
		assert.Equal(t, 1.8, strategy.TripMultiplier(domain.TripRoundTrip))
		assert.Equal(t, 1.5, strategy.TripMultiplier(domain.TripMultiCity))
	}
}
