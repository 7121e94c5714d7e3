package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaulCategoryFor(t *testing.T) {
	tests := []struct {
		km   float64
		want HaulCategory
	}{
		{0, ShortHaul},
		{1499.9, ShortHaul},
		{1500, MediumHaul},
		{3999, MediumHaul},
		{4000, LongHaul},
		{15000, LongHaul},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HaulCategoryFor(tt.km), "distance %.1f", tt.km)
	}
}

func TestPricingConfiguration_Lookups(t *testing.T) {
	cfg := &PricingConfiguration{
		RegionPricing: []RegionPricing{{
			Region: RegionWithinEurope,
			ShortHaul: []PriceBand{
				{RouteLabel: "first", MinPrice: 50, MaxPrice: 100},
				{RouteLabel: "second", MinPrice: 500, MaxPrice: 900},
			},
		}},
		ServiceClasses: []Multiplier{{Name: "Business class", Multiplier: 2.5}, {Name: "First", Multiplier: 0}},
		TripTypes:      []Multiplier{{Name: "round-trip", Multiplier: 1.7}},
	}

	t.Run("first band wins and region matches case-insensitively", func(t *testing.T) {
		band, ok := cfg.Band("within europe", ShortHaul)
		require.True(t, ok)
		assert.Equal(t, "first", band.RouteLabel)
	})

	t.Run("missing category or region fails closed", func(t *testing.T) {
		_, ok := cfg.Band(RegionWithinEurope, LongHaul)
		assert.False(t, ok)
		_, ok = cfg.Band(RegionUSAToAsia, ShortHaul)
		assert.False(t, ok)
	})

	t.Run("class multiplier by label", func(t *testing.T) {
		m, ok := cfg.ClassMultiplier(CabinBusiness)
		assert.True(t, ok)
		assert.Equal(t, 2.5, m)

		_, ok = cfg.ClassMultiplier(CabinEconomy)
		assert.False(t, ok)

		_, ok = cfg.ClassMultiplier(CabinFirst)
		assert.False(t, ok, "non-positive multipliers are treated as missing")
	})

	t.Run("trip multiplier by spelling", func(t *testing.T) {
		m, ok := cfg.TripMultiplier(TripRoundTrip)
		assert.True(t, ok)
		assert.Equal(t, 1.7, m)

		_, ok = cfg.TripMultiplier(TripMultiCity)
		assert.False(t, ok)
	})

	t.Run("nil configuration", func(t *testing.T) {
		var none *PricingConfiguration
		_, ok := none.Band(RegionWithinEurope, ShortHaul)
		assert.False(t, ok)
		_, ok = none.ClassMultiplier(CabinEconomy)
		assert.False(t, ok)
		_, ok = none.TripMultiplier(TripOneWay)
		assert.False(t, ok)
	})
}

func TestPricingConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*PricingConfiguration)
		errContains string
	}{
		{
			name:   "default configuration is valid",
			modify: func(c *PricingConfiguration) {},
		},
		{
			name:        "no regions",
			modify:      func(c *PricingConfiguration) { c.RegionPricing = nil },
			errContains: "regionPricing is empty",
		},
		{
			name:        "blank region name",
			modify:      func(c *PricingConfiguration) { c.RegionPricing[0].Region = " " },
			errContains: "region name is required",
		},
		{
			name:        "min above max",
			modify:      func(c *PricingConfiguration) { c.RegionPricing[0].ShortHaul[0].MinPrice = 10_000 },
			errContains: "invalid price range",
		},
		{
			name:        "zero min price",
			modify:      func(c *PricingConfiguration) { c.RegionPricing[0].LongHaul[0].MinPrice = 0 },
			errContains: "invalid price range",
		},
		{
			name:        "fluctuation above 100",
			modify:      func(c *PricingConfiguration) { c.RegionPricing[0].MediumHaul[0].FluctuationPercent = 101 },
			errContains: "fluctuation",
		},
		{
			name:        "unknown service class",
			modify:      func(c *PricingConfiguration) { c.ServiceClasses[0].Name = "Coach" },
			errContains: "unknown service class",
		},
		{
			name:        "negative class multiplier",
			modify:      func(c *PricingConfiguration) { c.ServiceClasses[2].Multiplier = -1 },
			errContains: "must be positive",
		},
		{
			name:        "unknown trip type",
			modify:      func(c *PricingConfiguration) { c.TripTypes[0].Name = "Open jaw" },
			errContains: "unknown trip type",
		},
		{
			name:        "zero trip multiplier",
			modify:      func(c *PricingConfiguration) { c.TripTypes[1].Multiplier = 0 },
			errContains: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPricingConfiguration()
			tt.modify(cfg)

			err := cfg.Validate()

			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPricingConfig)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}

	var none *PricingConfiguration
	assert.ErrorIs(t, none.Validate(), ErrInvalidPricingConfig)
}

func TestPricingConfiguration_Clone(t *testing.T) {
	orig := DefaultPricingConfiguration()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.RegionPricing[0].ShortHaul[0].MinPrice = 1
	clone.ServiceClasses[0].Multiplier = 9
	clone.TripTypes = clone.TripTypes[:1]

	assert.NotEqual(t, 1.0, orig.RegionPricing[0].ShortHaul[0].MinPrice)
	assert.Equal(t, 1.0, orig.ServiceClasses[0].Multiplier)
	assert.Len(t, orig.TripTypes, 3)

	var none *PricingConfiguration
	assert.Nil(t, none.Clone())
}

func TestDefaultPricingConfiguration_TripMultipliers(t *testing.T) {
	cfg := DefaultPricingConfiguration()

	for trip, want := range map[TripType]float64{TripOneWay: 1.0, TripRoundTrip: 1.8, TripMultiCity: 1.5} {
		got, ok := cfg.TripMultiplier(trip)
		require.True(t, ok, trip)
		assert.Equal(t, want, got, trip)
	}
}
