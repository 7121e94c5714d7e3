package domain

import (
	"fmt"
	"strings"
)

// HaulCategory buckets routes by great-circle distance.
type HaulCategory string

// Haul categories and their distance boundaries in kilometres.
const (
	ShortHaul  HaulCategory = "shortHaul"
	MediumHaul HaulCategory = "mediumHaul"
	LongHaul   HaulCategory = "longHaul"

	ShortHaulMaxKm  = 1500
	MediumHaulMaxKm = 4000
)

// HaulCategoryFor returns the haul category for a distance.
func HaulCategoryFor(distanceKm float64) HaulCategory {
	switch {
	case distanceKm < ShortHaulMaxKm:
		return ShortHaul
	case distanceKm < MediumHaulMaxKm:
		return MediumHaul
	default:
		return LongHaul
	}
}

// PriceBand is an admin-configured price range for one route label.
type PriceBand struct {
	RouteLabel         string  `json:"routeLabel"`
	MinPrice           float64 `json:"minPrice"`
	MaxPrice           float64 `json:"maxPrice"`
	FluctuationPercent float64 `json:"fluctuationPercent"`
}

// RegionPricing holds the price bands of one region, per haul category.
type RegionPricing struct {
	Region     string      `json:"region"`
	ShortHaul  []PriceBand `json:"shortHaul"`
	MediumHaul []PriceBand `json:"mediumHaul"`
	LongHaul   []PriceBand `json:"longHaul"`
}

// Multiplier is a named price multiplier (service class or trip type).
type Multiplier struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// PricingConfiguration is the admin-overridable pricing model.
// Every lookup fails closed: a missing entry reports ok=false and the caller
// falls back to the hardcoded model.
type PricingConfiguration struct {
	RegionPricing  []RegionPricing `json:"regionPricing"`
	ServiceClasses []Multiplier    `json:"serviceClasses"`
	TripTypes      []Multiplier    `json:"tripTypes"`
}

// Band returns the first configured band for a region and haul category.
func (c *PricingConfiguration) Band(region string, haul HaulCategory) (PriceBand, bool) {
	if c == nil {
		return PriceBand{}, false
	}
	for _, rp := range c.RegionPricing {
		if !strings.EqualFold(rp.Region, region) {
			continue
		}
		var bands []PriceBand
		switch haul {
		case ShortHaul:
			bands = rp.ShortHaul
		case MediumHaul:
			bands = rp.MediumHaul
		case LongHaul:
			bands = rp.LongHaul
		}
		if len(bands) == 0 {
			return PriceBand{}, false
		}
		return bands[0], true
	}
	return PriceBand{}, false
}

// ClassMultiplier returns the configured multiplier for a cabin class.
func (c *PricingConfiguration) ClassMultiplier(class CabinClass) (float64, bool) {
	if c == nil {
		return 0, false
	}
	for _, m := range c.ServiceClasses {
		if parsed, ok := ParseCabinClass(m.Name); ok && m.Name != "" && parsed == class {
			return m.Multiplier, m.Multiplier > 0
		}
	}
	return 0, false
}

// TripMultiplier returns the configured multiplier for a trip type.
func (c *PricingConfiguration) TripMultiplier(trip TripType) (float64, bool) {
	if c == nil {
		return 0, false
	}
	for _, m := range c.TripTypes {
		if parsed, ok := ParseTripType(m.Name); ok && parsed == trip {
			return m.Multiplier, m.Multiplier > 0
		}
	}
	return 0, false
}

// Validate reports whether the configuration is usable as a whole.
func (c *PricingConfiguration) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidPricingConfig)
	}
	if len(c.RegionPricing) == 0 {
		return fmt.Errorf("%w: regionPricing is empty", ErrInvalidPricingConfig)
	}
	for _, rp := range c.RegionPricing {
		if strings.TrimSpace(rp.Region) == "" {
			return fmt.Errorf("%w: region name is required", ErrInvalidPricingConfig)
		}
		for _, bands := range [][]PriceBand{rp.ShortHaul, rp.MediumHaul, rp.LongHaul} {
			for _, b := range bands {
				if b.MinPrice <= 0 || b.MaxPrice < b.MinPrice {
					return fmt.Errorf("%w: region %q band %q has invalid price range %.2f-%.2f",
						ErrInvalidPricingConfig, rp.Region, b.RouteLabel, b.MinPrice, b.MaxPrice)
				}
				if b.FluctuationPercent < 0 || b.FluctuationPercent > 100 {
					return fmt.Errorf("%w: region %q band %q fluctuation must be within 0-100",
						ErrInvalidPricingConfig, rp.Region, b.RouteLabel)
				}
			}
		}
	}
	for _, m := range c.ServiceClasses {
		if _, ok := ParseCabinClass(m.Name); !ok || m.Name == "" {
			return fmt.Errorf("%w: unknown service class %q", ErrInvalidPricingConfig, m.Name)
		}
		if m.Multiplier <= 0 {
			return fmt.Errorf("%w: service class %q multiplier must be positive", ErrInvalidPricingConfig, m.Name)
		}
	}
	for _, m := range c.TripTypes {
		if _, ok := ParseTripType(m.Name); !ok {
			return fmt.Errorf("%w: unknown trip type %q", ErrInvalidPricingConfig, m.Name)
		}
		if m.Multiplier <= 0 {
			return fmt.Errorf("%w: trip type %q multiplier must be positive", ErrInvalidPricingConfig, m.Name)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c *PricingConfiguration) Clone() *PricingConfiguration {
	if c == nil {
		return nil
	}
	out := &PricingConfiguration{
		RegionPricing:  make([]RegionPricing, len(c.RegionPricing)),
		ServiceClasses: append([]Multiplier(nil), c.ServiceClasses...),
		TripTypes:      append([]Multiplier(nil), c.TripTypes...),
	}
	for i, rp := range c.RegionPricing {
		out.RegionPricing[i] = RegionPricing{
			Region:     rp.Region,
			ShortHaul:  append([]PriceBand(nil), rp.ShortHaul...),
			MediumHaul: append([]PriceBand(nil), rp.MediumHaul...),
			LongHaul:   append([]PriceBand(nil), rp.LongHaul...),
		}
	}
	return out
}

// Region names used by the route classifier.
const (
	RegionUSADomestic   = "USA Domestic"
	RegionUSAToEurope   = "USA to Europe"
	RegionUSAToAsia     = "USA to Asia"
	RegionWithinEurope  = "Within Europe"
	RegionEuropeToAsia  = "Europe to Asia"
	RegionWithinAsia    = "Within Asia"
	RegionMiddleEast    = "Middle East Routes"
	RegionInternational = "International"
)

// DefaultPricingConfiguration is the configuration shipped with the service.
// Trip-type multipliers are relative to a one-way fare, matching the fallback model.
func DefaultPricingConfiguration() *PricingConfiguration {
	band := func(label string, lo, hi, fluct float64) []PriceBand {
		return []PriceBand{{RouteLabel: label, MinPrice: lo, MaxPrice: hi, FluctuationPercent: fluct}}
	}
	return &PricingConfiguration{
		RegionPricing: []RegionPricing{
			{
				Region:     RegionUSADomestic,
				ShortHaul:  band("Regional hop", 89, 249, 15),
				MediumHaul: band("Coast to coast", 149, 399, 15),
				LongHaul:   band("Hawaii and Alaska", 249, 599, 12),
			},
			{
				Region:     RegionUSAToEurope,
				MediumHaul: band("Atlantic Canada and Iceland gateways", 399, 899, 15),
				LongHaul:   band("Transatlantic", 449, 1199, 18),
			},
			{
				Region:   RegionUSAToAsia,
				LongHaul: band("Transpacific", 599, 1499, 18),
			},
			{
				Region:     RegionWithinEurope,
				ShortHaul:  band("Intra-Europe", 49, 229, 20),
				MediumHaul: band("Europe long-range", 99, 349, 18),
				LongHaul:   band("Europe outer reaches", 179, 499, 15),
			},
			{
				Region:     RegionEuropeToAsia,
				MediumHaul: band("Europe to Western Asia", 299, 749, 15),
				LongHaul:   band("Europe to East Asia", 449, 1199, 15),
			},
			{
				Region:     RegionWithinAsia,
				ShortHaul:  band("Intra-Asia short", 79, 259, 20),
				MediumHaul: band("Intra-Asia regional", 149, 449, 18),
				LongHaul:   band("Intra-Asia long", 299, 899, 15),
			},
			{
				Region:     RegionMiddleEast,
				ShortHaul:  band("Gulf shuttle", 99, 299, 15),
				MediumHaul: band("Middle East regional", 199, 599, 15),
				LongHaul:   band("Middle East long-haul", 399, 1099, 15),
			},
			{
				Region:     RegionInternational,
				ShortHaul:  band("Cross-border short", 119, 349, 15),
				MediumHaul: band("International regional", 249, 699, 15),
				LongHaul:   band("Intercontinental", 449, 1299, 18),
			},
		},
		ServiceClasses: []Multiplier{
			{Name: string(CabinEconomy), Multiplier: 1.0},
			{Name: string(CabinPremiumEconomy), Multiplier: 1.5},
			{Name: string(CabinBusiness), Multiplier: 2.1},
			{Name: string(CabinFirst), Multiplier: 3.2},
		},
		TripTypes: []Multiplier{
			{Name: "One-way", Multiplier: 1.0},
			{Name: string(TripRoundTrip), Multiplier: 1.8},
			{Name: string(TripMultiCity), Multiplier: 1.5},
		},
	}
}
