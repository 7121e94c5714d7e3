package engine

import (
	"math"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// PriceInput is everything a strategy needs to price one leg.
type PriceInput struct {
	DistanceKm  float64
	Airline     reference.Airline
	CabinClass  domain.CabinClass
	FromCountry string
	ToCountry   string
}

// PriceStrategy prices legs and trips. Implementations must consume the stream
// in a fixed order so that equal inputs give equal prices.
type PriceStrategy interface {
	// Name is reported in search metadata.
	Name() string

	// LegPrice returns the one-way price of a single leg.
	LegPrice(in PriceInput, s *Stream) int

	// TripMultiplier scales a leg price to the trip type, relative to one-way.
	TripMultiplier(trip domain.TripType) float64
}

// NewPriceStrategy returns the configured strategy when cfg is present and valid,
// and the fallback strategy otherwise.
func NewPriceStrategy(cfg *domain.PricingConfiguration) PriceStrategy {
	if cfg == nil || cfg.Validate() != nil {
		return FallbackStrategy{}
	}
	return &ConfiguredStrategy{config: cfg.Clone()}
}

// ClassifyRegion maps a country pair onto a pricing region name.
func ClassifyRegion(fromCountry, toCountry string) string {
	fromUSA := reference.NormalizeCountry(fromCountry) == reference.UnitedStates
	toUSA := reference.NormalizeCountry(toCountry) == reference.UnitedStates
	fc, tc := reference.ContinentOfCountry(fromCountry), reference.ContinentOfCountry(toCountry)

	either := func(a, b string) bool {
		return (fc == a && tc == b) || (fc == b && tc == a)
	}

	switch {
	case fromUSA && toUSA:
		return domain.RegionUSADomestic
	case (fromUSA && tc == reference.Europe) || (toUSA && fc == reference.Europe):
		return domain.RegionUSAToEurope
	case (fromUSA && tc == reference.Asia) || (toUSA && fc == reference.Asia):
		return domain.RegionUSAToAsia
	case fc == reference.Europe && tc == reference.Europe:
		return domain.RegionWithinEurope
	case either(reference.Europe, reference.Asia):
		return domain.RegionEuropeToAsia
	case fc == reference.Asia && tc == reference.Asia:
		return domain.RegionWithinAsia
	case fc == reference.MiddleEast || tc == reference.MiddleEast:
		return domain.RegionMiddleEast
	default:
		return domain.RegionInternational
	}
}

const configuredPremiumMarkup = 1.2

// ConfiguredStrategy prices from admin-configured bands. Any lookup miss
// falls back to the hardcoded model for that leg.
type ConfiguredStrategy struct {
	config   *domain.PricingConfiguration
	fallback FallbackStrategy
}

// Name implements PriceStrategy.
func (c *ConfiguredStrategy) Name() string {
	return domain.PricingModelConfigured
}

// LegPrice implements PriceStrategy.
func (c *ConfiguredStrategy) LegPrice(in PriceInput, s *Stream) int {
	if in.FromCountry == "" || in.ToCountry == "" {
		return c.fallback.LegPrice(in, s)
	}

	region := ClassifyRegion(in.FromCountry, in.ToCountry)
	band, ok := c.config.Band(region, domain.HaulCategoryFor(in.DistanceKm))
	if !ok {
		return c.fallback.LegPrice(in, s)
	}
	classMultiplier, ok := c.config.ClassMultiplier(in.CabinClass)
	if !ok {
		return c.fallback.LegPrice(in, s)
	}

	base := s.Between(band.MinPrice, band.MaxPrice)
	jitter := (s.Next()*2 - 1) * band.FluctuationPercent / 100 * band.MinPrice

	price := (base + jitter) * classMultiplier
	if in.Airline.Premium {
		price *= configuredPremiumMarkup
	}
	return int(math.Round(price))
}

// TripMultiplier implements PriceStrategy.
func (c *ConfiguredStrategy) TripMultiplier(trip domain.TripType) float64 {
	if m, ok := c.config.TripMultiplier(trip); ok {
		return m
	}
	return c.fallback.TripMultiplier(trip)
}

// Fallback model parameters.
const (
	fallbackPremiumMarkup = 1.4
	usaInternationalBase  = 1.8
	usaInternationalRange = 0.6
)

var fallbackCabinMultipliers = map[domain.CabinClass]float64{
	domain.CabinEconomy:        1.0,
	domain.CabinPremiumEconomy: 1.6,
	domain.CabinBusiness:       2.8,
	domain.CabinFirst:          4.2,
}

// Minimum fares per cabin, before the floor jitter. USA outbound international
// routes have their own, higher table.
var (
	minimumFares = map[domain.CabinClass]float64{
		domain.CabinEconomy:        79,
		domain.CabinPremiumEconomy: 139,
		domain.CabinBusiness:       299,
		domain.CabinFirst:          499,
	}
	usaInternationalMinimumFares = map[domain.CabinClass]float64{
		domain.CabinEconomy:        349,
		domain.CabinPremiumEconomy: 599,
		domain.CabinBusiness:       1199,
		domain.CabinFirst:          1999,
	}
)

var fallbackTripMultipliers = map[domain.TripType]float64{
	domain.TripOneWay:    1.0,
	domain.TripRoundTrip: 1.8,
	domain.TripMultiCity: 1.5,
}

// FallbackStrategy is the hardcoded distance-based pricing model.
type FallbackStrategy struct{}

// Name implements PriceStrategy.
func (FallbackStrategy) Name() string {
	return domain.PricingModelFallback
}

// LegPrice implements PriceStrategy. Draw order: fuel and tax, USA international
// markup (only on those routes), market adjustment, floor jitter.
func (FallbackStrategy) LegPrice(in PriceInput, s *Stream) int {
	price := in.DistanceKm * ratePerKm(in.DistanceKm)
	if in.Airline.Premium {
		price *= fallbackPremiumMarkup
	}
	price *= cabinMultiplier(in.CabinClass)
	price *= s.Between(1.10, 1.25)

	usaInternational := reference.NormalizeCountry(in.FromCountry) == reference.UnitedStates &&
		in.ToCountry != "" && reference.NormalizeCountry(in.ToCountry) != reference.UnitedStates
	if usaInternational {
		price *= usaInternationalBase + s.Next()*usaInternationalRange
	}

	price *= s.Between(0.8, 1.2)

	floors := minimumFares
	if usaInternational {
		floors = usaInternationalMinimumFares
	}
	floor := floors[in.CabinClass]
	if floor == 0 {
		floor = floors[domain.CabinEconomy]
	}
	floor *= 1 + s.Next()*0.15

	return int(math.Round(math.Max(price, floor)))
}

// TripMultiplier implements PriceStrategy.
func (FallbackStrategy) TripMultiplier(trip domain.TripType) float64 {
	if m, ok := fallbackTripMultipliers[trip]; ok {
		return m
	}
	return 1.0
}

func ratePerKm(distanceKm float64) float64 {
	switch {
	case distanceKm < 1500:
		return 0.14
	case distanceKm < 4000:
		return 0.11
	case distanceKm < 8000:
		return 0.09
	default:
		return 0.08
	}
}

func cabinMultiplier(class domain.CabinClass) float64 {
	if m, ok := fallbackCabinMultipliers[class]; ok {
		return m
	}
	return 1.0
}
