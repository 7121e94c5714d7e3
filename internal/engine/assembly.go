package engine

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// Amenity names and the distances that unlock them.
const (
	AmenityWiFi          = "Wi-Fi"
	AmenityEntertainment = "Entertainment"
	AmenityMeal          = "Meal"
	AmenityLounge        = "Lounge Access"

	entertainmentMinKm = 500.0
	mealMinKm          = 1000.0
)

// Amenities lists the on-board amenities of a leg.
func Amenities(distanceKm float64, premium bool) []string {
	out := []string{AmenityWiFi}
	if distanceKm > entertainmentMinKm {
		out = append(out, AmenityEntertainment)
	}
	if distanceKm > mealMinKm {
		out = append(out, AmenityMeal)
	}
	if premium {
		out = append(out, AmenityLounge)
	}
	return out
}

// legPlan is a resolved origin/destination pair on a date.
type legPlan struct {
	from     reference.Airport
	to       reference.Airport
	date     string
	distance float64
}

func newLegPlan(from, to reference.Airport, date string) legPlan {
	return legPlan{from: from, to: to, date: date, distance: reference.DistanceKm(from, to)}
}

func (p legPlan) reversed(date string) legPlan {
	return legPlan{from: p.to, to: p.from, date: date, distance: p.distance}
}

// fixedFare pins the duration and price of a regenerated offer.
type fixedFare struct {
	price    int
	minutes  int
	duration string
}

// buildLeg generates one directional leg. Draw order: stop count, stopovers,
// duration, clock, price, flight number. The price draw is skipped when pricing
// is nil (return legs) and the duration and price draws when fix is set.
func (e *Engine) buildLeg(p legPlan, airline reference.Airline, class domain.CabinClass, pricing PriceStrategy, fix *fixedFare, s *Stream) domain.FlightSegment {
	stops := StopCount(p.distance, s)
	stopovers := SelectStopovers(e.catalog, p.from, p.to, stops, airline, s)

	var minutes int
	var duration string
	if fix != nil {
		minutes, duration = fix.minutes, fix.duration
	} else {
		minutes = FlightMinutes(p.distance, len(stopovers), s)
		duration = domain.FormatDuration(minutes)
	}

	schedule := ClockTimes(minutes, s)

	var price int
	switch {
	case fix != nil:
		price = fix.price
	case pricing != nil:
		price = pricing.LegPrice(PriceInput{
			DistanceKm:  p.distance,
			Airline:     airline,
			CabinClass:  class,
			FromCountry: p.from.Country,
			ToCountry:   p.to.Country,
		}, s)
	}

	number := flightNumber(airline, s)

	return domain.FlightSegment{
		Journey: domain.Journey{
			Airline:      airline.Name,
			Logo:         e.catalog.LogoFor(airline.Name),
			FlightNumber: number,
			Departure: domain.Endpoint{
				Time:        schedule.Departure,
				AirportCode: p.from.Code,
				City:        p.from.City,
				Date:        p.date,
			},
			Arrival: domain.Endpoint{
				Time:        schedule.Arrival,
				AirportCode: p.to.Code,
				City:        p.to.City,
				Date:        timeutil.AddDays(p.date, schedule.DayOffset),
			},
			Duration:        duration,
			DurationMinutes: minutes,
			Stops:           len(stopovers),
			Stopovers:       stopovers,
			CabinClass:      class,
			Amenities:       Amenities(p.distance, airline.Premium),
		},
		Price:  price,
		Rating: airline.Rating,
	}
}

// flightNumber is the airline designator followed by 1000-9999.
func flightNumber(airline reference.Airline, s *Stream) string {
	return fmt.Sprintf("%s%d", designator(airline), 1000+s.Intn(9000))
}

// designator returns the IATA code, or the first two letters of the name for
// airlines outside the roster.
func designator(airline reference.Airline) string {
	if airline.IATACode != "" {
		return airline.IATACode
	}
	var b strings.Builder
	for _, r := range airline.Name {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 2 {
				return b.String()
			}
		}
	}
	return "XX"
}

func seatsLeft(s *Stream) int {
	return 1 + s.Intn(9)
}

func applyMultiplier(price int, multiplier float64) int {
	return int(math.Round(float64(price) * multiplier))
}
