// Package domain contains the core entities of the synthetic flight search engine.
// These types are shared by the generation engine, the use case layer and the HTTP adapter.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Endpoint is one end of a directional flight leg.
type Endpoint struct {
	// Time is the local clock time in 12-hour form (e.g., "3:45 PM")
	Time string `json:"time"`

	// AirportCode is the IATA airport code (e.g., "JFK")
	AirportCode string `json:"airportCode"`

	// City is the airport's city name
	City string `json:"city"`

	// Date is the calendar date in YYYY-MM-DD format
	Date string `json:"date"`
}

// Stopover is an intermediate airport on a connecting flight.
type Stopover struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Journey holds the fields shared by every directional leg, priced or not.
type Journey struct {
	// Airline is the canonical airline name
	Airline string `json:"airline"`

	// Logo is the resolved asset path of the airline logo
	Logo string `json:"logo"`

	// FlightNumber is the IATA code followed by four digits (e.g., "BA4821")
	FlightNumber string `json:"flightNumber"`

	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`

	// Duration is the formatted total duration (e.g., "7h 25m")
	Duration string `json:"duration"`

	// DurationMinutes is the total duration in minutes
	DurationMinutes int `json:"durationMinutes"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// Stopovers lists the intermediate airports, if any
	Stopovers []Stopover `json:"stopovers,omitempty"`

	CabinClass CabinClass `json:"cabinClass"`
	Amenities  []string   `json:"amenities"`
}

// ReturnFlight is the inbound leg of a round-trip offer. It carries no price of its own.
type ReturnFlight = Journey

// FlightSegment is a priced directional leg.
type FlightSegment struct {
	Journey

	// Price is the leg price in whole currency units
	Price int `json:"price"`

	// Rating is the operating airline's rating (0-5)
	Rating float64 `json:"rating"`
}

// GeneratedFlight is an offer returned for one-way and round-trip searches.
type GeneratedFlight struct {
	// ID is unique within one result set
	ID int `json:"id"`

	FlightSegment

	// SeatsLeft is the number of seats remaining at this price
	SeatsLeft int `json:"seatsLeft"`

	// ReturnFlight is set for round-trip offers
	ReturnFlight *ReturnFlight `json:"returnFlight,omitempty"`
}

// MultiCityFlight is an offer returned for multi-city searches.
type MultiCityFlight struct {
	// ID is unique within one result set
	ID int `json:"id"`

	// Segments are the legs in travel order
	Segments []FlightSegment `json:"segments"`

	// TotalPrice is the summed leg price with the multi-city multiplier applied
	TotalPrice int `json:"totalPrice"`

	// TotalDuration is the formatted sum of all leg durations
	TotalDuration string `json:"totalDuration"`

	TotalDurationMinutes int        `json:"totalDurationMinutes"`
	CabinClass           CabinClass `json:"cabinClass"`
	SeatsLeft            int        `json:"seatsLeft"`
}

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// ParseDuration parses "XhYm", "Xh Ym", "Xh" or "Ym" into minutes.
func ParseDuration(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	total := 0
	if i := strings.IndexByte(s, 'h'); i >= 0 {
		hours, err := strconv.Atoi(s[:i])
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("invalid hours in duration %q", s)
		}
		total += hours * 60
		s = s[i+1:]
	}
	if s != "" {
		if !strings.HasSuffix(s, "m") {
			return 0, fmt.Errorf("invalid duration suffix %q", s)
		}
		mins, err := strconv.Atoi(strings.TrimSuffix(s, "m"))
		if err != nil || mins < 0 {
			return 0, fmt.Errorf("invalid minutes in duration %q", s)
		}
		total += mins
	}
	return total, nil
}
