package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// Routing constants.
const (
	cruiseSpeedKmh = 850.0

	minLegKm        = 200.0
	maxDetourRatio  = 1.5
	maxDetourPool   = 5
	regionalHubTake = 3

	minutesPerDay = 24 * 60
)

var quarterHours = [...]int{0, 15, 30, 45}

// StopCount draws the number of stops for a distance. Short routes never stop.
func StopCount(distanceKm float64, s *Stream) int {
	var p float64
	switch {
	case distanceKm < 500:
		return 0
	case distanceKm < 2000:
		p = 0.10
	case distanceKm < 6000:
		p = 0.30
	default:
		p = 0.60
	}
	if s.Next() < p {
		return 1
	}
	return 0
}

// SelectStopovers draws stops intermediate airports, without replacement, from a
// pool built from the airline's hubs, inter-regional gateways and regional hubs.
// When that pool is empty it falls back to airports with a small geometric detour.
// Fewer stopovers than requested are returned when the pool runs out.
func SelectStopovers(catalog *reference.Catalog, from, to reference.Airport, stops int, airline reference.Airline, s *Stream) []domain.Stopover {
	if stops <= 0 {
		return nil
	}

	pool := hubCandidates(catalog, from, to, airline)
	if len(pool) == 0 {
		pool = detourCandidates(catalog, from, to)
	}

	out := make([]domain.Stopover, 0, stops)
	for i := 0; i < stops && len(pool) > 0; i++ {
		idx := s.Intn(len(pool))
		a := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
		out = append(out, domain.Stopover{Code: a.Code, City: a.City, Country: a.Country})
	}
	return out
}

// endpointRegion is the hub region of an airport, or its continent when it is not a hub.
func endpointRegion(a reference.Airport) string {
	if r := reference.RegionOf(a.Code); r != "" {
		return r
	}
	return reference.ContinentOf(a)
}

func hubCandidates(catalog *reference.Catalog, from, to reference.Airport, airline reference.Airline) []reference.Airport {
	seen := map[string]bool{from.Code: true, to.Code: true}
	var pool []reference.Airport

	add := func(codes []string) {
		for _, code := range codes {
			if seen[code] {
				continue
			}
			seen[code] = true
			a, ok := catalog.Airport(code)
			if !ok || reference.SameCity(a, from) || reference.SameCity(a, to) {
				continue
			}
			pool = append(pool, a)
		}
	}

	fromRegion, toRegion := endpointRegion(from), endpointRegion(to)

	add(airline.Hubs)
	add(reference.Gateways(fromRegion, toRegion))
	add(head(reference.MajorHubs(fromRegion), regionalHubTake))
	add(head(reference.MajorHubs(toRegion), regionalHubTake))
	return pool
}

func detourCandidates(catalog *reference.Catalog, from, to reference.Airport) []reference.Airport {
	direct := reference.DistanceKm(from, to)
	if direct <= 0 {
		return nil
	}

	var pool []reference.Airport
	for _, a := range catalog.Airports() {
		if reference.SameCity(a, from) || reference.SameCity(a, to) {
			continue
		}
		d1, d2 := reference.DistanceKm(from, a), reference.DistanceKm(a, to)
		if d1 <= minLegKm || d2 <= minLegKm {
			continue
		}
		if (d1+d2)/direct <= maxDetourRatio {
			pool = append(pool, a)
			if len(pool) == maxDetourPool {
				break
			}
		}
	}
	return pool
}

func head(codes []string, n int) []string {
	if len(codes) > n {
		return codes[:n]
	}
	return codes
}

// FlightMinutes estimates block time: cruise time plus taxi/turnaround padding
// plus a layover per stop.
func FlightMinutes(distanceKm float64, stops int, s *Stream) int {
	minutes := distanceKm / cruiseSpeedKmh * 60
	minutes += s.Between(30, 60)
	for i := 0; i < stops; i++ {
		minutes += s.Between(60, 180)
	}
	return int(math.Round(minutes))
}

// Schedule is the local departure and arrival clock of one leg.
type Schedule struct {
	Departure string
	Arrival   string

	// DepartureMinute is the departure minute of day (0-1439)
	DepartureMinute int

	// DayOffset is the number of calendar days the arrival rolls past the departure date
	DayOffset int
}

// ClockTimes draws a departure on a quarter hour and derives the arrival.
func ClockTimes(durationMinutes int, s *Stream) Schedule {
	hour := s.Intn(24)
	minute := quarterHours[s.Intn(len(quarterHours))]

	dep := hour*60 + minute
	arr := dep + durationMinutes

	return Schedule{
		Departure:       FormatClock(dep),
		Arrival:         FormatClock(arr % minutesPerDay),
		DepartureMinute: dep,
		DayOffset:       arr / minutesPerDay,
	}
}

// FormatClock renders a minute of day as "h:mm AM".
func FormatClock(minuteOfDay int) string {
	minuteOfDay = ((minuteOfDay % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour, minute := minuteOfDay/60, minuteOfDay%60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, suffix)
}

// ParseClock parses "h:mm AM" into a minute of day.
func ParseClock(s string) (int, error) {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(s)))
	if len(fields) != 2 || (fields[1] != "AM" && fields[1] != "PM") {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	hour %= 12
	if fields[1] == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}
