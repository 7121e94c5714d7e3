package engine

import "github.com/flight-search/synthetic-flight-search/internal/reference"

// middleEastReachKm is the distance above which premium Middle East carriers
// become eligible on routes that do not touch their home region.
const middleEastReachKm = 3000.0

// EligibleAirlines filters the roster for a route.
//
// Routes entirely inside the USA are served only by domestic USA carriers, and those
// carriers never serve any other route. Otherwise an airline qualifies when its home
// country or continent matches either endpoint, when it is a premium Middle East
// carrier and the route is long, or when it is a premium Asian or European carrier
// and either endpoint lies on its continent. An empty result widens to the whole roster.
func EligibleAirlines(roster []reference.Airline, from, to reference.Airport) []reference.Airline {
	domestic := reference.IsUSA(from) && reference.IsUSA(to)

	fromCountry, toCountry := reference.NormalizeCountry(from.Country), reference.NormalizeCountry(to.Country)
	fromContinent, toContinent := reference.ContinentOf(from), reference.ContinentOf(to)
	distance := reference.DistanceKm(from, to)

	var out []reference.Airline
	for _, a := range roster {
		if domestic {
			if a.DomesticUSA {
				out = append(out, a)
			}
			continue
		}
		if a.DomesticUSA {
			continue
		}

		switch {
		case a.Country == fromCountry || a.Country == toCountry:
		case a.Continent == fromContinent || a.Continent == toContinent:
		case a.Premium && a.Continent == reference.MiddleEast && distance > middleEastReachKm:
		case a.Premium && (a.Continent == reference.Asia || a.Continent == reference.Europe) &&
			(fromContinent == a.Continent || toContinent == a.Continent):
		default:
			continue
		}
		out = append(out, a)
	}

	if len(out) == 0 {
		return append([]reference.Airline(nil), roster...)
	}
	return out
}

// Prioritize puts national carriers of either endpoint first, in roster order,
// followed by the remaining carriers shuffled with the stream.
func Prioritize(eligible []reference.Airline, from, to reference.Airport, s *Stream) []reference.Airline {
	fromCountry, toCountry := reference.NormalizeCountry(from.Country), reference.NormalizeCountry(to.Country)

	national := make([]reference.Airline, 0, len(eligible))
	var others []reference.Airline
	for _, a := range eligible {
		if a.Country == fromCountry || a.Country == toCountry {
			national = append(national, a)
		} else {
			others = append(others, a)
		}
	}

	for i := len(others) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		others[i], others[j] = others[j], others[i]
	}
	return append(national, others...)
}

// SelectCarriers assigns a carrier to each of n offers, cycling through prioritized.
func SelectCarriers(prioritized []reference.Airline, n int) []reference.Airline {
	if len(prioritized) == 0 || n <= 0 {
		return nil
	}
	out := make([]reference.Airline, n)
	for i := range out {
		out[i] = prioritized[i%len(prioritized)]
	}
	return out
}

// routeCarriers returns the prioritized carriers of a route. Route overrides replace
// the general rules and consume no draws.
func routeCarriers(catalog *reference.Catalog, from, to reference.Airport, s *Stream) []reference.Airline {
	if forced, ok := catalog.OverrideCarriers(from.Code, to.Code); ok {
		return forced
	}
	return Prioritize(EligibleAirlines(catalog.Airlines(), from, to), from, to, s)
}
