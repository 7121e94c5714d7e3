package reference

import (
	"math"
	"strings"
)

// Continent names. Middle East is kept apart from Asia for carrier matching.
const (
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Europe       = "Europe"
	Asia         = "Asia"
	MiddleEast   = "Middle East"
	Oceania      = "Oceania"
	Africa       = "Africa"
	Other        = "Other"
)

// UnitedStates is the normalized country name of the USA.
const UnitedStates = "United States"

const earthRadiusKm = 6371.0

// countryAliases maps lower-cased variants to the normalized country name.
var countryAliases = map[string]string{
	"usa":                      UnitedStates,
	"us":                       UnitedStates,
	"u.s.":                     UnitedStates,
	"u.s.a.":                   UnitedStates,
	"united states of america": UnitedStates,
	"uk":                       "United Kingdom",
	"great britain":            "United Kingdom",
	"england":                  "United Kingdom",
	"uae":                      "United Arab Emirates",
	"korea":                    "South Korea",
	"republic of korea":        "South Korea",
	"holland":                  "Netherlands",
	"the netherlands":          "Netherlands",
	"turkiye":                  "Turkey",
	"türkiye":                  "Turkey",
	"republic of moldova":      "Moldova",
	"prc":                      "China",
}

var countryContinent = map[string]string{
	UnitedStates: NorthAmerica,
	"Canada":     NorthAmerica,
	"Mexico":     NorthAmerica,
	"Panama":     NorthAmerica,

	"United Kingdom": Europe,
	"France":         Europe,
	"Germany":        Europe,
	"Netherlands":    Europe,
	"Spain":          Europe,
	"Italy":          Europe,
	"Switzerland":    Europe,
	"Austria":        Europe,
	"Denmark":        Europe,
	"Finland":        Europe,
	"Ireland":        Europe,
	"Portugal":       Europe,
	"Poland":         Europe,
	"Greece":         Europe,
	"Turkey":         Europe,
	"Romania":        Europe,
	"Moldova":        Europe,

	"United Arab Emirates": MiddleEast,
	"Qatar":                MiddleEast,
	"Saudi Arabia":         MiddleEast,
	"Israel":               MiddleEast,

	"India":       Asia,
	"Thailand":    Asia,
	"Malaysia":    Asia,
	"Singapore":   Asia,
	"Indonesia":   Asia,
	"Philippines": Asia,
	"Hong Kong":   Asia,
	"Taiwan":      Asia,
	"China":       Asia,
	"South Korea": Asia,
	"Japan":       Asia,

	"Australia":   Oceania,
	"New Zealand": Oceania,

	"Brazil":    SouthAmerica,
	"Argentina": SouthAmerica,
	"Chile":     SouthAmerica,
	"Peru":      SouthAmerica,
	"Colombia":  SouthAmerica,

	"South Africa": Africa,
	"Kenya":        Africa,
	"Ethiopia":     Africa,
	"Nigeria":      Africa,
	"Egypt":        Africa,
	"Morocco":      Africa,
}

// majorHubs lists the major hub airports per region, most important first.
var majorHubs = map[string][]string{
	NorthAmerica: {"JFK", "ATL", "ORD", "LAX", "DFW", "SFO", "MIA", "YYZ", "SEA", "IAH"},
	Europe:       {"LHR", "CDG", "FRA", "AMS", "IST", "MAD", "MUC", "ZRH", "FCO"},
	MiddleEast:   {"DXB", "DOH", "AUH"},
	Asia:         {"SIN", "HKG", "HND", "ICN", "BKK", "PVG", "PEK", "DEL", "NRT"},
	Oceania:      {"SYD", "MEL", "AKL"},
	SouthAmerica: {"GRU", "BOG", "SCL", "LIM", "EZE"},
	Africa:       {"ADD", "JNB", "CAI", "NBO", "CMN"},
}

// regionPair is an unordered pair of regions.
type regionPair struct{ a, b string }

func newRegionPair(a, b string) regionPair {
	if b < a {
		a, b = b, a
	}
	return regionPair{a, b}
}

// gateways lists well-known connecting airports between two regions.
var gateways = map[regionPair][]string{
	newRegionPair(NorthAmerica, Europe):       {"LHR", "CDG", "FRA", "AMS", "JFK", "ORD", "ATL"},
	newRegionPair(NorthAmerica, Asia):         {"SFO", "LAX", "SEA", "YVR", "HND", "ICN", "HKG"},
	newRegionPair(NorthAmerica, MiddleEast):   {"JFK", "IAD", "LHR", "FRA"},
	newRegionPair(NorthAmerica, SouthAmerica): {"MIA", "ATL", "PTY", "IAH", "BOG"},
	newRegionPair(NorthAmerica, Oceania):      {"LAX", "SFO", "HNL", "YVR"},
	newRegionPair(NorthAmerica, Africa):       {"JFK", "ATL", "LHR", "CDG", "ADD"},
	newRegionPair(Europe, Asia):               {"DXB", "DOH", "IST", "FRA", "HEL", "AUH"},
	newRegionPair(Europe, MiddleEast):         {"IST", "FRA", "LHR", "ATH"},
	newRegionPair(Europe, Oceania):            {"DXB", "DOH", "SIN", "HKG"},
	newRegionPair(Europe, SouthAmerica):       {"MAD", "LIS", "GRU", "CDG"},
	newRegionPair(Europe, Africa):             {"CDG", "CMN", "CAI", "IST", "ADD"},
	newRegionPair(Asia, MiddleEast):           {"DXB", "DOH", "AUH", "DEL"},
	newRegionPair(Asia, Oceania):              {"SIN", "HKG", "KUL", "BKK"},
	newRegionPair(Asia, Africa):               {"DXB", "DOH", "ADD", "NBO"},
	newRegionPair(MiddleEast, Africa):         {"CAI", "ADD", "NBO"},
	newRegionPair(MiddleEast, Oceania):        {"SIN", "KUL"},
	newRegionPair(SouthAmerica, Africa):       {"GRU", "JNB", "ADD"},
	newRegionPair(SouthAmerica, Oceania):      {"SCL", "AKL"},
	newRegionPair(Oceania, Africa):            {"JNB", "SYD", "DXB"},
}

// NormalizeCountry maps known country aliases to one canonical name.
func NormalizeCountry(country string) string {
	trimmed := strings.TrimSpace(country)
	if canonical, ok := countryAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// ContinentOfCountry returns the continent of a country, or Other.
func ContinentOfCountry(country string) string {
	if continent, ok := countryContinent[NormalizeCountry(country)]; ok {
		return continent
	}
	return Other
}

// ContinentOf returns the continent of an airport, or Other.
func ContinentOf(a Airport) string {
	return ContinentOfCountry(a.Country)
}

// IsUSA reports whether the airport is in the United States.
func IsUSA(a Airport) bool {
	return NormalizeCountry(a.Country) == UnitedStates
}

// RegionOf returns the region whose major-hub list contains code, or "" for non-hubs.
func RegionOf(code string) string {
	code = strings.ToUpper(code)
	for region, hubs := range majorHubs {
		for _, h := range hubs {
			if h == code {
				return region
			}
		}
	}
	return ""
}

// MajorHubs returns the major hubs of a region, most important first.
func MajorHubs(region string) []string {
	return append([]string(nil), majorHubs[region]...)
}

// Gateways returns the connecting airports known for a pair of regions, in either order.
func Gateways(regionA, regionB string) []string {
	return append([]string(nil), gateways[newRegionPair(regionA, regionB)]...)
}

// DistanceKm is the haversine great-circle distance between two airports.
func DistanceKm(a, b Airport) float64 {
	return haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
