package reference

import "strings"

// DefaultLogo is used when an airline has no logo asset.
const DefaultLogo = "/assets/airlines/default.png"

// airlineAliases maps lower-cased name variants to the canonical airline name.
var airlineAliases = map[string]string{
	"american":                      "American Airlines",
	"american air":                  "American Airlines",
	"delta":                         "Delta Air Lines",
	"delta airlines":                "Delta Air Lines",
	"united":                        "United Airlines",
	"southwest":                     "Southwest Airlines",
	"jetblue airways":               "JetBlue",
	"jet blue":                      "JetBlue",
	"alaska":                        "Alaska Airlines",
	"spirit":                        "Spirit Airlines",
	"frontier":                      "Frontier Airlines",
	"hawaiian":                      "Hawaiian Airlines",
	"aeroméxico":                    "Aeromexico",
	"copa":                          "Copa Airlines",
	"british":                       "British Airways",
	"virgin":                        "Virgin Atlantic",
	"virgin atlantic airways":       "Virgin Atlantic",
	"easyjet airline":               "easyJet",
	"lufthansa german airlines":     "Lufthansa",
	"deutsche lufthansa":            "Lufthansa",
	"klm royal dutch airlines":      "KLM",
	"swiss international air lines": "Swiss",
	"swiss air":                     "Swiss",
	"turkish":                       "Turkish Airlines",
	"alitalia":                      "ITA Airways",
	"austrian":                      "Austrian Airlines",
	"scandinavian airlines":         "SAS",
	"tap portugal":                  "TAP Air Portugal",
	"lot":                           "LOT Polish Airlines",
	"aegean":                        "Aegean Airlines",
	"hi sky":                        "HiSky",
	"hisky europe":                  "HiSky",
	"emirates airline":              "Emirates",
	"emirates airlines":             "Emirates",
	"etihad":                        "Etihad Airways",
	"qatar":                         "Qatar Airways",
	"saudi arabian airlines":        "Saudia",
	"singapore":                     "Singapore Airlines",
	"cathay":                        "Cathay Pacific",
	"cathay pacific airways":        "Cathay Pacific",
	"jal":                           "Japan Airlines",
	"all nippon airways":            "ANA",
	"korean":                        "Korean Air",
	"eva airways":                   "EVA Air",
	"thai":                          "Thai Airways",
	"thai airways international":    "Thai Airways",
	"qantas airways":                "Qantas",
	"latam airlines":                "LATAM",
	"ethiopian":                     "Ethiopian Airlines",
	"saa":                           "South African Airways",
	"egypt air":                     "EgyptAir",
	"royal air maroc airlines":      "Royal Air Maroc",
}

// CanonicalAirlineName resolves aliases, case variants and IATA codes to the roster name.
// Unknown names are returned trimmed, unchanged otherwise.
func (c *Catalog) CanonicalAirlineName(name string) string {
	if i, ok := c.airlineIndex(name); ok {
		return c.airlines[i].Name
	}
	if canonical, ok := airlineAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// SameAirline compares two airline names after canonicalization.
func (c *Catalog) SameAirline(a, b string) bool {
	return strings.EqualFold(c.CanonicalAirlineName(a), c.CanonicalAirlineName(b))
}

// LogoFor returns the logo asset of an airline, falling back to DefaultLogo.
func (c *Catalog) LogoFor(name string) string {
	if a, ok := c.Airline(name); ok && a.Logo != "" {
		return a.Logo
	}
	return DefaultLogo
}
