// Package reference holds the static airport and airline tables the engine generates offers from.
// A Catalog is built once at startup and is read-only afterwards, so it is safe for concurrent use.
package reference

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed data/airports.json data/airlines.json
var embedded embed.FS

// Airport is a static airport record keyed by IATA code.
type Airport struct {
	Code        string  `json:"code"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Airline is a static airline record keyed by name.
type Airline struct {
	Name      string   `json:"name"`
	IATACode  string   `json:"iataCode"`
	Rating    float64  `json:"rating"`
	Country   string   `json:"country"`
	Premium   bool     `json:"premium"`
	Hubs      []string `json:"hubs"`
	Continent string   `json:"continent"`

	// DomesticUSA marks carriers restricted to routes inside the United States
	DomesticUSA bool `json:"domesticUSA,omitempty"`

	// Logo is the asset path of the airline logo; empty means the default logo
	Logo string `json:"logo,omitempty"`
}

// HasHub reports whether code is one of the airline's hubs.
func (a Airline) HasHub(code string) bool {
	for _, h := range a.Hubs {
		if h == code {
			return true
		}
	}
	return false
}

// Catalog is the immutable set of reference tables.
type Catalog struct {
	airports      map[string]Airport
	airportCodes  []string
	airlines      []Airline
	airlineByName map[string]int
	airlineByIATA map[string]int
	overrides     map[routeKey][]string
}

// LoadEmbedded builds a catalog from the tables compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	airports, err := embedded.ReadFile("data/airports.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded airports: %w", err)
	}
	airlines, err := embedded.ReadFile("data/airlines.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded airlines: %w", err)
	}
	return Load(airports, airlines)
}

// LoadFiles builds a catalog from JSON files. An empty path selects the embedded table.
func LoadFiles(airportsPath, airlinesPath string) (*Catalog, error) {
	airports, err := readOrEmbedded(airportsPath, "data/airports.json")
	if err != nil {
		return nil, err
	}
	airlines, err := readOrEmbedded(airlinesPath, "data/airlines.json")
	if err != nil {
		return nil, err
	}
	return Load(airports, airlines)
}

func readOrEmbedded(path, fallback string) ([]byte, error) {
	if path == "" {
		return embedded.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference file %s: %w", path, err)
	}
	return data, nil
}

// Load builds a catalog from raw JSON arrays of airports and airlines.
func Load(airportsJSON, airlinesJSON []byte) (*Catalog, error) {
	var airports []Airport
	if err := json.Unmarshal(airportsJSON, &airports); err != nil {
		return nil, fmt.Errorf("parse airports: %w", err)
	}
	var airlines []Airline
	if err := json.Unmarshal(airlinesJSON, &airlines); err != nil {
		return nil, fmt.Errorf("parse airlines: %w", err)
	}
	return New(airports, airlines)
}

// New builds a catalog from in-memory tables. Codes are upper-cased; duplicates are rejected.
func New(airports []Airport, airlines []Airline) (*Catalog, error) {
	if len(airports) == 0 {
		return nil, fmt.Errorf("airport table is empty")
	}
	if len(airlines) == 0 {
		return nil, fmt.Errorf("airline table is empty")
	}

	c := &Catalog{
		airports:      make(map[string]Airport, len(airports)),
		airportCodes:  make([]string, 0, len(airports)),
		airlines:      make([]Airline, 0, len(airlines)),
		airlineByName: make(map[string]int, len(airlines)),
		airlineByIATA: make(map[string]int, len(airlines)),
	}

	for _, a := range airports {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		if len(a.Code) != 3 {
			return nil, fmt.Errorf("airport %q: code must have 3 letters", a.Code)
		}
		if _, dup := c.airports[a.Code]; dup {
			return nil, fmt.Errorf("airport %s: duplicate code", a.Code)
		}
		a.Country = NormalizeCountry(a.Country)
		c.airports[a.Code] = a
		c.airportCodes = append(c.airportCodes, a.Code)
	}
	sort.Strings(c.airportCodes)

	for _, a := range airlines {
		key := strings.ToLower(strings.TrimSpace(a.Name))
		if key == "" {
			return nil, fmt.Errorf("airline with IATA %q has no name", a.IATACode)
		}
		if _, dup := c.airlineByName[key]; dup {
			return nil, fmt.Errorf("airline %s: duplicate name", a.Name)
		}
		a.Country = NormalizeCountry(a.Country)
		a.IATACode = strings.ToUpper(a.IATACode)
		a.Hubs = append([]string(nil), a.Hubs...)
		c.airlineByName[key] = len(c.airlines)
		if a.IATACode != "" {
			c.airlineByIATA[a.IATACode] = len(c.airlines)
		}
		c.airlines = append(c.airlines, a)
	}

	c.overrides = buildOverrides(routeOverrides)
	return c, nil
}

// Airport looks up an airport by IATA code (case-insensitive).
func (c *Catalog) Airport(code string) (Airport, bool) {
	a, ok := c.airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Airports returns all airports ordered by code.
func (c *Catalog) Airports() []Airport {
	out := make([]Airport, 0, len(c.airportCodes))
	for _, code := range c.airportCodes {
		out = append(out, c.airports[code])
	}
	return out
}

// Airlines returns the airline roster in table order.
func (c *Catalog) Airlines() []Airline {
	out := make([]Airline, len(c.airlines))
	copy(out, c.airlines)
	return out
}

// Airline resolves a name, alias or IATA code to an airline.
func (c *Catalog) Airline(name string) (Airline, bool) {
	if i, ok := c.airlineIndex(name); ok {
		return c.airlines[i], true
	}
	return Airline{}, false
}

func (c *Catalog) airlineIndex(name string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 0, false
	}
	if i, ok := c.airlineByName[key]; ok {
		return i, true
	}
	if canonical, ok := airlineAliases[key]; ok {
		if i, ok := c.airlineByName[strings.ToLower(canonical)]; ok {
			return i, true
		}
	}
	if i, ok := c.airlineByIATA[strings.ToUpper(key)]; ok {
		return i, true
	}
	return 0, false
}

// SameCity reports whether two airports serve the same city.
func SameCity(a, b Airport) bool {
	return a.Code == b.Code ||
		(strings.EqualFold(strings.TrimSpace(a.City), strings.TrimSpace(b.City)) &&
			NormalizeCountry(a.Country) == NormalizeCountry(b.Country))
}
