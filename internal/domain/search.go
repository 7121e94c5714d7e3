package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CabinClass is the canonical cabin class name.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "Economy"
	CabinPremiumEconomy CabinClass = "Premium Economy"
	CabinBusiness       CabinClass = "Business"
	CabinFirst          CabinClass = "First"
)

// Label returns the user-facing label (e.g., "Business class"). It is also the seed input.
func (c CabinClass) Label() string {
	return string(c) + " class"
}

// ParseCabinClass accepts canonical names and labels, case-insensitively
// ("business", "Business class", "premium-economy").
func ParseCabinClass(s string) (CabinClass, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, " class")
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	switch key {
	case "economy", "":
		return CabinEconomy, true
	case "premiumeconomy":
		return CabinPremiumEconomy, true
	case "business":
		return CabinBusiness, true
	case "first":
		return CabinFirst, true
	default:
		return "", false
	}
}

// TripType is the canonical trip type label.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "One way"
	TripRoundTrip TripType = "Round Trip"
	TripMultiCity TripType = "Multi-city"
)

// ParseTripType accepts the labels and common spellings ("one-way", "roundtrip").
func ParseTripType(s string) (TripType, bool) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "oneway":
		return TripOneWay, true
	case "roundtrip", "return":
		return TripRoundTrip, true
	case "multicity":
		return TripMultiCity, true
	default:
		return "", false
	}
}

// Leg is one caller-supplied hop of a multi-city search.
type Leg struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// SelectedOffer fingerprints an offer the user previously picked from a result list.
type SelectedOffer struct {
	Airline  string `json:"airline"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
}

// Query is the input to one search.
type Query struct {
	Origin        string
	Destination   string
	CabinClass    CabinClass
	TripType      TripType
	DepartureDate string
	ReturnDate    string
	Legs          []Leg
	Selected      *SelectedOffer
}

// MaxLegs is the maximum number of multi-city legs.
const MaxLegs = 6

// DateLayout is the layout of every calendar date in queries and offers.
const DateLayout = "2006-01-02"

var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks structural validity. Unknown airports and same-city pairs are not
// validation errors; they produce an empty result.
func (q *Query) Validate() error {
	if _, ok := ParseTripType(string(q.TripType)); !ok {
		return fmt.Errorf("%w: unsupported trip type %q", ErrInvalidRequest, q.TripType)
	}
	if _, ok := ParseCabinClass(string(q.CabinClass)); !ok {
		return fmt.Errorf("%w: unsupported cabin class %q", ErrInvalidRequest, q.CabinClass)
	}

	if q.TripType == TripMultiCity {
		if len(q.Legs) == 0 {
			return fmt.Errorf("%w: multi-city search requires at least one leg", ErrInvalidRequest)
		}
		if len(q.Legs) > MaxLegs {
			return fmt.Errorf("%w: multi-city search supports at most %d legs", ErrInvalidRequest, MaxLegs)
		}
		for i, leg := range q.Legs {
			if !airportCodeRegex.MatchString(leg.From) || !airportCodeRegex.MatchString(leg.To) {
				return fmt.Errorf("%w: leg %d must use 3-letter IATA codes", ErrInvalidRequest, i+1)
			}
			if err := validateDate("leg date", leg.Date); err != nil {
				return err
			}
		}
		return nil
	}

	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}
	if err := validateDate("departureDate", q.DepartureDate); err != nil {
		return err
	}
	if err := validateDate("returnDate", q.ReturnDate); err != nil {
		return err
	}
	if q.DepartureDate != "" && q.ReturnDate != "" && q.ReturnDate < q.DepartureDate {
		return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
	}
	if q.Selected != nil {
		if strings.TrimSpace(q.Selected.Airline) == "" {
			return fmt.Errorf("%w: selected offer requires an airline", ErrInvalidRequest)
		}
		if _, err := ParseDuration(q.Selected.Duration); err != nil {
			return fmt.Errorf("%w: selected offer duration: %v", ErrInvalidRequest, err)
		}
	}
	return nil
}

// SetDefaults normalizes codes and labels and fills optional fields.
func (q *Query) SetDefaults() {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	if c, ok := ParseCabinClass(string(q.CabinClass)); ok {
		q.CabinClass = c
	}
	if q.CabinClass == "" {
		q.CabinClass = CabinEconomy
	}
	if t, ok := ParseTripType(string(q.TripType)); ok {
		q.TripType = t
	}
	if q.TripType == "" {
		q.TripType = TripOneWay
	}
	for i := range q.Legs {
		q.Legs[i].From = strings.ToUpper(strings.TrimSpace(q.Legs[i].From))
		q.Legs[i].To = strings.ToUpper(strings.TrimSpace(q.Legs[i].To))
	}
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	return nil
}
