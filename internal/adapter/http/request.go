// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK"); ignored for multi-city
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR"); ignored for multi-city
	Destination string `json:"destination" example:"LHR"`

	// CabinClass is Economy, Premium Economy, Business or First (default Economy)
	CabinClass string `json:"cabinClass,omitempty" example:"Business"`

	// TripType is "One way", "Round Trip" or "Multi-city" (default One way)
	TripType string `json:"tripType,omitempty" example:"Round Trip"`

	// DepartureDate is YYYY-MM-DD; empty means today
	DepartureDate string `json:"departureDate,omitempty" example:"2025-09-15"`

	// ReturnDate is YYYY-MM-DD; empty means seven days after departure
	ReturnDate string `json:"returnDate,omitempty" example:"2025-09-22"`

	// Legs lists the hops of a multi-city search, in travel order
	Legs []LegDTO `json:"legs,omitempty"`

	// Selected pins a previously chosen offer to the top of the results
	Selected *SelectedOfferDTO `json:"selected,omitempty"`
}

// LegDTO is one hop of a multi-city search.
type LegDTO struct {
	From string `json:"from" example:"JFK"`
	To   string `json:"to" example:"CDG"`

	// Date is YYYY-MM-DD; empty inherits the previous leg's date
	Date string `json:"date,omitempty" example:"2025-09-15"`
}

// SelectedOfferDTO fingerprints an offer picked from an earlier result list.
type SelectedOfferDTO struct {
	Airline  string `json:"airline" example:"British Airways"`
	Price    int    `json:"price" example:"742"`
	Duration string `json:"duration" example:"7h 25m"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request field by field and normalizes airport codes.
// Unknown airports and same-city routes pass: they produce an empty result, not an error.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateCabinClass(errs)
	trip := r.validateTripType(errs)

	if trip == domain.TripMultiCity {
		r.validateLegs(errs)
	} else {
		r.Origin = validateAirport(errs, "origin", r.Origin)
		r.Destination = validateAirport(errs, "destination", r.Destination)
		validateDate(errs, "departureDate", r.DepartureDate)
		validateDate(errs, "returnDate", r.ReturnDate)
		r.validateDateOrder(errs)
	}

	r.validateSelected(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateCabinClass(errs *ValidationErrors) {
	if _, ok := domain.ParseCabinClass(r.CabinClass); !ok {
		errs.Add("cabinClass", "cabinClass must be one of: Economy, Premium Economy, Business, First")
	}
}

func (r *SearchFlightsRequest) validateTripType(errs *ValidationErrors) domain.TripType {
	if r.TripType == "" {
		return domain.TripOneWay
	}
	trip, ok := domain.ParseTripType(r.TripType)
	if !ok {
		errs.Add("tripType", "tripType must be one of: One way, Round Trip, Multi-city")
	}
	return trip
}

func (r *SearchFlightsRequest) validateLegs(errs *ValidationErrors) {
	if len(r.Legs) == 0 {
		errs.Add("legs", "legs are required for a multi-city search")
		return
	}
	if len(r.Legs) > domain.MaxLegs {
		errs.Add("legs", fmt.Sprintf("at most %d legs are supported", domain.MaxLegs))
		return
	}
	for i := range r.Legs {
		prefix := fmt.Sprintf("legs[%d]", i)
		r.Legs[i].From = validateAirport(errs, prefix+".from", r.Legs[i].From)
		r.Legs[i].To = validateAirport(errs, prefix+".to", r.Legs[i].To)
		validateDate(errs, prefix+".date", r.Legs[i].Date)
	}
}

func (r *SearchFlightsRequest) validateDateOrder(errs *ValidationErrors) {
	if r.DepartureDate == "" || r.ReturnDate == "" {
		return
	}
	if !datePattern.MatchString(r.DepartureDate) || !datePattern.MatchString(r.ReturnDate) {
		return
	}
	if r.ReturnDate < r.DepartureDate {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}
}

func (r *SearchFlightsRequest) validateSelected(errs *ValidationErrors) {
	if r.Selected == nil {
		return
	}
	if strings.TrimSpace(r.Selected.Airline) == "" {
		errs.Add("selected.airline", "airline is required")
	}
	if r.Selected.Price < 0 {
		errs.Add("selected.price", "price must not be negative")
	}
	if _, err := domain.ParseDuration(r.Selected.Duration); err != nil {
		errs.Add("selected.duration", `duration must look like "7h 25m"`)
	}
}

// validateAirport returns the upper-cased code.
func validateAirport(errs *ValidationErrors, field, code string) string {
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}
	upper := strings.ToUpper(strings.TrimSpace(code))
	if !airportCodePattern.MatchString(upper) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return code
	}
	return upper
}

func validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}
