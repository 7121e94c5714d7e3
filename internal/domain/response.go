package domain

// Pricing model names reported in search metadata.
const (
	PricingModelConfigured = "configured"
	PricingModelFallback   = "fallback"
)

// SearchResponse is the result of one search.
type SearchResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"searchCriteria"`
	Metadata       SearchMetadata         `json:"metadata"`

	// Flights holds one-way and round-trip offers, cheapest first
	Flights []GeneratedFlight `json:"flights"`

	// Itineraries holds multi-city offers, cheapest first
	Itineraries []MultiCityFlight `json:"itineraries"`
}

// SearchCriteriaResponse echoes the normalized query.
type SearchCriteriaResponse struct {
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	CabinClass    CabinClass `json:"cabinClass"`
	TripType      TripType   `json:"tripType"`
	DepartureDate string     `json:"departureDate,omitempty"`
	ReturnDate    string     `json:"returnDate,omitempty"`
	Legs          []Leg      `json:"legs,omitempty"`
}

// SearchMetadata describes how the result was produced.
type SearchMetadata struct {
	TotalResults int `json:"totalResults"`

	// PricingModel is "configured" or "fallback"
	PricingModel string `json:"pricingModel"`

	// Pinned is true when a previously selected offer leads the list
	Pinned bool `json:"pinned"`

	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponse builds a response, normalizing nil slices to empty ones.
func NewSearchResponse(q Query, flights []GeneratedFlight, itineraries []MultiCityFlight, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []GeneratedFlight{}
	}
	if itineraries == nil {
		itineraries = []MultiCityFlight{}
	}
	metadata.TotalResults = len(flights) + len(itineraries)

	return &SearchResponse{
		SearchCriteria: SearchCriteriaResponse{
			Origin:        q.Origin,
			Destination:   q.Destination,
			CabinClass:    q.CabinClass,
			TripType:      q.TripType,
			DepartureDate: q.DepartureDate,
			ReturnDate:    q.ReturnDate,
			Legs:          q.Legs,
		},
		Metadata:    metadata,
		Flights:     flights,
		Itineraries: itineraries,
	}
}
