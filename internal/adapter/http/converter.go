package http

import (
	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// ToDomainQuery converts a validated SearchFlightsRequest to a domain.Query.
// Labels are passed through; the use case normalizes them.
func ToDomainQuery(req *SearchFlightsRequest) domain.Query {
	q := domain.Query{
		Origin:        req.Origin,
		Destination:   req.Destination,
		CabinClass:    domain.CabinClass(req.CabinClass),
		TripType:      domain.TripType(req.TripType),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
	}

	if len(req.Legs) > 0 {
		q.Legs = make([]domain.Leg, len(req.Legs))
		for i, l := range req.Legs {
			q.Legs[i] = domain.Leg{From: l.From, To: l.To, Date: l.Date}
		}
	}

	if req.Selected != nil {
		q.Selected = &domain.SelectedOffer{
			Airline:  req.Selected.Airline,
			Price:    req.Selected.Price,
			Duration: req.Selected.Duration,
		}
	}
	return q
}
