// Package engine generates deterministic synthetic flight offers.
//
// Every search seeds its own Stream from the day key, the route and the cabin class,
// so identical queries produce identical offers. The engine holds no mutable state
// and is safe for concurrent use.
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// LegPolicy decides what happens to a multi-city leg whose airports cannot be
// resolved or that starts and ends in the same city.
type LegPolicy int

const (
	// SkipInvalidLegs drops the leg and prices the itinerary on the remaining legs.
	SkipInvalidLegs LegPolicy = iota

	// RejectInvalidLegs returns no itineraries at all.
	RejectInvalidLegs
)

// Defaults.
const (
	DefaultResultLimit     = 3
	DefaultCandidatePool   = 3
	DefaultReturnAfterDays = 7
)

// Options tunes the engine.
type Options struct {
	// DayKey is mixed into every seed unless a request overrides it
	DayKey string

	// CandidatePool is the number of offers generated before filtering; never below ResultLimit
	CandidatePool int

	// ResultLimit is the maximum number of offers returned
	ResultLimit int

	// ReturnAfterDays is the return date offset used when a round trip has no return date
	ReturnAfterDays int

	LegPolicy LegPolicy
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		DayKey:          DefaultDayKey,
		CandidatePool:   DefaultCandidatePool,
		ResultLimit:     DefaultResultLimit,
		ReturnAfterDays: DefaultReturnAfterDays,
		LegPolicy:       SkipInvalidLegs,
	}
}

// Engine generates offers from a reference catalog.
type Engine struct {
	catalog *reference.Catalog
	opts    Options
}

// New creates an engine. Zero option fields take their defaults.
func New(catalog *reference.Catalog, opts Options) *Engine {
	def := DefaultOptions()
	if opts.DayKey == "" {
		opts.DayKey = def.DayKey
	}
	if opts.ResultLimit <= 0 {
		opts.ResultLimit = def.ResultLimit
	}
	if opts.CandidatePool < opts.ResultLimit {
		opts.CandidatePool = opts.ResultLimit
	}
	if opts.ReturnAfterDays <= 0 {
		opts.ReturnAfterDays = def.ReturnAfterDays
	}
	return &Engine{catalog: catalog, opts: opts}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Request is the input to one search.
type Request struct {
	Query domain.Query

	// Pricing prices the legs; nil selects the fallback model
	Pricing PriceStrategy

	// Now is the current time in the engine's time zone. It decides "today"
	// for the departed-offer filter and the default departure date.
	Now time.Time

	// DayKey overrides Options.DayKey when set
	DayKey string
}

// Result is the output of one search.
type Result struct {
	Flights      []domain.GeneratedFlight
	Itineraries  []domain.MultiCityFlight
	Pinned       bool
	PricingModel string
}

// Search generates the offers of one query. The query is expected to be validated
// and defaulted. Unknown airports and same-city routes give an empty result.
func (e *Engine) Search(req Request) Result {
	pricing := req.Pricing
	if pricing == nil {
		pricing = FallbackStrategy{}
	}
	dayKey := req.DayKey
	if dayKey == "" {
		dayKey = e.opts.DayKey
	}

	res := Result{PricingModel: pricing.Name()}
	if req.Query.TripType == domain.TripMultiCity {
		res.Itineraries = e.multiCity(req.Query, pricing, dayKey, req.Now)
		return res
	}
	res.Flights, res.Pinned = e.pointToPoint(req.Query, pricing, dayKey, req.Now)
	return res
}

func (e *Engine) pointToPoint(q domain.Query, pricing PriceStrategy, dayKey string, now time.Time) ([]domain.GeneratedFlight, bool) {
	from, ok := e.catalog.Airport(q.Origin)
	if !ok {
		return nil, false
	}
	to, ok := e.catalog.Airport(q.Destination)
	if !ok || reference.SameCity(from, to) {
		return nil, false
	}

	today := timeutil.FormatDate(now)
	departure := q.DepartureDate
	if departure == "" {
		departure = today
	}
	outbound := newLegPlan(from, to, departure)

	s := NewStream(Seed(dayKey, from.Code, to.Code, q.CabinClass.Label()))
	pool := e.offers(outbound, q, pricing, s)

	var departed func(domain.GeneratedFlight) bool
	if departure == today {
		departed = DepartedBy(timeutil.MinuteOfDay(now))
	}
	results := SelectResults(pool, e.opts.ResultLimit, departed)

	if q.Selected == nil {
		return results, false
	}
	if i, ok := MatchSelected(results, *q.Selected, e.catalog.SameAirline); ok {
		return MoveToFront(results, i), true
	}

	pinned, ok := e.regenerate(outbound, q, dayKey, len(pool)+1)
	if !ok {
		return results, false
	}
	return append([]domain.GeneratedFlight{pinned}, results...), true
}

// offers builds the candidate pool. Return legs are generated after every outbound
// leg so that outbound offers draw the same values as a one-way search.
func (e *Engine) offers(outbound legPlan, q domain.Query, pricing PriceStrategy, s *Stream) []domain.GeneratedFlight {
	carriers := SelectCarriers(routeCarriers(e.catalog, outbound.from, outbound.to, s), e.opts.CandidatePool)
	multiplier := pricing.TripMultiplier(q.TripType)

	pool := make([]domain.GeneratedFlight, 0, len(carriers))
	for i, airline := range carriers {
		seg := e.buildLeg(outbound, airline, q.CabinClass, pricing, nil, s)
		seg.Price = applyMultiplier(seg.Price, multiplier)
		pool = append(pool, domain.GeneratedFlight{
			ID:            i + 1,
			FlightSegment: seg,
			SeatsLeft:     seatsLeft(s),
		})
	}

	if q.TripType != domain.TripRoundTrip {
		return pool
	}

	inbound := outbound.reversed(e.returnDate(q, outbound.date))
	for i := range pool {
		airline := carriers[i]
		ret := e.buildLeg(inbound, airline, q.CabinClass, nil, nil, s).Journey
		pool[i].ReturnFlight = &ret
	}
	return pool
}

func (e *Engine) returnDate(q domain.Query, departure string) string {
	if q.ReturnDate != "" {
		return q.ReturnDate
	}
	return timeutil.AddDays(departure, e.opts.ReturnAfterDays)
}

// regenerate rebuilds a selected offer that is no longer in the result list,
// with its airline, price and duration forced to the fingerprint.
func (e *Engine) regenerate(outbound legPlan, q domain.Query, dayKey string, id int) (domain.GeneratedFlight, bool) {
	sel := q.Selected
	minutes, err := domain.ParseDuration(sel.Duration)
	if err != nil {
		return domain.GeneratedFlight{}, false
	}

	name := e.catalog.CanonicalAirlineName(sel.Airline)
	airline, ok := e.catalog.Airline(name)
	if !ok {
		airline = reference.Airline{Name: name}
	}

	s := NewStream(Seed(dayKey, outbound.from.Code, outbound.to.Code, q.CabinClass.Label(), name))
	fix := &fixedFare{price: sel.Price, minutes: minutes, duration: sel.Duration}

	flight := domain.GeneratedFlight{
		ID:            id,
		FlightSegment: e.buildLeg(outbound, airline, q.CabinClass, nil, fix, s),
		SeatsLeft:     seatsLeft(s),
	}
	if q.TripType == domain.TripRoundTrip {
		ret := e.buildLeg(outbound.reversed(e.returnDate(q, outbound.date)), airline, q.CabinClass, nil, nil, s).Journey
		flight.ReturnFlight = &ret
	}
	return flight, true
}

// resolvedLeg is a multi-city leg with its prioritized carriers.
type resolvedLeg struct {
	plan     legPlan
	carriers []reference.Airline
}

// multiCity builds ResultLimit itineraries. Option o flies leg l with the
// carrier at (o+l) in that leg's prioritized list, so options differ per leg.
func (e *Engine) multiCity(q domain.Query, pricing PriceStrategy, dayKey string, now time.Time) []domain.MultiCityFlight {
	if len(q.Legs) == 0 {
		return nil
	}

	first, last := q.Legs[0], q.Legs[len(q.Legs)-1]
	s := NewStream(Seed(dayKey, first.From, last.To, q.CabinClass.Label(), routeSignature(q.Legs)))

	date := timeutil.FormatDate(now)
	legs := make([]resolvedLeg, 0, len(q.Legs))
	for _, leg := range q.Legs {
		if leg.Date != "" {
			date = leg.Date
		}
		from, okFrom := e.catalog.Airport(leg.From)
		to, okTo := e.catalog.Airport(leg.To)
		if !okFrom || !okTo || reference.SameCity(from, to) {
			if e.opts.LegPolicy == RejectInvalidLegs {
				return nil
			}
			continue
		}
		carriers := routeCarriers(e.catalog, from, to, s)
		if len(carriers) == 0 {
			continue
		}
		legs = append(legs, resolvedLeg{plan: newLegPlan(from, to, date), carriers: carriers})
	}
	if len(legs) == 0 {
		return nil
	}

	multiplier := pricing.TripMultiplier(domain.TripMultiCity)
	out := make([]domain.MultiCityFlight, 0, e.opts.ResultLimit)
	for o := 0; o < e.opts.ResultLimit; o++ {
		segments := make([]domain.FlightSegment, 0, len(legs))
		sum, minutes := 0, 0
		for l, leg := range legs {
			airline := leg.carriers[(o+l)%len(leg.carriers)]
			seg := e.buildLeg(leg.plan, airline, q.CabinClass, pricing, nil, s)
			segments = append(segments, seg)
			sum += seg.Price
			minutes += seg.DurationMinutes
		}
		out = append(out, domain.MultiCityFlight{
			ID:                   o + 1,
			Segments:             segments,
			TotalPrice:           applyMultiplier(sum, multiplier),
			TotalDuration:        domain.FormatDuration(minutes),
			TotalDurationMinutes: minutes,
			CabinClass:           q.CabinClass,
			SeatsLeft:            seatsLeft(s),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalPrice < out[j].TotalPrice
	})
	return out
}

func routeSignature(legs []domain.Leg) string {
	parts := make([]string, len(legs))
	for i, l := range legs {
		parts[i] = l.From + "-" + l.To
	}
	return strings.Join(parts, ",")
}
