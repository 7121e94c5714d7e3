// Package usecase orchestrates flight searches and pricing configuration management.
// It sits between the HTTP adapter and the generation engine.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/engine"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultSearchTimeout     = 5 * time.Second
	DefaultConfigLoadTimeout = 500 * time.Millisecond
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates the query and generates its offers. Pricing configuration
	// problems never fail a search; they switch it to the fallback price model.
	Search(ctx context.Context, q domain.Query) (*domain.SearchResponse, error)
}

type flightSearchUseCase struct {
	engine        *engine.Engine
	pricing       *PricingConfigService
	clock         timeutil.Clock
	log           *logger.Logger
	searchTimeout time.Duration
	useConfig     bool
	rotateDaily   bool
}

// Config contains configuration options for the use case.
type Config struct {
	SearchTimeout time.Duration

	// UseConfiguredPricing prices with the stored configuration when one loads.
	UseConfiguredPricing bool

	// RotateDaily replaces the fixed day key with the current date.
	RotateDaily bool

	// Location decides what "today" is. Nil means UTC.
	Location *time.Location
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout:        DefaultSearchTimeout,
		UseConfiguredPricing: true,
		Location:             time.UTC,
	}
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
// If config is nil, default values are used. A nil clock uses the system clock.
func NewFlightSearchUseCase(eng *engine.Engine, pricing *PricingConfigService, clock timeutil.Clock, log *logger.Logger, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		cfg.UseConfiguredPricing = config.UseConfiguredPricing
		cfg.RotateDaily = config.RotateDaily
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &flightSearchUseCase{
		engine:        eng,
		pricing:       pricing,
		clock:         timeutil.InLocation(clock, cfg.Location),
		log:           log.WithComponent("search"),
		searchTimeout: cfg.SearchTimeout,
		useConfig:     cfg.UseConfiguredPricing && pricing != nil,
		rotateDaily:   cfg.RotateDaily,
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, q domain.Query) (*domain.SearchResponse, error) {
	startTime := time.Now()

	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.searchTimeout)
	defer cancel()

	log := uc.requestLogger(ctx)
	strategy := uc.priceStrategy(ctx, log)

	now := uc.clock.Now()
	req := engine.Request{Query: q, Pricing: strategy, Now: now}
	if uc.rotateDaily {
		req.DayKey = timeutil.FormatDate(now)
	}

	// The engine is CPU bound; run it aside so the deadline still applies.
	done := make(chan engine.Result, 1)
	go func() {
		done <- uc.engine.Search(req)
	}()

	var res engine.Result
	select {
	case res = <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", domain.ErrSearchTimeout, uc.searchTimeout)
		}
		return nil, ctx.Err()
	}

	response := domain.NewSearchResponse(q, res.Flights, res.Itineraries, domain.SearchMetadata{
		PricingModel: res.PricingModel,
		Pinned:       res.Pinned,
		SearchTimeMs: time.Since(startTime).Milliseconds(),
	})

	log.Debug().
		Str("trip_type", string(q.TripType)).
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Str("pricing_model", res.PricingModel).
		Int("results", response.Metadata.TotalResults).
		Bool("pinned", res.Pinned).
		Int64("duration_ms", response.Metadata.SearchTimeMs).
		Msg("search completed")

	return response, nil
}

// priceStrategy returns the configured strategy when a configuration loads and
// the fallback strategy otherwise.
func (uc *flightSearchUseCase) priceStrategy(ctx context.Context, log *zerolog.Logger) engine.PriceStrategy {
	if !uc.useConfig {
		return engine.FallbackStrategy{}
	}

	cfg, err := uc.pricing.Active(ctx)
	if err != nil {
		event := log.Warn()
		if errors.Is(err, domain.ErrPricingConfigNotFound) {
			event = log.Debug()
		}
		event.Err(err).Str("store", uc.pricing.StoreName()).Msg("pricing configuration unavailable, using fallback prices")
		return engine.FallbackStrategy{}
	}
	return engine.NewPriceStrategy(cfg)
}

// requestLogger prefers the request-scoped logger installed by the HTTP middleware.
func (uc *flightSearchUseCase) requestLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		child := l.With().Str("component", "search").Logger()
		return &child
	}
	return &uc.log.Logger
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
