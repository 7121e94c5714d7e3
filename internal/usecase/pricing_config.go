package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
)

// Defaults for PricingConfigService.
const (
	DefaultCacheTTL = 30 * time.Second
)

const activeCacheKey = "active"

// PricingConfigOptions tunes PricingConfigService.
type PricingConfigOptions struct {
	// CacheTTL is how long a loaded configuration is reused. Zero disables caching.
	CacheTTL time.Duration

	// LoadTimeout bounds one Active call, retries included.
	LoadTimeout time.Duration

	Retry retry.Config
}

// DefaultPricingConfigOptions returns the options used when none are configured.
func DefaultPricingConfigOptions() PricingConfigOptions {
	return PricingConfigOptions{
		CacheTTL:    DefaultCacheTTL,
		LoadTimeout: DefaultConfigLoadTimeout,
		Retry:       retry.StoreConfig,
	}
}

// PricingConfigService reads and replaces the admin pricing configuration.
// Reads on the search path go through a TTL cache.
type PricingConfigService struct {
	store domain.PricingConfigStore
	cache *cache.Cache[*domain.PricingConfiguration]
	opts  PricingConfigOptions
	log   *logger.Logger
}

// NewPricingConfigService creates a service over store. A nil clock uses the system clock.
func NewPricingConfigService(store domain.PricingConfigStore, clock timeutil.Clock, log *logger.Logger, opts *PricingConfigOptions) *PricingConfigService {
	o := DefaultPricingConfigOptions()
	if opts != nil {
		o.CacheTTL = opts.CacheTTL
		if opts.LoadTimeout > 0 {
			o.LoadTimeout = opts.LoadTimeout
		}
		if opts.Retry.MaxAttempts > 0 {
			o.Retry = opts.Retry
		}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PricingConfigService{
		store: store,
		cache: cache.New((*domain.PricingConfiguration).Clone, clock),
		opts:  o,
		log:   log.WithComponent("pricing-config"),
	}
}

// StoreName reports the backing store.
func (s *PricingConfigService) StoreName() string {
	return s.store.Name()
}

// Active returns the configuration used for pricing. It is served from the
// cache when possible; a stored configuration that fails validation is an error.
func (s *PricingConfigService) Active(ctx context.Context) (*domain.PricingConfiguration, error) {
	if cfg, ok := s.cache.Get(activeCacheKey); ok {
		return cfg, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.LoadTimeout)
	defer cancel()

	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s.cache.Set(activeCacheKey, cfg, s.opts.CacheTTL)
	return cfg, nil
}

// Get returns the stored configuration as is, bypassing the cache.
func (s *PricingConfigService) Get(ctx context.Context) (*domain.PricingConfiguration, error) {
	return s.load(ctx)
}

// Put validates and stores cfg, then drops the cached copy.
func (s *PricingConfigService) Put(ctx context.Context, cfg *domain.PricingConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("store %s: %w", s.store.Name(), err)
	}
	s.cache.Delete(activeCacheKey)

	s.log.Info().
		Str("store", s.store.Name()).
		Int("regions", len(cfg.RegionPricing)).
		Msg("pricing configuration replaced")
	return nil
}

// load reads from the store with retries. Missing and malformed
// configurations are not retried.
func (s *PricingConfigService) load(ctx context.Context) (*domain.PricingConfiguration, error) {
	cfg := s.opts.Retry.WithOnRetry(func(attempt int, err error) {
		s.log.Debug().Int("attempt", attempt).Err(err).Str("store", s.store.Name()).Msg("retrying pricing configuration load")
	})

	return retry.DoWithResult(ctx, func() (*domain.PricingConfiguration, error) {
		c, err := s.store.Load(ctx)
		if errors.Is(err, domain.ErrPricingConfigNotFound) || errors.Is(err, domain.ErrInvalidPricingConfig) {
			return nil, retry.NewPermanent(err)
		}
		return c, err
	}, cfg)
}
