package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/engine"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
)

// fastRetry keeps retry tests quick.
var fastRetry = retry.StoreConfig.WithMaxAttempts(2)

func init() {
	fastRetry.InitialDelay = time.Millisecond
	fastRetry.MaxDelay = 2 * time.Millisecond
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	catalog, err := reference.LoadEmbedded()
	require.NoError(t, err)
	return engine.New(catalog, engine.DefaultOptions())
}

func newClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Date(2025, 8, 7, 9, 30, 0, 0, time.UTC))
}

// setupMockStore creates a store mock that answers Name freely.
func setupMockStore(ctrl *gomock.Controller) *domain.MockPricingConfigStore {
	store := domain.NewMockPricingConfigStore(ctrl)
	store.EXPECT().Name().Return("mock").AnyTimes()
	return store
}

func newService(store domain.PricingConfigStore, clock timeutil.Clock) *PricingConfigService {
	return NewPricingConfigService(store, clock, logger.Nop(), &PricingConfigOptions{
		CacheTTL:    time.Minute,
		LoadTimeout: time.Second,
		Retry:       fastRetry,
	})
}

func transatlantic() domain.Query {
	return domain.Query{
		Origin:        "jfk",
		Destination:   "lhr",
		CabinClass:    "economy",
		TripType:      "one-way",
		DepartureDate: "2030-03-14",
	}
}

func TestNewFlightSearchUseCase(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantTimeout time.Duration
		wantConfig  bool
	}{
		{
			name:        "nil config uses defaults",
			config:      nil,
			wantTimeout: DefaultSearchTimeout,
			wantConfig:  true,
		},
		{
			name:        "custom timeout",
			config:      &Config{SearchTimeout: time.Second, UseConfiguredPricing: true},
			wantTimeout: time.Second,
			wantConfig:  true,
		},
		{
			name:        "zero timeout keeps default",
			config:      &Config{UseConfiguredPricing: false},
			wantTimeout: DefaultSearchTimeout,
			wantConfig:  false,
		},
	}

	ctrl := gomock.NewController(t)
	svc := newService(setupMockStore(ctrl), newClock())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFlightSearchUseCase(newTestEngine(t), svc, newClock(), nil, tt.config).(*flightSearchUseCase)

			assert.Equal(t, tt.wantTimeout, uc.searchTimeout)
			assert.Equal(t, tt.wantConfig, uc.useConfig)
		})
	}
}

func TestNewFlightSearchUseCase_NilServiceDisablesConfig(t *testing.T) {
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, nil, nil, nil).(*flightSearchUseCase)

	assert.False(t, uc.useConfig)
}

func TestSearch_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(setupMockStore(ctrl), newClock()), newClock(), nil, nil)

	tests := []struct {
		name  string
		query domain.Query
	}{
		{"bad origin", domain.Query{Origin: "JF", Destination: "LHR"}},
		{"bad date", domain.Query{Origin: "JFK", Destination: "LHR", DepartureDate: "14/03/2030"}},
		{"unknown cabin", domain.Query{Origin: "JFK", Destination: "LHR", CabinClass: "steerage"}},
		{"multi-city without legs", domain.Query{TripType: domain.TripMultiCity}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Search(context.Background(), tt.query)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Nil(t, resp)
		})
	}
}

func TestSearch_ConfiguredPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := setupMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(domain.DefaultPricingConfiguration(), nil).Times(1)

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

	resp, err := uc.Search(context.Background(), transatlantic())

	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelConfigured, resp.Metadata.PricingModel)
	assert.Len(t, resp.Flights, 3)
	assert.Equal(t, 3, resp.Metadata.TotalResults)
	assert.Empty(t, resp.Itineraries)
	assert.Equal(t, "JFK", resp.SearchCriteria.Origin)
	assert.Equal(t, domain.TripOneWay, resp.SearchCriteria.TripType)
	assert.Equal(t, domain.CabinEconomy, resp.SearchCriteria.CabinClass)
}

func TestSearch_FallbackOnStoreFailure(t *testing.T) {
	tests := []struct {
		name      string
		loadErr   error
		wantLoads int
	}{
		{"store unavailable is retried", domain.ErrStoreUnavailable, 2},
		{"missing configuration is not retried", domain.ErrPricingConfigNotFound, 1},
		{"malformed configuration is not retried", domain.ErrInvalidPricingConfig, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := setupMockStore(ctrl)
			store.EXPECT().Load(gomock.Any()).Return(nil, tt.loadErr).Times(tt.wantLoads)

			clock := newClock()
			uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

			resp, err := uc.Search(context.Background(), transatlantic())

			require.NoError(t, err, "configuration problems must not fail a search")
			assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)
			assert.Len(t, resp.Flights, 3)
		})
	}
}

func TestSearch_InvalidStoredConfigFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := setupMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(&domain.PricingConfiguration{}, nil).Times(1)

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

	resp, err := uc.Search(context.Background(), transatlantic())

	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)
}

func TestSearch_ConfiguredPricingDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no Load expectation: the store must not be read
	store := setupMockStore(ctrl)

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, &Config{UseConfiguredPricing: false})

	resp, err := uc.Search(context.Background(), transatlantic())

	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)
}

func TestSearch_ConfigurationIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := setupMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(domain.DefaultPricingConfiguration(), nil).Times(2)

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Search(context.Background(), transatlantic())
		require.NoError(t, err)
	}

	clock.Advance(2 * time.Minute)
	_, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)
}

func TestSearch_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := setupMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(domain.DefaultPricingConfiguration(), nil).AnyTimes()

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

	first, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)

	clock.AdvanceDays(3)
	second, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)

	assert.Equal(t, first.Flights, second.Flights, "the fixed day key makes results independent of the date")
}

func TestSearch_RotateDaily(t *testing.T) {
	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, clock, nil, &Config{RotateDaily: true})

	first, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)

	again, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)
	assert.Equal(t, first.Flights, again.Flights)

	clock.AdvanceDays(1)
	next, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)
	assert.NotEqual(t, first.Flights, next.Flights)
}

func TestSearch_DefaultDepartureUsesLocation(t *testing.T) {
	tokyo := timeutil.MustGetLocation("Asia/Tokyo")
	// 20:00 UTC on the 7th is already the 8th in Tokyo
	clock := timeutil.NewMockClock(time.Date(2025, 8, 7, 20, 0, 0, 0, time.UTC))
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, clock, nil, &Config{Location: tokyo})

	q := transatlantic()
	q.DepartureDate = ""
	resp, err := uc.Search(context.Background(), q)

	require.NoError(t, err)
	for _, f := range resp.Flights {
		assert.Equal(t, "2025-08-08", f.Departure.Date)
	}
}

func TestSearch_UnknownAirportIsEmpty(t *testing.T) {
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, newClock(), nil, nil)

	q := transatlantic()
	q.Destination = "ZZZ"
	resp, err := uc.Search(context.Background(), q)

	require.NoError(t, err)
	assert.NotNil(t, resp.Flights)
	assert.Empty(t, resp.Flights)
	assert.Zero(t, resp.Metadata.TotalResults)
}

func TestSearch_MultiCity(t *testing.T) {
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, newClock(), nil, nil)

	resp, err := uc.Search(context.Background(), domain.Query{
		TripType: "multi-city",
		Legs: []domain.Leg{
			{From: "jfk", To: "cdg", Date: "2030-05-01"},
			{From: "cdg", To: "fco", Date: "2030-05-05"},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 3)
	assert.Empty(t, resp.Flights)
	assert.Equal(t, "JFK", resp.SearchCriteria.Legs[0].From)
	for _, it := range resp.Itineraries {
		assert.Len(t, it.Segments, 2)
	}
}

func TestSearch_PinnedMetadata(t *testing.T) {
	uc := NewFlightSearchUseCase(newTestEngine(t), nil, newClock(), nil, nil)

	base, err := uc.Search(context.Background(), transatlantic())
	require.NoError(t, err)
	require.NotEmpty(t, base.Flights)
	picked := base.Flights[len(base.Flights)-1]

	q := transatlantic()
	q.Selected = &domain.SelectedOffer{Airline: picked.Airline, Price: picked.Price, Duration: picked.Duration}
	resp, err := uc.Search(context.Background(), q)

	require.NoError(t, err)
	assert.True(t, resp.Metadata.Pinned)
	assert.Equal(t, picked.Airline, resp.Flights[0].Airline)
	assert.InDelta(t, picked.Price, resp.Flights[0].Price, 100)
}

func TestSearch_LogsWithRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := setupMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrStoreUnavailable).AnyTimes()

	clock := newClock()
	uc := NewFlightSearchUseCase(newTestEngine(t), newService(store, clock), clock, nil, nil)

	var buf bytes.Buffer
	reqLog := zerolog.New(&buf).With().Str("request_id", "req-42").Logger()
	ctx := reqLog.WithContext(context.Background())

	_, err := uc.Search(ctx, transatlantic())
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.Split(buf.Bytes(), []byte("\n"))[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "mock", entry["store"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultSearchTimeout, cfg.SearchTimeout)
	assert.True(t, cfg.UseConfiguredPricing)
	assert.False(t, cfg.RotateDaily)
	assert.Equal(t, time.UTC, cfg.Location)
}
