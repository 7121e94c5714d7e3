package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/synthetic-flight-search/internal/adapter/store"
	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/engine"
	"github.com/flight-search/synthetic-flight-search/test/testutil"
)

// TestUseCase_FileStore tests searching and updating through a JSON file store.
func TestUseCase_FileStore(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteJSON(t, dir, "pricing.json", domain.DefaultPricingConfiguration())

	opts := DefaultOptions()
	opts.Store = store.NewFileStore(path)
	ts := NewTestServerWithOptions(t, opts)

	resp, err := ts.UseCase.Search(context.Background(), DefaultQuery())
	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelConfigured, resp.Metadata.PricingModel)

	updated := testutil.PricingWithClassMultiplier(domain.CabinPremiumEconomy, 1.7)
	require.Equal(t, http.StatusOK, ts.PutPricing(updated).Code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	onDisk := testutil.DecodeJSON[domain.PricingConfiguration](t, data)
	assert.Equal(t, updated, &onDisk)
}

// TestUseCase_FileStoreFallbacks tests that unusable files fall back to the hardcoded model.
func TestUseCase_FileStoreFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string) string
		wantStatus int
	}{
		{
			name: "missing file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "absent.json")
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "corrupt file",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "pricing.json")
				require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
				return path
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid bands",
			setup: func(t *testing.T, dir string) string {
				cfg := domain.DefaultPricingConfiguration()
				cfg.RegionPricing[0].ShortHaul[0].MinPrice = 0
				return testutil.WriteJSON(t, dir, "pricing.json", cfg)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Store = store.NewFileStore(tt.setup(t, t.TempDir()))
			ts := NewTestServerWithOptions(t, opts)

			resp, err := ts.UseCase.Search(context.Background(), DefaultQuery())

			require.NoError(t, err, "a broken configuration never fails a search")
			assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)
			assert.Len(t, resp.Flights, 3)
			assert.Equal(t, tt.wantStatus, ts.GetPricing().Code)
		})
	}
}

// TestUseCase_PostgresStore tests the PostgreSQL store behind the use case.
func TestUseCase_PostgresStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload, err := json.Marshal(domain.DefaultPricingConfiguration())
	require.NoError(t, err)

	mock.ExpectQuery("SELECT payload FROM pricing_configurations").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	opts := DefaultOptions()
	opts.Store = store.NewPostgresStore(db)
	ts := NewTestServerWithOptions(t, opts)

	for i := 0; i < 3; i++ {
		resp, err := ts.UseCase.Search(context.Background(), DefaultQuery())
		require.NoError(t, err)
		assert.Equal(t, domain.PricingModelConfigured, resp.Metadata.PricingModel)
	}

	assert.NoError(t, mock.ExpectationsWereMet(), "the cached configuration serves repeated searches")
}

// TestUseCase_PostgresUnavailable tests a database that is down.
func TestUseCase_PostgresUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM pricing_configurations").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery("SELECT payload FROM pricing_configurations").
		WillReturnError(errors.New("connection refused"))

	opts := DefaultOptions()
	opts.Store = store.NewPostgresStore(db)
	ts := NewTestServerWithOptions(t, opts)

	resp, err := ts.UseCase.Search(context.Background(), DefaultQuery())
	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)

	assert.Equal(t, http.StatusServiceUnavailable, ts.GetPricing().Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUseCase_ConfiguredPricingDisabled tests that the stored configuration can be ignored.
func TestUseCase_ConfiguredPricingDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.UseCase.UseConfiguredPricing = false
	ts := NewTestServerWithOptions(t, opts)

	resp, err := ts.UseCase.Search(context.Background(), DefaultQuery())

	require.NoError(t, err)
	assert.Equal(t, domain.PricingModelFallback, resp.Metadata.PricingModel)
}

// TestUseCase_InvalidQuery tests that structural errors surface as ErrInvalidRequest.
func TestUseCase_InvalidQuery(t *testing.T) {
	ts := NewTestServer(t)
	q := DefaultQuery()
	q.TripType = domain.TripMultiCity

	_, err := ts.UseCase.Search(context.Background(), q)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

// TestUseCase_MultiCityLegPolicy tests both policies for an unresolvable leg.
func TestUseCase_MultiCityLegPolicy(t *testing.T) {
	q := domain.Query{
		TripType: domain.TripMultiCity,
		Legs: []domain.Leg{
			{From: "JFK", To: "LHR", Date: DepartureDate},
			{From: "QQQ", To: "CDG", Date: "2025-09-18"},
		},
	}

	skip := NewTestServer(t)
	resp, err := skip.UseCase.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 3)
	for _, it := range resp.Itineraries {
		assert.Len(t, it.Segments, 1)
	}

	opts := DefaultOptions()
	opts.Engine.LegPolicy = engine.RejectInvalidLegs
	reject := NewTestServerWithOptions(t, opts)
	resp, err = reject.UseCase.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, resp.Itineraries)
}
