package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/retry"
)

// activeConfigID is the primary key of the single active configuration row.
const activeConfigID = "active"

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS pricing_configurations (
		id         TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	loadSQL = `SELECT payload FROM pricing_configurations WHERE id = $1`

	saveSQL = `INSERT INTO pricing_configurations (id, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
)

// OpenPostgres opens a connection pool and waits for the database to answer.
func OpenPostgres(ctx context.Context, dsn string, cfg retry.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := retry.Do(ctx, func() error { return db.PingContext(ctx) }, cfg.WithRetryIf(retryablePing)); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", domain.ErrStoreUnavailable, err)
	}
	return db, nil
}

// retryablePing rejects bad credentials and unknown databases.
func retryablePing(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "28", "3D":
			return false
		}
	}
	return true
}

// PostgresStore keeps the configuration as a JSONB document in one row.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Name implements domain.PricingConfigStore.
func (s *PostgresStore) Name() string {
	return "postgres"
}

// Migrate creates the table when it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("migrate pricing_configurations: %w", err)
	}
	return nil
}

// Load implements domain.PricingConfigStore.
func (s *PostgresStore) Load(ctx context.Context) (*domain.PricingConfiguration, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, loadSQL, activeConfigID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPricingConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load pricing configuration: %v", domain.ErrStoreUnavailable, err)
	}

	var cfg domain.PricingConfiguration
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode stored payload: %v", domain.ErrInvalidPricingConfig, err)
	}
	return &cfg, nil
}

// Save implements domain.PricingConfigStore.
func (s *PostgresStore) Save(ctx context.Context, cfg *domain.PricingConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("save to postgres store: %w", err)
	}
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode pricing configuration: %w", err)
	}
	// text, not []byte: lib/pq would encode bytes as bytea
	if _, err := s.db.ExecContext(ctx, saveSQL, activeConfigID, string(payload)); err != nil {
		return fmt.Errorf("%w: save pricing configuration: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

var _ domain.PricingConfigStore = (*PostgresStore)(nil)
