// Package main is the entry point for the synthetic flight search service.
//
//	@title						Synthetic Flight Search API
//	@version					1.0.0
//	@description				Deterministic synthetic flight search with admin-configurable pricing.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	// Import generated docs for swagger
	_ "github.com/flight-search/synthetic-flight-search/docs"

	// Application layers
	flighthttp "github.com/flight-search/synthetic-flight-search/internal/adapter/http"
	"github.com/flight-search/synthetic-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/synthetic-flight-search/internal/adapter/store"
	"github.com/flight-search/synthetic-flight-search/internal/config"
	"github.com/flight-search/synthetic-flight-search/internal/domain"
	"github.com/flight-search/synthetic-flight-search/internal/engine"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/synthetic-flight-search/internal/reference"
	"github.com/flight-search/synthetic-flight-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
	maxBodySize     = "1M"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  logger.DefaultServiceName,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("pricing_store", cfg.Pricing.Store).
		Msg("Configuration loaded")

	catalog, err := reference.LoadFiles(cfg.Reference.AirportsPath, cfg.Reference.AirlinesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	pricingStore, db, err := openStore(startCtx, cfg)
	if err == nil && cfg.Pricing.SeedDefaults {
		err = seedDefaults(startCtx, pricingStore, log)
	}
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Pricing.Store).Msg("Failed to prepare pricing store")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	e.Use(echomw.BodyLimit(maxBodySize))
	e.Use(echomw.CORS())

	setupRoutes(e, cfg, catalog, pricingStore, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, db, log)
}

// openStore builds the configured pricing store. The returned *sql.DB is nil
// unless the store is PostgreSQL.
func openStore(ctx context.Context, cfg *config.Config) (domain.PricingConfigStore, *sql.DB, error) {
	switch cfg.Pricing.Store {
	case config.StoreFile:
		return store.NewFileStore(cfg.Pricing.FilePath), nil, nil
	case config.StorePostgres:
		db, err := store.OpenPostgres(ctx, cfg.Pricing.DatabaseURL, retry.DefaultConfig)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg, db, nil
	default:
		return store.NewMemoryStore(nil), nil, nil
	}
}

// seedDefaults writes the bundled pricing configuration into an empty store.
func seedDefaults(ctx context.Context, s domain.PricingConfigStore, log *logger.Logger) error {
	_, err := s.Load(ctx)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, domain.ErrPricingConfigNotFound):
		return err
	}

	if err := s.Save(ctx, domain.DefaultPricingConfiguration()); err != nil {
		return fmt.Errorf("seed default pricing: %w", err)
	}
	log.Info().Str("store", s.Name()).Msg("Seeded default pricing configuration")
	return nil
}

// setupRoutes wires the engine, the use cases and the handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, catalog *reference.Catalog, pricingStore domain.PricingConfigStore, log *logger.Logger) {
	legPolicy := engine.SkipInvalidLegs
	if cfg.Engine.RejectInvalidLegs {
		legPolicy = engine.RejectInvalidLegs
	}
	eng := engine.New(catalog, engine.Options{
		DayKey:        cfg.Engine.DayKey,
		CandidatePool: cfg.Engine.CandidatePool,
		LegPolicy:     legPolicy,
	})

	clock := timeutil.NewRealClock()

	pricingOpts := usecase.DefaultPricingConfigOptions()
	pricingOpts.CacheTTL = cfg.Pricing.CacheTTL
	pricingOpts.LoadTimeout = cfg.Timeouts.ConfigLoad
	pricing := usecase.NewPricingConfigService(pricingStore, clock, log, &pricingOpts)

	search := usecase.NewFlightSearchUseCase(eng, pricing, clock, log, &usecase.Config{
		SearchTimeout:        cfg.Timeouts.Search,
		UseConfiguredPricing: cfg.Pricing.UseConfig,
		RotateDaily:          cfg.Engine.RotateDaily,
		Location:             cfg.Location(),
	})

	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(search), flighthttp.NewPricingConfigHandler(pricing))
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, db *sql.DB, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}

	log.Info().Msg("Server stopped")
}
