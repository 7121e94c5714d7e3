// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/synthetic-flight-search/internal/infrastructure/timeutil"
)

// Pricing store kinds.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Engine    EngineConfig
	Pricing   PricingConfig
	Reference ReferenceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for search operations.
type TimeoutConfig struct {
	Search     time.Duration `env:"TIMEOUT_SEARCH" envDefault:"5s"`
	ConfigLoad time.Duration `env:"TIMEOUT_CONFIG_LOAD" envDefault:"500ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// EngineConfig tunes offer generation.
type EngineConfig struct {
	// DayKey is mixed into every seed. Results repeat for as long as it stays the same.
	DayKey string `env:"SEED_DAY_KEY" envDefault:"2025-08-07"`

	// RotateDaily replaces DayKey with the current date in Timezone.
	RotateDaily bool `env:"SEED_ROTATE_DAILY" envDefault:"false"`

	Timezone      string `env:"ENGINE_TIMEZONE" envDefault:"UTC"`
	CandidatePool int    `env:"ENGINE_CANDIDATE_POOL" envDefault:"3"`

	// RejectInvalidLegs drops a whole multi-city search when one leg cannot be resolved.
	RejectInvalidLegs bool `env:"ENGINE_REJECT_INVALID_LEGS" envDefault:"false"`
}

// PricingConfig selects and tunes the pricing configuration store.
type PricingConfig struct {
	Store       string        `env:"PRICING_STORE" envDefault:"memory"`
	FilePath    string        `env:"PRICING_FILE_PATH" envDefault:"data/pricing.json"`
	DatabaseURL string        `env:"PRICING_DATABASE_URL"`
	CacheTTL    time.Duration `env:"PRICING_CACHE_TTL" envDefault:"30s"`

	// UseConfig prices with the stored configuration; false always uses the fallback model.
	UseConfig bool `env:"PRICING_USE_CONFIG" envDefault:"true"`

	// SeedDefaults writes the bundled configuration when the store is empty.
	SeedDefaults bool `env:"PRICING_SEED_DEFAULTS" envDefault:"true"`
}

// ReferenceConfig points at replacement airport and airline tables.
// Empty paths use the tables compiled into the binary.
type ReferenceConfig struct {
	AirportsPath string `env:"REFERENCE_AIRPORTS_PATH"`
	AirlinesPath string `env:"REFERENCE_AIRLINES_PATH"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}
	if cfg.Timeouts.ConfigLoad <= 0 {
		return fmt.Errorf("TIMEOUT_CONFIG_LOAD must be positive")
	}

	// The configuration load happens inside the search deadline
	if cfg.Timeouts.ConfigLoad >= cfg.Timeouts.Search {
		return fmt.Errorf("TIMEOUT_CONFIG_LOAD (%s) should be less than TIMEOUT_SEARCH (%s)",
			cfg.Timeouts.ConfigLoad, cfg.Timeouts.Search)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := timeutil.ParseDate(cfg.Engine.DayKey); err != nil && !cfg.Engine.RotateDaily {
		return fmt.Errorf("SEED_DAY_KEY must be a YYYY-MM-DD date, got %q", cfg.Engine.DayKey)
	}
	if _, err := timeutil.GetLocation(cfg.Engine.Timezone); err != nil {
		return fmt.Errorf("ENGINE_TIMEZONE: %w", err)
	}
	if cfg.Engine.CandidatePool < 3 {
		return fmt.Errorf("ENGINE_CANDIDATE_POOL must be at least 3, got %d", cfg.Engine.CandidatePool)
	}

	switch cfg.Pricing.Store {
	case StoreMemory:
	case StoreFile:
		if cfg.Pricing.FilePath == "" {
			return fmt.Errorf("PRICING_FILE_PATH is required when PRICING_STORE=file")
		}
	case StorePostgres:
		if cfg.Pricing.DatabaseURL == "" {
			return fmt.Errorf("PRICING_DATABASE_URL is required when PRICING_STORE=postgres")
		}
	default:
		return fmt.Errorf("PRICING_STORE must be one of: memory, file, postgres; got %q", cfg.Pricing.Store)
	}
	if cfg.Pricing.CacheTTL < 0 {
		return fmt.Errorf("PRICING_CACHE_TTL must not be negative")
	}

	return nil
}

// Location returns the engine time zone. It is valid after Load.
func (c *Config) Location() *time.Location {
	return timeutil.MustGetLocation(c.Engine.Timezone)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
