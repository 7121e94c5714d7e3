package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// FileStore keeps the configuration as a JSON document on disk.
// Writes go to a temporary file that is renamed over the target.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store for path. The file does not have to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Name implements domain.PricingConfigStore.
func (s *FileStore) Name() string {
	return "file"
}

// Load implements domain.PricingConfigStore.
func (s *FileStore) Load(ctx context.Context) (*domain.PricingConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrPricingConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	var cfg domain.PricingConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidPricingConfig, s.path, err)
	}
	return &cfg, nil
}

// Save implements domain.PricingConfigStore.
func (s *FileStore) Save(ctx context.Context, cfg *domain.PricingConfiguration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("save to file store: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pricing configuration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrStoreUnavailable, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".pricing-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreUnavailable, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStoreUnavailable, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}

var _ domain.PricingConfigStore = (*FileStore)(nil)
