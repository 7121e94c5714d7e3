// Package store implements domain.PricingConfigStore on memory, a JSON file and PostgreSQL.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/flight-search/synthetic-flight-search/internal/domain"
)

// MemoryStore keeps the configuration in process. It is safe for concurrent use.
type MemoryStore struct {
	mu  sync.RWMutex
	cfg *domain.PricingConfiguration
}

// NewMemoryStore creates a store holding a copy of initial; nil starts empty.
func NewMemoryStore(initial *domain.PricingConfiguration) *MemoryStore {
	return &MemoryStore{cfg: initial.Clone()}
}

// Name implements domain.PricingConfigStore.
func (s *MemoryStore) Name() string {
	return "memory"
}

// Load implements domain.PricingConfigStore.
func (s *MemoryStore) Load(ctx context.Context) (*domain.PricingConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg == nil {
		return nil, domain.ErrPricingConfigNotFound
	}
	return s.cfg.Clone(), nil
}

// Save implements domain.PricingConfigStore.
func (s *MemoryStore) Save(ctx context.Context, cfg *domain.PricingConfiguration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("save to memory store: %w", err)
	}
	s.mu.Lock()
	s.cfg = cfg.Clone()
	s.mu.Unlock()
	return nil
}

var _ domain.PricingConfigStore = (*MemoryStore)(nil)
