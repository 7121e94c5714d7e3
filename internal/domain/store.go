package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// PricingConfigStore persists the admin pricing configuration.
// Load returns ErrPricingConfigNotFound when nothing has been saved yet.
type PricingConfigStore interface {
	// Name identifies the backing store in logs.
	Name() string

	Load(ctx context.Context) (*PricingConfiguration, error)
	Save(ctx context.Context, cfg *PricingConfiguration) error
}
