package domain

import "errors"

// Sentinel errors. Wrap them with fmt.Errorf("%w: ...") to add context.
var (
	// ErrInvalidRequest indicates the search query failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidPricingConfig indicates a pricing configuration that cannot be used.
	ErrInvalidPricingConfig = errors.New("invalid pricing configuration")

	// ErrPricingConfigNotFound indicates the store holds no pricing configuration.
	ErrPricingConfigNotFound = errors.New("pricing configuration not found")

	// ErrSearchTimeout indicates the search did not finish within its deadline.
	ErrSearchTimeout = errors.New("search timed out")

	// ErrStoreUnavailable indicates the pricing configuration store could not be reached.
	ErrStoreUnavailable = errors.New("pricing configuration store unavailable")
)
