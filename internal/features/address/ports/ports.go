package ports

import (
	"context"

	"github.com/snowball-one/auspost-apis/internal/features/address/domain"
)

// AddressProvider defines the address validation capability of the
// upstream carrier API.
type AddressProvider interface {
	// ValidateAddress submits an address and returns the upstream verdict.
	ValidateAddress(ctx context.Context, line1, line2, suburb, state, postcode, country string) (*domain.ValidationResult, error)
}
