package service

import (
	"context"
	"fmt"

	"github.com/snowball-one/auspost-apis/internal/features/address/domain"
	"github.com/snowball-one/auspost-apis/internal/features/address/ports"
)

// AddressService exposes address validation over a provider.
type AddressService struct {
	provider ports.AddressProvider
}

// NewAddressService creates a new AddressService.
func NewAddressService(provider ports.AddressProvider) *AddressService {
	return &AddressService{
		provider: provider,
	}
}

// ValidateAddress submits an address for validation.
func (s *AddressService) ValidateAddress(ctx context.Context, line1, line2, suburb, state, postcode, country string) (*domain.ValidationResult, error) {
	result, err := s.provider.ValidateAddress(ctx, line1, line2, suburb, state, postcode, country)
	if err != nil {
		return nil, fmt.Errorf("failed to validate address: %w", err)
	}
	return result, nil
}
