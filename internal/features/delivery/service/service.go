package service

import (
	"context"
	"fmt"
	"time"

	"github.com/snowball-one/auspost-apis/internal/features/delivery/domain"
	"github.com/snowball-one/auspost-apis/internal/features/delivery/ports"
)

// DeliveryService exposes delivery estimation over a provider.
type DeliveryService struct {
	provider ports.DeliveryProvider
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(provider ports.DeliveryProvider) *DeliveryService {
	return &DeliveryService{
		provider: provider,
	}
}

// DeliveryDates estimates delivery dates for a lodgement.
func (s *DeliveryService) DeliveryDates(ctx context.Context, fromPostcode, toPostcode string, lodgementDate time.Time, networkID string, numberOfDates int) ([]domain.DeliveryDateEstimate, error) {
	estimates, err := s.provider.DeliveryDates(ctx, fromPostcode, toPostcode, lodgementDate, networkID, numberOfDates)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery dates: %w", err)
	}
	return estimates, nil
}

// DeliveryTimeslots fetches delivery windows per weekday.
func (s *DeliveryService) DeliveryTimeslots(ctx context.Context, day *int) ([]domain.TimeSlot, error) {
	slots, err := s.provider.DeliveryTimeslots(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery timeslots: %w", err)
	}
	return slots, nil
}

// PostcodeCapabilities fetches per-weekday capabilities per postcode.
func (s *DeliveryService) PostcodeCapabilities(ctx context.Context, postcode string) ([]domain.PostcodeCapability, error) {
	capabilities, err := s.provider.PostcodeCapabilities(ctx, postcode)
	if err != nil {
		return nil, fmt.Errorf("failed to get postcode capabilities: %w", err)
	}
	return capabilities, nil
}

// CustomerCollectionPoints queries collection points; the current provider
// declines it.
func (s *DeliveryService) CustomerCollectionPoints(ctx context.Context) error {
	return s.provider.CustomerCollectionPoints(ctx)
}
