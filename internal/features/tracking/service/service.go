package service

import (
	"context"
	"fmt"

	"github.com/snowball-one/auspost-apis/internal/features/tracking/domain"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/ports"
)

// TrackingService exposes consignment tracking over a provider.
type TrackingService struct {
	provider ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(provider ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
	}
}

// QueryTracking fetches tracking results for the given ids.
func (s *TrackingService) QueryTracking(ctx context.Context, ids []string) ([]domain.TrackingResult, error) {
	results, err := s.provider.QueryTracking(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking: %w", err)
	}
	return results, nil
}
