package ports

import (
	"context"

	"github.com/snowball-one/auspost-apis/internal/features/tracking/domain"
)

// TrackingProvider defines the consignment tracking capability of the
// upstream carrier API.
type TrackingProvider interface {
	// QueryTracking fetches tracking results for up to ten tracking ids.
	QueryTracking(ctx context.Context, ids []string) ([]domain.TrackingResult, error)
}
