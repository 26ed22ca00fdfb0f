package adapter

import (
	"context"
	"net/url"
	"strings"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/core/logger"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/domain"

	"go.uber.org/zap"
)

const (
	// maxTrackingIDs is the upstream cap per query.
	maxTrackingIDs = 10
	// maxTrackingIDLength is the upstream cap per id.
	maxTrackingIDLength = 50
)

// AusPostAdapter implements the tracking provider against the Delivery
// Choice REST API.
type AusPostAdapter struct {
	client *auspost.Client
	logger *zap.Logger
}

// NewAusPostAdapter creates an AusPostAdapter over the given client.
func NewAusPostAdapter(client *auspost.Client) *AusPostAdapter {
	return &AusPostAdapter{
		client: client,
		logger: logger.Get(),
	}
}

// QueryTracking fetches tracking results for up to ten tracking ids.
func (a *AusPostAdapter) QueryTracking(ctx context.Context, ids []string) ([]domain.TrackingResult, error) {
	if len(ids) > maxTrackingIDs {
		return nil, auspost.NewInvalidInputError(auspost.CodeTooManyTrackingIDs)
	}
	for _, id := range ids {
		if id == "" || len(id) > maxTrackingIDLength {
			return nil, auspost.NewInvalidInputError(auspost.CodeInvalidTrackingID)
		}
	}

	params := url.Values{}
	params.Set("q", strings.Join(ids, ","))

	body, err := a.client.Get(ctx, "QueryTracking", params)
	if err != nil {
		return nil, err
	}

	results, err := DecodeTrackingResults(body)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Decoded tracking results",
		zap.Int("queried", len(ids)),
		zap.Int("count", len(results)),
	)
	return results, nil
}
