package ports

import (
	"context"
	"time"

	"github.com/snowball-one/auspost-apis/internal/features/delivery/domain"
)

// DeliveryProvider defines the delivery estimation capabilities of the
// upstream carrier API.
type DeliveryProvider interface {
	// DeliveryDates estimates delivery dates for a lodgement between two postcodes.
	DeliveryDates(ctx context.Context, fromPostcode, toPostcode string, lodgementDate time.Time, networkID string, numberOfDates int) ([]domain.DeliveryDateEstimate, error)
	// DeliveryTimeslots fetches delivery windows for one weekday (1-7), or all when day is nil.
	DeliveryTimeslots(ctx context.Context, day *int) ([]domain.TimeSlot, error)
	// PostcodeCapabilities fetches per-weekday capabilities for a postcode, or all when empty.
	PostcodeCapabilities(ctx context.Context, postcode string) ([]domain.PostcodeCapability, error)
	// CustomerCollectionPoints is reserved; implementations may decline it.
	CustomerCollectionPoints(ctx context.Context) error
}
