package domain

import (
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
)

// Event is a single scan or handling event in an article's history.
type Event struct {
	// Description is the upstream event description.
	Description string `json:"description"`
	// Timestamp is when the event occurred (UTC).
	Timestamp time.Time `json:"timestamp"`
	// Location is where the event occurred.
	Location string `json:"location"`
	// SignerName is who signed for the article, when anyone did.
	SignerName *string `json:"signer_name,omitempty"`
}

// Article is a single trackable item.
type Article struct {
	// ID is the article identifier.
	ID string `json:"id"`
	// ProductName is the carrier product (e.g., Express Post), when reported.
	ProductName *string `json:"product_name,omitempty"`
	// Status is the latest upstream status, when reported.
	Status *string `json:"status,omitempty"`
	// EventNotificationCode is the upstream notification subscription code.
	EventNotificationCode *string `json:"event_notification_code,omitempty"`
	// Origin is the origin country, when reported.
	Origin *auspost.Country `json:"origin,omitempty"`
	// Destination is the destination country, when reported.
	Destination *auspost.Country `json:"destination,omitempty"`
	// Events are the article's events, chronological as given.
	Events []Event `json:"events"`
}

// Consignment is a shipment grouping of zero or more articles.
type Consignment struct {
	// ID is the consignment identifier.
	ID string `json:"id"`
	// Articles are the consignment's articles.
	Articles []Article `json:"articles"`
}

// TrackingResult is the tracking outcome for one queried id. Each id
// resolves to exactly one article.
type TrackingResult struct {
	// ID is the queried tracking id.
	ID string `json:"id"`
	// Article is the tracked article.
	Article Article `json:"article"`
	// Consignment is the enclosing consignment, when reported.
	Consignment *Consignment `json:"consignment,omitempty"`
}
