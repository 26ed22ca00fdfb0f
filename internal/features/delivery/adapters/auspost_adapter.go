package adapter

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/core/logger"
	"github.com/snowball-one/auspost-apis/internal/features/delivery/domain"

	"go.uber.org/zap"
)

// deliveryNetworks maps the known network ids to their display names.
var deliveryNetworks = map[string]string{
	"01": "Standard",
	"02": "Express",
}

// AusPostAdapter implements the delivery provider against the Delivery
// Choice REST API. All caller input is validated before any network call.
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

// DeliveryDates estimates delivery dates for a lodgement between two
// postcodes on a delivery network.
func (a *AusPostAdapter) DeliveryDates(ctx context.Context, fromPostcode, toPostcode string, lodgementDate time.Time, networkID string, numberOfDates int) ([]domain.DeliveryDateEstimate, error) {
	from, err := auspost.ParsePostcode(fromPostcode)
	if err != nil {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidFromPostcode)
	}

	to, err := auspost.ParsePostcode(toPostcode)
	if err != nil {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidToPostcode)
	}

	if _, ok := deliveryNetworks[networkID]; !ok {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidNetworkID)
	}

	if beforeToday(lodgementDate) {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidLodgementDate)
	}

	if numberOfDates < 1 || numberOfDates > 10 {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidNumberOfDates)
	}

	params := url.Values{}
	params.Set("fromPostcode", strconv.Itoa(from))
	params.Set("toPostcode", strconv.Itoa(to))
	params.Set("lodgementDate", lodgementDate.Format("2006-01-02"))
	params.Set("networkId", networkID)
	params.Set("numberOfDates", strconv.Itoa(numberOfDates))

	body, err := a.client.Get(ctx, "DeliveryDates", params)
	if err != nil {
		return nil, err
	}

	estimates, err := DecodeDeliveryDates(body)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Decoded delivery date estimates",
		zap.Int("count", len(estimates)),
		zap.String("network", deliveryNetworks[networkID]),
	)
	return estimates, nil
}

// DeliveryTimeslots fetches the delivery windows for one weekday, or all
// weekdays when day is nil.
func (a *AusPostAdapter) DeliveryTimeslots(ctx context.Context, day *int) ([]domain.TimeSlot, error) {
	params := url.Values{}
	if day != nil {
		if *day < 1 || *day > 7 {
			return nil, auspost.NewInvalidInputError(auspost.CodeInvalidDay)
		}
		params.Set("day", strconv.Itoa(*day))
	}

	body, err := a.client.Get(ctx, "DeliveryTimeslots", params)
	if err != nil {
		return nil, err
	}

	return DecodeTimeslots(body)
}

// PostcodeCapabilities fetches per-weekday delivery capabilities for one
// postcode, or all postcodes when postcode is empty.
func (a *AusPostAdapter) PostcodeCapabilities(ctx context.Context, postcode string) ([]domain.PostcodeCapability, error) {
	params := url.Values{}
	if postcode != "" {
		parsed, err := auspost.ParsePostcode(postcode)
		if err != nil {
			return nil, auspost.NewInvalidInputError(auspost.CodeInvalidQueryPostcode)
		}
		params.Set("postcode", strconv.Itoa(parsed))
	}

	body, err := a.client.Get(ctx, "PostcodeCapability", params)
	if err != nil {
		return nil, err
	}

	return DecodePostcodeCapabilities(body)
}

// CustomerCollectionPoints is not supported by this gateway.
func (a *AusPostAdapter) CustomerCollectionPoints(ctx context.Context) error {
	return auspost.ErrNotImplemented
}

// beforeToday reports whether t falls on a calendar day before today.
func beforeToday(t time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
