package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/delivery/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDeliveryProvider is a mock implementation of DeliveryProvider for testing.
type mockDeliveryProvider struct {
	returnEstimates    []domain.DeliveryDateEstimate
	returnSlots        []domain.TimeSlot
	returnCapabilities []domain.PostcodeCapability
	returnError        error
}

// DeliveryDates implements DeliveryProvider.
func (m *mockDeliveryProvider) DeliveryDates(ctx context.Context, fromPostcode, toPostcode string, lodgementDate time.Time, networkID string, numberOfDates int) ([]domain.DeliveryDateEstimate, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnEstimates, nil
}

// DeliveryTimeslots implements DeliveryProvider.
func (m *mockDeliveryProvider) DeliveryTimeslots(ctx context.Context, day *int) ([]domain.TimeSlot, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnSlots, nil
}

// PostcodeCapabilities implements DeliveryProvider.
func (m *mockDeliveryProvider) PostcodeCapabilities(ctx context.Context, postcode string) ([]domain.PostcodeCapability, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnCapabilities, nil
}

// CustomerCollectionPoints implements DeliveryProvider.
func (m *mockDeliveryProvider) CustomerCollectionPoints(ctx context.Context) error {
	return m.returnError
}

// TestDeliveryService_DeliveryDates_Success verifies successful estimation.
func TestDeliveryService_DeliveryDates_Success(t *testing.T) {
	expected := []domain.DeliveryDateEstimate{
		{Date: time.Date(2011, 4, 11, 0, 0, 0, 0, time.UTC), WorkingDays: 2},
	}

	svc := NewDeliveryService(&mockDeliveryProvider{returnEstimates: expected})

	estimates, err := svc.DeliveryDates(context.Background(), "2000", "3000", time.Now(), "01", 1)

	require.NoError(t, err)
	assert.Equal(t, expected, estimates)
}

// TestDeliveryService_DeliveryDates_ProviderError verifies error wrapping
// keeps the upstream code reachable.
func TestDeliveryService_DeliveryDates_ProviderError(t *testing.T) {
	svc := NewDeliveryService(&mockDeliveryProvider{
		returnError: auspost.NewInvalidInputError(auspost.CodeInvalidFromPostcode),
	})

	estimates, err := svc.DeliveryDates(context.Background(), "abc", "3000", time.Now(), "01", 1)

	assert.Nil(t, estimates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get delivery dates")

	var invalid *auspost.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, auspost.CodeInvalidFromPostcode, invalid.Code)
}

// TestDeliveryService_DeliveryTimeslots_Success verifies slot passthrough.
func TestDeliveryService_DeliveryTimeslots_Success(t *testing.T) {
	expected := []domain.TimeSlot{{Weekday: "Monday"}}

	svc := NewDeliveryService(&mockDeliveryProvider{returnSlots: expected})

	slots, err := svc.DeliveryTimeslots(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, expected, slots)
}

// TestDeliveryService_PostcodeCapabilities_ProviderError verifies wrapping.
func TestDeliveryService_PostcodeCapabilities_ProviderError(t *testing.T) {
	svc := NewDeliveryService(&mockDeliveryProvider{returnError: errors.New("provider failure")})

	capabilities, err := svc.PostcodeCapabilities(context.Background(), "3121")

	assert.Nil(t, capabilities)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get postcode capabilities")
}

// TestDeliveryService_CustomerCollectionPoints verifies the provider's
// refusal passes through unwrapped.
func TestDeliveryService_CustomerCollectionPoints(t *testing.T) {
	svc := NewDeliveryService(&mockDeliveryProvider{returnError: auspost.ErrNotImplemented})

	err := svc.CustomerCollectionPoints(context.Background())
	assert.ErrorIs(t, err, auspost.ErrNotImplemented)
}
