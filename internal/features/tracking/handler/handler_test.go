package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/domain"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTrackingProvider is a mock implementation of TrackingProvider for testing.
type mockTrackingProvider struct {
	gotIDs        []string
	returnResults []domain.TrackingResult
	returnError   error
}

// QueryTracking implements TrackingProvider.
func (m *mockTrackingProvider) QueryTracking(ctx context.Context, ids []string) ([]domain.TrackingResult, error) {
	m.gotIDs = ids
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnResults, nil
}

// newTestApp wires a handler over the mock provider with a fixed request id.
func newTestApp(provider *mockTrackingProvider) *fiber.App {
	handler := NewTrackingHandler(service.NewTrackingService(provider))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/tracking/:ids", handler.QueryTracking)
	return app
}

// TestTrackingHandler_QueryTracking_Success verifies id splitting and the
// result payload.
func TestTrackingHandler_QueryTracking_Success(t *testing.T) {
	provider := &mockTrackingProvider{
		returnResults: []domain.TrackingResult{
			{ID: "1234", Article: domain.Article{ID: "1234", Events: []domain.Event{}}},
			{ID: "5678", Article: domain.Article{ID: "5678", Events: []domain.Event{}}},
		},
	}
	app := newTestApp(provider)

	req := httptest.NewRequest("GET", "/tracking/1234,5678", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1234", "5678"}, provider.gotIDs)

	var result []domain.TrackingResult
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "1234", result[0].ID)
}

// TestTrackingHandler_QueryTracking_MissingIDs verifies the route requires ids.
func TestTrackingHandler_QueryTracking_MissingIDs(t *testing.T) {
	app := newTestApp(&mockTrackingProvider{})

	req := httptest.NewRequest("GET", "/tracking/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestTrackingHandler_QueryTracking_InvalidInput verifies validation errors
// map to 400 with the catalog code.
func TestTrackingHandler_QueryTracking_InvalidInput(t *testing.T) {
	app := newTestApp(&mockTrackingProvider{
		returnError: auspost.NewInvalidInputError(auspost.CodeTooManyTrackingIDs),
	})

	req := httptest.NewRequest("GET", "/tracking/1,2,3,4,5,6,7,8,9,10,11", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, auspost.CodeTooManyTrackingIDs, errResp.Code)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestTrackingHandler_QueryTracking_BusinessError verifies upstream
// rejections map to 422.
func TestTrackingHandler_QueryTracking_BusinessError(t *testing.T) {
	app := newTestApp(&mockTrackingProvider{
		returnError: auspost.NewBusinessError(1404, "Article not found"),
	})

	req := httptest.NewRequest("GET", "/tracking/unknown", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, 1404, errResp.Code)
	assert.Contains(t, errResp.Message, "Article not found")
}

// TestTrackingHandler_QueryTracking_TransportError verifies upstream HTTP
// failures map to 502.
func TestTrackingHandler_QueryTracking_TransportError(t *testing.T) {
	app := newTestApp(&mockTrackingProvider{
		returnError: &auspost.TransportError{StatusCode: 503, Status: "Service Unavailable"},
	})

	req := httptest.NewRequest("GET", "/tracking/1234", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
