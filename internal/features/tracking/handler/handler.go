package handler

import (
	"errors"
	"strings"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for consignment tracking.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Code is the upstream error code, when one applies.
	Code int `json:"code,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// QueryTracking godoc
// @Summary Track consignments
// @Description Fetches tracking results for up to ten comma-separated tracking ids
// @Tags tracking
// @Produce json
// @Param ids path string true "Comma-separated tracking ids"
// @Success 200 {array} domain.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/{ids} [get]
func (h *TrackingHandler) QueryTracking(c *fiber.Ctx) error {
	raw := c.Params("ids")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking ids are required",
			RayID:   rayID(c),
		})
	}

	ids := strings.Split(raw, ",")

	results, err := h.trackingService.QueryTracking(c.Context(), ids)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(results)
}

// writeError maps the upstream error taxonomy onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	var invalidInput *auspost.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: invalidInput.Message,
			Code:    invalidInput.Code,
			RayID:   rayID(c),
		})
	}

	var businessErr *auspost.BusinessError
	if errors.As(err, &businessErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: businessErr.Message,
			Code:    businessErr.Code,
			RayID:   rayID(c),
		})
	}

	var transportErr *auspost.TransportError
	if errors.As(err, &transportErr) {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: transportErr.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

// rayID returns the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
