package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/delivery/service"

	"github.com/gofiber/fiber/v2"
)

// DeliveryHandler handles HTTP requests for delivery estimation.
type DeliveryHandler struct {
	deliveryService *service.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliveryService *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
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

// GetDeliveryDates godoc
// @Summary Estimate delivery dates
// @Description Estimates delivery dates for a lodgement between two postcodes
// @Tags delivery
// @Produce json
// @Param from query string true "From postcode"
// @Param to query string true "To postcode"
// @Param lodgement_date query string true "Lodgement date (YYYY-MM-DD)"
// @Param network_id query string false "Delivery network id (01 Standard, 02 Express)" default(01)
// @Param number_of_dates query int false "Number of dates to estimate (1-10)" default(1)
// @Success 200 {array} domain.DeliveryDateEstimate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /delivery-dates [get]
func (h *DeliveryHandler) GetDeliveryDates(c *fiber.Ctx) error {
	lodgementRaw := c.Query("lodgement_date")
	if lodgementRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "lodgement_date query parameter is required",
			RayID:   rayID(c),
		})
	}

	lodgementDate, err := time.Parse("2006-01-02", lodgementRaw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "lodgement_date must be formatted YYYY-MM-DD",
			RayID:   rayID(c),
		})
	}

	networkID := c.Query("network_id", "01")
	numberOfDates := c.QueryInt("number_of_dates", 1)

	estimates, err := h.deliveryService.DeliveryDates(
		c.Context(), c.Query("from"), c.Query("to"), lodgementDate, networkID, numberOfDates)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(estimates)
}

// GetDeliveryTimeslots godoc
// @Summary List delivery timeslots
// @Description Lists delivery windows per weekday, in 24-hour time
// @Tags delivery
// @Produce json
// @Param day query int false "Weekday code (1 Monday - 7 Sunday); all days when omitted"
// @Success 200 {array} domain.TimeSlot
// @Failure 400 {object} ErrorResponse
// @Router /delivery-timeslots [get]
func (h *DeliveryHandler) GetDeliveryTimeslots(c *fiber.Ctx) error {
	var day *int
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "day must be an integer between 1 and 7",
				RayID:   rayID(c),
			})
		}
		day = &parsed
	}

	slots, err := h.deliveryService.DeliveryTimeslots(c.Context(), day)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(slots)
}

// GetPostcodeCapabilities godoc
// @Summary List postcode delivery capabilities
// @Description Lists per-weekday delivery capabilities for a postcode
// @Tags delivery
// @Produce json
// @Param postcode query string false "Postcode; all postcodes when omitted"
// @Success 200 {array} domain.PostcodeCapability
// @Failure 400 {object} ErrorResponse
// @Router /postcode-capabilities [get]
func (h *DeliveryHandler) GetPostcodeCapabilities(c *fiber.Ctx) error {
	capabilities, err := h.deliveryService.PostcodeCapabilities(c.Context(), c.Query("postcode"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(capabilities)
}

// GetCollectionPoints godoc
// @Summary Query customer collection points
// @Description Reserved upstream capability; always responds 501
// @Tags delivery
// @Produce json
// @Failure 501 {object} ErrorResponse
// @Router /collection-points [get]
func (h *DeliveryHandler) GetCollectionPoints(c *fiber.Ctx) error {
	if err := h.deliveryService.CustomerCollectionPoints(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
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

	if errors.Is(err, auspost.ErrNotImplemented) {
		return c.Status(fiber.StatusNotImplemented).JSON(ErrorResponse{
			Message: "capability not implemented",
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
