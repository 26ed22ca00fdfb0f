package handler

import (
	"errors"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/address/service"

	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for address validation.
type AddressHandler struct {
	addressService *service.AddressService
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
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

// ValidateAddress godoc
// @Summary Validate an Australian address
// @Description Submits an address for validation; the is_valid flag carries the upstream verdict
// @Tags address
// @Produce json
// @Param line1 query string true "Address line 1"
// @Param line2 query string false "Address line 2"
// @Param suburb query string true "Suburb"
// @Param state query string true "State or territory"
// @Param postcode query string true "Postcode"
// @Param country query string false "Country" default(Australia)
// @Success 200 {object} domain.ValidationResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /address/validate [get]
func (h *AddressHandler) ValidateAddress(c *fiber.Ctx) error {
	result, err := h.addressService.ValidateAddress(
		c.Context(),
		c.Query("line1"),
		c.Query("line2"),
		c.Query("suburb"),
		c.Query("state"),
		c.Query("postcode"),
		c.Query("country"),
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(result)
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
