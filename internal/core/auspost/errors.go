package auspost

import (
	"errors"
	"fmt"
)

// Upstream Delivery Choice error codes used for request pre-validation.
const (
	CodeInvalidFromPostcode    = 1001
	CodeInvalidToPostcode      = 1002
	CodeInvalidNetworkID       = 1003
	CodeInvalidLodgementDate   = 1004
	CodeInvalidNumberOfDates   = 1005
	CodeInvalidDay             = 1101
	CodeInvalidQueryPostcode   = 1201
	CodeTooManyTrackingIDs     = 1402
	CodeInvalidTrackingID      = 1403
	CodeInvalidAddressLine     = 1501
	CodeInvalidSuburb          = 1502
	CodeInvalidState           = 1503
	CodeInvalidAddressPostcode = 1504
)

// errorCatalog maps Delivery Choice error codes to their documented
// messages, used as fallbacks when the upstream omits a description.
var errorCatalog = map[int]string{
	// delivery dates
	1001: "Invalid from postcode",
	1002: "Invalid to postcode",
	1003: "Invalid network id",
	1004: "Invalid lodgement date",
	1005: "Invalid number of dates",
	// timeslots
	1101: "Invalid day",
	// postcode capabilities
	1201: "Invalid postcode",
	1202: "No postcode capability found",
	// customer collection points
	1301: "Invalid state",
	1302: "Invalid postcode",
	1303: "Invalid date",
	// query tracking
	1401: "Invalid tracking ID",
	1402: "Maximum of 10 tracking IDs is allowed",
	1403: "A tracking ID is invalid or exeeds 50 characters",
	1404: "Product is not trackable",
	// validate address
	1501: "Invalid address line",
	1502: "Invalid suburb",
	1503: "Invalid state",
	1504: "Invalid postcode",
	1505: "Invalid country",
}

// CatalogMessage returns the documented message for an error code, or ""
// when the code is not in the catalog.
func CatalogMessage(code int) string {
	return errorCatalog[code]
}

var (
	// ErrUnknownDayCode is returned when a weekday code falls outside 1-7.
	ErrUnknownDayCode = errors.New("unknown day code")
	// ErrInvariantViolation is returned when decoded data breaks a documented invariant.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrNotImplemented is returned by upstream capabilities this gateway does not support.
	ErrNotImplemented = errors.New("capability not implemented")
)

// InvalidInputError reports a caller-supplied argument that failed
// pre-flight validation. It never reaches the network.
type InvalidInputError struct {
	// Code is the Delivery Choice validation error code.
	Code int
	// Message is the documented message for the code.
	Message string
}

// NewInvalidInputError builds an InvalidInputError with the catalog message.
func NewInvalidInputError(code int) *InvalidInputError {
	return &InvalidInputError{Code: code, Message: CatalogMessage(code)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %d: %s", e.Code, e.Message)
}

// BusinessError reports an application-level failure the upstream embeds
// inside a successful HTTP response body.
type BusinessError struct {
	// Code is the upstream business-exception code.
	Code int
	// Message is the upstream description, or the catalog fallback.
	Message string
}

// NewBusinessError builds a BusinessError, falling back to the catalog
// message when the upstream description is empty.
func NewBusinessError(code int, message string) *BusinessError {
	if message == "" {
		message = CatalogMessage(code)
	}
	return &BusinessError{Code: code, Message: message}
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("auspost error %d: %s", e.Code, e.Message)
}

// TransportError reports a non-200 HTTP status from the upstream.
type TransportError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the reason phrase.
	Status string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("auspost http error %d: %s", e.StatusCode, e.Status)
}

// MalformedResponseError reports a response missing an expected JSON key.
type MalformedResponseError struct {
	// Path is the expected key path that was absent.
	Path string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: missing %s", e.Path)
}

// MalformedTimestampError reports an unparsable upstream timestamp.
type MalformedTimestampError struct {
	// Value is the raw timestamp text.
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp: %q", e.Value)
}
