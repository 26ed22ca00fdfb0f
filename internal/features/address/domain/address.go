package domain

import "github.com/snowball-one/auspost-apis/internal/core/auspost"

// Address is a delivery-point address echoed back by the validator.
type Address struct {
	// ID is the delivery point identifier.
	ID string `json:"id"`
	// AddressLine1 is the street address.
	AddressLine1 string `json:"address_line1"`
	// Suburb is the suburb, place or locality.
	Suburb string `json:"suburb"`
	// State is the state or territory.
	State string `json:"state"`
	// Postcode is the postcode.
	Postcode string `json:"postcode"`
	// Country is the country of the address.
	Country auspost.Country `json:"country"`
}

// ValidationResult is the outcome of validating an Australian address.
// The upstream may report a valid address without echoing it back, so
// Address can be absent regardless of the flag.
type ValidationResult struct {
	// IsValid reports whether the upstream accepted the address.
	IsValid bool `json:"is_valid"`
	// Address is the normalized address, when the upstream echoed one.
	Address *Address `json:"address,omitempty"`
}
