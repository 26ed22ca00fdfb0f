package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/address/domain"
)

// validationResponse mirrors the ValidateAddress envelope.
type validationResponse struct {
	Response *struct {
		ValidAustralianAddress *bool           `json:"ValidAustralianAddress"`
		Address                json.RawMessage `json:"Address"`
	} `json:"ValidateAustralianAddressResponse"`
}

// addressItem is the echoed address block.
type addressItem struct {
	DeliveryPointIdentifier *auspost.FlexString `json:"DeliveryPointIdentifier"`
	AddressLine             *string             `json:"AddressLine"`
	SuburbOrPlaceOrLocality *string             `json:"SuburbOrPlaceOrLocality"`
	StateOrTerritory        *string             `json:"StateOrTerritory"`
	PostCode                *auspost.FlexString `json:"PostCode"`
	Country                 *struct {
		CountryCode *string `json:"CountryCode"`
		CountryName *string `json:"CountryName"`
	} `json:"Country"`
}

// DecodeValidationResult decodes a ValidateAddress response body. An
// absent Address block yields a nil address regardless of the validity
// flag.
func DecodeValidationResult(body []byte) (*domain.ValidationResult, error) {
	var resp validationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse address validation response: %w", err)
	}

	if resp.Response == nil {
		return nil, &auspost.MalformedResponseError{Path: "ValidateAustralianAddressResponse"}
	}
	if resp.Response.ValidAustralianAddress == nil {
		return nil, &auspost.MalformedResponseError{Path: "ValidateAustralianAddressResponse.ValidAustralianAddress"}
	}

	result := &domain.ValidationResult{
		IsValid: *resp.Response.ValidAustralianAddress,
	}

	if len(resp.Response.Address) > 0 {
		address, err := decodeAddress(resp.Response.Address)
		if err != nil {
			return nil, err
		}
		result.Address = address
	}

	return result, nil
}

// decodeAddress decodes the echoed address block; every key is required.
func decodeAddress(raw json.RawMessage) (*domain.Address, error) {
	var item addressItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to parse address block: %w", err)
	}

	if item.DeliveryPointIdentifier == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.DeliveryPointIdentifier"}
	}
	if item.AddressLine == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.AddressLine"}
	}
	if item.SuburbOrPlaceOrLocality == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.SuburbOrPlaceOrLocality"}
	}
	if item.StateOrTerritory == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.StateOrTerritory"}
	}
	if item.PostCode == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.PostCode"}
	}
	if item.Country == nil || item.Country.CountryCode == nil || item.Country.CountryName == nil {
		return nil, &auspost.MalformedResponseError{Path: "Address.Country"}
	}

	return &domain.Address{
		ID:           item.DeliveryPointIdentifier.String(),
		AddressLine1: *item.AddressLine,
		Suburb:       *item.SuburbOrPlaceOrLocality,
		State:        *item.StateOrTerritory,
		Postcode:     item.PostCode.String(),
		Country: auspost.Country{
			Code: *item.Country.CountryCode,
			Name: *item.Country.CountryName,
		},
	}, nil
}
