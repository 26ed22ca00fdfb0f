package adapter

import (
	"context"
	"net/url"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/core/logger"
	"github.com/snowball-one/auspost-apis/internal/features/address/domain"

	"go.uber.org/zap"
)

// defaultCountry is assumed when the caller leaves the country blank.
const defaultCountry = "Australia"

// AusPostAdapter implements the address validation provider against the
// Delivery Choice REST API.
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

// ValidateAddress submits an address for validation. Beyond required-field
// presence no pre-validation happens; the decoded result's IsValid flag
// carries the upstream verdict.
func (a *AusPostAdapter) ValidateAddress(ctx context.Context, line1, line2, suburb, state, postcode, country string) (*domain.ValidationResult, error) {
	if line1 == "" {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidAddressLine)
	}
	if suburb == "" {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidSuburb)
	}
	if state == "" {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidState)
	}
	if postcode == "" {
		return nil, auspost.NewInvalidInputError(auspost.CodeInvalidAddressPostcode)
	}
	if country == "" {
		country = defaultCountry
	}

	params := url.Values{}
	params.Set("addressLine1", line1)
	if line2 != "" {
		params.Set("addressLine2", line2)
	}
	params.Set("suburb", suburb)
	params.Set("state", state)
	params.Set("postcode", postcode)
	params.Set("country", country)

	body, err := a.client.Get(ctx, "ValidateAddress", params)
	if err != nil {
		return nil, err
	}

	result, err := DecodeValidationResult(body)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Decoded address validation result",
		zap.Bool("is_valid", result.IsValid),
		zap.Bool("has_address", result.Address != nil),
	)
	return result, nil
}
