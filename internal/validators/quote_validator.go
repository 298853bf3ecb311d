package validators

import (
	"strings"

	"towquote/internal/models"
)

func ValidateQuoteRequest(req *models.QuoteRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateAddressQuoteRequest(req *models.AddressQuoteRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Dropoff != "" && strings.EqualFold(strings.TrimSpace(req.Pickup), strings.TrimSpace(req.Dropoff)) {
		errors = append(errors, ValidationError{
			Field:   "dropoff",
			Tag:     "nefield",
			Value:   req.Dropoff,
			Message: ErrSameAddress.Error(),
		})
	}

	return errors
}

func ValidateCheckoutRequest(req *models.CheckoutRequest) ValidationErrors {
	return ValidateStruct(req)
}
