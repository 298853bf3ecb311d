package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"towquote/internal/pricing"
	"towquote/internal/repositories/interfaces"
	"towquote/internal/services"
	"towquote/internal/utils"
	"towquote/pkg/maps"
)

// respondError maps service errors onto the API envelope. Anything a
// customer can resolve by phoning in carries the support number.
func respondError(c *gin.Context, err error, phone string) {
	var cfgErr *pricing.ConfigurationError
	var svcErr *pricing.UnknownServiceError

	switch {
	case errors.As(err, &cfgErr):
		utils.CallUsResponse(c, http.StatusServiceUnavailable, utils.CodePricingUnavailable, cfgErr.UserMessage(), cfgErr.Phone)
	case errors.As(err, &svcErr):
		utils.CallUsResponse(c, http.StatusNotFound, utils.CodeUnknownService, svcErr.UserMessage(), svcErr.Phone)
	case errors.Is(err, interfaces.ErrQuoteHoldNotFound):
		utils.NotFoundResponse(c, utils.CodeQuoteNotFound, utils.ErrQuoteNotFound)
	case errors.Is(err, maps.ErrAddressNotFound), errors.Is(err, maps.ErrNoRoute):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, utils.CodeAddressNotFound, "We couldn't find a driving route for those addresses.")
	case errors.Is(err, services.ErrDropoffRequired):
		utils.ValidationErrorResponse(c, map[string]string{"dropoff": err.Error()})
	case errors.Is(err, services.ErrNothingToPay):
		utils.CallUsResponse(c, http.StatusConflict, utils.CodeCallForPricing, "This service is priced over the phone.", phone)
	case errors.Is(err, services.ErrAddressQuotesDisabled), errors.Is(err, services.ErrCheckoutDisabled):
		utils.CallUsResponse(c, http.StatusServiceUnavailable, utils.CodeFeatureDisabled, err.Error(), phone)
	case errors.Is(err, services.ErrPaymentFailed):
		utils.CallUsResponse(c, http.StatusBadGateway, utils.CodePaymentFailed, services.ErrPaymentFailed.Error(), phone)
	default:
		utils.InternalServerErrorResponse(c)
	}
}
