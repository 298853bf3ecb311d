package handlers

import (
	"github.com/gin-gonic/gin"

	"towquote/internal/models"
	"towquote/internal/services"
	"towquote/internal/utils"
	"towquote/internal/validators"
	"towquote/pkg/logger"
)

type QuoteHandler struct {
	quoteService services.QuoteService
	logger       *logger.Logger
}

func NewQuoteHandler(quoteService services.QuoteService, logger *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// ListServices returns the catalog shown in the booking widget
func (h *QuoteHandler) ListServices(c *gin.Context) {
	summaries, err := h.quoteService.ListServices(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, utils.MsgServicesListed, summaries, &utils.Meta{
		Count: len(summaries),
		Phone: h.quoteService.CompanyPhone(),
	})
}

func (h *QuoteHandler) GetCompany(c *gin.Context) {
	company, err := h.quoteService.Company(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, utils.MsgCompanyRetrieved, company)
}

// CreateQuote prices a service from known mileage
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var request models.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidRequest)
		return
	}

	if errs := validators.ValidateQuoteRequest(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	response, err := h.quoteService.Quote(c.Request.Context(), &request)
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.CreatedResponse(c, utils.MsgQuoteCreated, response)
}

// CreateAddressQuote prices a service from pickup and drop-off addresses
func (h *QuoteHandler) CreateAddressQuote(c *gin.Context) {
	var request models.AddressQuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidRequest)
		return
	}

	if errs := validators.ValidateAddressQuoteRequest(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	response, err := h.quoteService.QuoteByAddress(c.Request.Context(), &request)
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.CreatedResponse(c, utils.MsgQuoteCreated, response)
}

// Checkout turns a held quote into a hosted payment page
func (h *QuoteHandler) Checkout(c *gin.Context) {
	var request models.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidRequest)
		return
	}

	if errs := validators.ValidateCheckoutRequest(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	response, err := h.quoteService.Checkout(c.Request.Context(), &request)
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.CreatedResponse(c, utils.MsgCheckoutCreated, response)
}

func (h *QuoteHandler) fail(c *gin.Context, err error) {
	h.logger.WithContext(c.Request.Context()).WithError(err).
		WithField("endpoint", c.FullPath()).Warn("Quote request failed")
	respondError(c, err, h.quoteService.CompanyPhone())
}
