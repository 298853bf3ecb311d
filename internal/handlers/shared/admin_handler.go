package handlers

import (
	"github.com/gin-gonic/gin"

	"towquote/internal/services"
	"towquote/internal/utils"
	"towquote/pkg/logger"
)

type AdminHandler struct {
	quoteService services.QuoteService
	logger       *logger.Logger
}

func NewAdminHandler(quoteService services.QuoteService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// RefreshPricing reloads pricing after an administrative edit
func (h *AdminHandler) RefreshPricing(c *gin.Context) {
	count, err := h.quoteService.RefreshPricing(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Pricing refresh failed")
		respondError(c, err, h.quoteService.CompanyPhone())
		return
	}

	utils.SuccessResponseWithMeta(c, utils.MsgPricingRefreshed, gin.H{"services": count}, &utils.Meta{Count: count})
}
