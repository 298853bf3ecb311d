package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"towquote/internal/services"
)

type HealthHandler struct {
	quoteService services.QuoteService
	cacheService services.CacheService
	version      string
}

func NewHealthHandler(quoteService services.QuoteService, cacheService services.CacheService, version string) *HealthHandler {
	return &HealthHandler{
		quoteService: quoteService,
		cacheService: cacheService,
		version:      version,
	}
}

// Health stays 200 while pricing is down so the process is not restarted;
// the pricing field reports whether quotes can be served.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"

	pricing := "loaded"
	if !h.quoteService.PricingLoaded() {
		pricing = "unavailable"
		status = "degraded"
	}

	cache := "ok"
	if h.cacheService == nil {
		cache = "disabled"
	} else if err := h.cacheService.Ping(c.Request.Context()); err != nil {
		cache = "unreachable"
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"version": h.version,
		"pricing": pricing,
		"cache":   cache,
		"phone":   h.quoteService.CompanyPhone(),
	})
}
