package routes

import (
	"github.com/gin-gonic/gin"

	handlers "towquote/internal/handlers/shared"
	"towquote/internal/middleware"
)

// SetupQuoteRoutes sets up the public pricing and booking endpoints
func SetupQuoteRoutes(r *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	pricing := r.Group("/pricing")
	{
		pricing.GET("/services", quoteHandler.ListServices)
		pricing.GET("/company", quoteHandler.GetCompany)
	}

	quotes := r.Group("/quotes")
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/by-address", quoteHandler.CreateAddressQuote)
	}

	r.POST("/checkout", quoteHandler.Checkout)
}

// SetupAdminRoutes sets up operator endpoints behind the admin token
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, adminToken string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AdminTokenRequired(adminToken))
	{
		admin.POST("/pricing/refresh", adminHandler.RefreshPricing)
	}
}
