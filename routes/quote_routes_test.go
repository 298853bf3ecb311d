package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handlers "towquote/internal/handlers/shared"
	"towquote/internal/models"
	"towquote/internal/services/mocks"
	"towquote/internal/utils"
	"towquote/pkg/logger"
)

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewQuoteService(t)
	svc.On("ListServices", mock.Anything).Return([]*models.ServiceSummary{}, nil).Once()
	svc.On("CompanyPhone").Return("(555) 123-4567")
	svc.On("RefreshPricing", mock.Anything).Return(3, nil).Once()

	router := gin.New()
	v1 := router.Group("/api/v1")
	SetupQuoteRoutes(v1, handlers.NewQuoteHandler(svc, logger.Discard()))
	SetupAdminRoutes(v1, handlers.NewAdminHandler(svc, logger.Discard()), "s3cret")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pricing/services", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/pricing/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/pricing/refresh", nil)
	req.Header.Set(utils.HeaderAdminToken, "s3cret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	paths := map[string]bool{}
	for _, route := range router.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/pricing/company",
		"POST /api/v1/quotes",
		"POST /api/v1/quotes/by-address",
		"POST /api/v1/checkout",
	} {
		assert.True(t, paths[want], want)
	}
}
