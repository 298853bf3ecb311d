package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"towquote/internal/utils"
)

// AdminTokenRequired guards operator endpoints with a shared token. With no
// token configured the endpoints are switched off entirely.
func AdminTokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			utils.ErrorResponse(c, http.StatusNotFound, utils.CodeFeatureDisabled, "Admin endpoints are disabled")
			c.Abort()
			return
		}

		provided := c.GetHeader(utils.HeaderAdminToken)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
