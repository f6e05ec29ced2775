package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilis-app/carsrent-api/internal/config"
)

// AdminMiddleware guards the back-office routes with a shared token,
// accepted as a header or query parameter.
func AdminMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-admin-token")
		if token == "" {
			token = c.Query("admin_token")
		}

		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin_token_required"})
			return
		}

		c.Next()
	}
}
