package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anshpaul/paymentApp-backend/pkg"
)

// AuthenticateToken guards mutating campaign routes with a static bearer
// token taken from API_ACCESS_TOKEN. When the variable is unset the
// middleware is a no-op so local development stays friction-free.
func AuthenticateToken() gin.HandlerFunc {
	token := os.Getenv("API_ACCESS_TOKEN")

	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.HTTPError{
				Code:    "UNAUTHORIZED",
				Message: "missing bearer token",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.HTTPError{
				Code:    "UNAUTHORIZED",
				Message: "invalid bearer token",
			})
			return
		}

		c.Next()
	}
}
