package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promptn8/promptn8-server/internal/services/auth"
)

const userIDKey = "userID"

// BearerAuth resolves the Authorization header to a user id when a
// valid session token is presented. It never rejects; handlers that
// need a user call RequireAuth.
func BearerAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, ok := svc.Authenticate(token); ok {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when BearerAuth did not resolve a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userIDKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"message": "Authentication required",
					"code":    "UNAUTHORIZED",
				},
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or false when the request
// is anonymous.
func UserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
