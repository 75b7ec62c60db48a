package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// allowedOrigins is the built-in CORS allowlist: local development plus
// the production domains.
var allowedOrigins = []*regexp.Regexp{
	regexp.MustCompile(`^http://localhost(:\d+)?$`),
	regexp.MustCompile(`^http://127\.0\.0\.1(:\d+)?$`),
	regexp.MustCompile(`^https://pn8\.ai$`),
	regexp.MustCompile(`^https://www\.pn8\.ai$`),
	regexp.MustCompile(`^https://[a-z0-9-]+\.pn8\.ai$`),
}

// CORS validates the Origin header against the allowlist and reflects
// allowed origins. extraOrigins are matched literally.
func CORS(extraOrigins []string) gin.HandlerFunc {
	extra := make(map[string]bool, len(extraOrigins))
	for _, o := range extraOrigins {
		extra[o] = true
	}

	allowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		if extra[origin] {
			return true
		}
		for _, re := range allowedOrigins {
			if re.MatchString(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Max-Age", "86400")
			h.Set("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
