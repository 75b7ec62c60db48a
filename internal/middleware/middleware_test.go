package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func corsRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORS([]string{"https://staging.example.com"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORSAllowsKnownOrigins(t *testing.T) {
	r := corsRouter()
	for _, origin := range []string{
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"https://pn8.ai",
		"https://www.pn8.ai",
		"https://app.pn8.ai",
		"https://staging.example.com",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", origin)
		r.ServeHTTP(w, req)

		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"), origin)
	}
}

func TestCORSIgnoresUnknownOrigins(t *testing.T) {
	r := corsRouter()
	for _, origin := range []string{
		"https://evil.example.com",
		"https://pn8.ai.evil.com",
		"http://pn8.ai",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", origin)
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://pn8.ai")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	r := gin.New()
	r.GET("/secure", RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(userIDKey, 42) })
	r.GET("/secure", RequireAuth(), func(c *gin.Context) {
		userID, ok := UserID(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRateLimiterEnforcesBurst(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(0.0001, 2))
	r.GET("/proxy", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
