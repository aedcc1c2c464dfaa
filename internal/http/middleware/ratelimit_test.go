package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToCap(t *testing.T) {
	rl := NewRateLimiter(15*time.Second, 3)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.allow("10.0.0.1")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, retryAfter := rl.allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, 0, "blocked response must carry a retry hint")
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(15*time.Second, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	allowed, _ := rl.allow("10.0.0.1")
	require.True(t, allowed)
	allowed, _ = rl.allow("10.0.0.1")
	require.False(t, allowed)

	now = now.Add(16 * time.Second)

	allowed, _ = rl.allow("10.0.0.1")
	assert.True(t, allowed, "the window must reset after it elapses")
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := NewRateLimiter(15*time.Second, 1)

	allowed, _ := rl.allow("10.0.0.1")
	require.True(t, allowed)
	allowed, _ = rl.allow("10.0.0.1")
	require.False(t, allowed)

	allowed, _ = rl.allow("10.0.0.2")
	assert.True(t, allowed, "exhausting one client must not affect another")
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(15*time.Second, 2).Handler())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
	assert.Contains(t, w.Body.String(), "retryAfter")
}
