package middleware

import (
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// RateLimiter is a fixed-window request limiter keyed by client address.
// State is in-memory and per-process, matching the rest of the portal.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateLimitEntry
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

// NewRateLimiter creates a rate limiter with the given window and cap
func NewRateLimiter(window time.Duration, maxRequests int) *RateLimiter {
	return &RateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

// Handler returns the gin middleware function
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := rl.allow(c.ClientIP())
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"error":      "Too many requests. Please try again later.",
				"retryAfter": retryAfter,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.entries[clientIP]
	if !ok || now.After(entry.resetTime) {
		rl.entries[clientIP] = &rateLimitEntry{requests: 1, resetTime: now.Add(rl.window)}
		return true, 0
	}

	if entry.requests >= rl.maxRequests {
		return false, int(math.Ceil(entry.resetTime.Sub(now).Seconds()))
	}

	entry.requests++
	return true, 0
}
