package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/akio-byte/aki-eduro/internal/shared/server/respond"
)

// RateLimiter holds one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewRateLimiter constructs a per-IP limiter. A non-positive rps disables it.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

// Allow reports whether a request from key may proceed.
func (l *RateLimiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	return l.limiterFor(key).Allow()
}

// RateLimit rejects clients that exceed the configured request rate.
// A nil limiter turns the middleware into a pass-through.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.ClientIP())
		if limiter.Allow(key) {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many requests")
	}
}
