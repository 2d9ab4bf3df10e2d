package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgResponse "chatmate-assistant/pkg/response"
)

// RateLimit throttles requests per client IP. LLM-backed endpoints are
// expensive, so each client gets a token bucket refilled at the
// configured per-minute rate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.burst == 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.limit, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "internal.middleware: rate limit hit for %s", key)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
