package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"chatmate-assistant/pkg/log"
)

// limiterTTL evicts idle per-client limiters.
const limiterTTL = 10 * time.Minute

// limiterCapacity bounds tracked clients.
const limiterCapacity = 4096

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMinute throttles each
// client; zero disables rate limiting.
func New(l log.Logger, requestsPerMinute int) Middleware {
	var limit rate.Limit
	burst := 0
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
		burst = requestsPerMinute
	}

	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterTTL),
		limit:    limit,
		burst:    burst,
	}
}
