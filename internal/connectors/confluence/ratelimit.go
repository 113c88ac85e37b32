package confluence

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// DefaultRequestsPerSecond is the proactive throttle rate.
	DefaultRequestsPerSecond = 10.0

	// DefaultBurst allows a short burst of parallel sibling fetches.
	DefaultBurst = 5
)

// RateLimiter throttles requests to the Confluence API.
// It only spaces requests out; it never retries.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter. A non-positive rate disables
// throttling.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	if requestsPerSecond <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), DefaultBurst),
	}
}

// Wait blocks until a request may be made.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured requests per second.
func (r *RateLimiter) Limit() float64 {
	return float64(r.limiter.Limit())
}
