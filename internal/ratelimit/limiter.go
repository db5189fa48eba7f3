package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// MinRequestInterval is the spacing enforced between outbound requests to
// the target site. Anything tighter starts tripping its automated-traffic
// detection.
const MinRequestInterval = 1500 * time.Millisecond

// Limiter serializes all outbound requests behind a single token bucket
// with burst 1, so concurrent callers can never observe "enough time has
// passed" simultaneously. The underlying rate.Limiter guards its state
// with a mutex.
type Limiter struct {
	limiter *rate.Limiter
}

func New(interval time.Duration) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func NewWithDefaults() *Limiter {
	return New(MinRequestInterval)
}

// Wait blocks until the next request slot is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
