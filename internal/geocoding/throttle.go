package geocoding

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Throttle spaces out calls that actually reach the external geocoding
// service. It is a token bucket with a burst of one: the first Wait returns
// immediately and every later Wait blocks until at least the configured
// interval has passed since the previous one. Listings that resolve without
// a geocode call never touch the throttle, so they incur no delay. The
// pipeline is strictly sequential, so a single limiter needs no extra
// synchronization.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle enforcing minInterval between consecutive
// geocode calls.
func NewThrottle(minInterval time.Duration) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Wait blocks until the next geocode call is allowed or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("throttle wait interrupted: %w", err)
	}

	return nil
}
