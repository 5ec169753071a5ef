package generation

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between successive calls to a single
// backend, measured from the start of the previous call. Each provider owns
// exactly one Pacer; the state is process-wide rather than request-scoped so
// concurrent callers sharing a provider serialize against its shared quota.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer with the given minimum interval. A non-positive
// interval yields a pacer that never waits.
func NewPacer(minInterval time.Duration) *Pacer {
	if minInterval <= 0 {
		return &Pacer{}
	}
	// Burst of 1: the first call goes through immediately, every later call
	// waits out the remainder of the interval.
	return &Pacer{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Wait blocks until the minimum interval since the previous call has
// elapsed, or until ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
