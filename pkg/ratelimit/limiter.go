package ratelimit

import (
	"context"
	"time"
)

// Result describes one counted attempt.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time // end of the current window
}

// RetryAfter is zero for allowed attempts and for windows that already ended.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Limiter counts an attempt for key and decides whether it may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Store holds per-key counters. Hit adds one to the counter for key, opening
// a window of the given length when none is running, and returns the new
// count together with the time left in the window.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}
