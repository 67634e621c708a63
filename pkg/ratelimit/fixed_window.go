package ratelimit

import (
	"context"
	"time"
)

// FixedWindow allows limit attempts per key per window. The window opens on
// the first attempt, so a burst right before it closes is followed by a
// fresh allowance.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	switch {
	case store == nil:
		return nil, ErrStoreRequired
	case limit <= 0:
		return nil, ErrInvalidLimit
	case window <= 0:
		return nil, ErrInvalidInterval
	}
	return &FixedWindow{store: store, limit: limit, window: window}, nil
}

func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, ttl, err := fw.store.Hit(ctx, key, fw.window)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = fw.window
	}

	return &Result{
		Allowed:   count <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-int(count)),
		ResetAt:   time.Now().Add(ttl),
	}, nil
}
