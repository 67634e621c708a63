package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	hits int64
	ends time.Time
}

// MemoryStore keeps counters in process memory. Expired windows are dropped
// by a background sweep; call Close to stop it.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]window

	sweepEvery time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval changes how often expired windows are swept (default
// one minute).
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if d > 0 {
			s.sweepEvery = d
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:    make(map[string]window),
		sweepEvery: time.Minute,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Hit(_ context.Context, key string, length time.Duration) (int64, time.Duration, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.ends) {
		w = window{ends: now.Add(length)}
	}
	w.hits++
	s.windows[key] = w

	return w.hits, w.ends.Sub(now), nil
}

// Len counts tracked keys, including expired windows not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep() {
	t := time.NewTicker(s.sweepEvery)
	defer t.Stop()
	for {
		select {
		case now := <-t.C:
			s.mu.Lock()
			for key, w := range s.windows {
				if !now.Before(w.ends) {
					delete(s.windows, key)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
