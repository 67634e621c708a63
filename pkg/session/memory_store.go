package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It is the default store and
// is fine for a single instance; use RedisStore when running several.
// Records are cloned on write and on read.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Session

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore returns an empty store. When sweepEvery is positive a
// goroutine drops expired records on that interval until Close is called.
func NewMemoryStore(sweepEvery time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]*Session),
		stop:  make(chan struct{}),
	}
	if sweepEvery > 0 {
		go s.sweep(sweepEvery)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	s.items[sess.Token] = sess.clone()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[token]
	switch {
	case !ok:
		return nil, ErrSessionNotFound
	case sess.IsExpired():
		delete(s.items, token)
		return nil, ErrSessionExpired
	}
	return sess.clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[sess.Token]; !ok {
		return ErrSessionNotFound
	}
	s.items[sess.Token] = sess.clone()
	return nil
}

func (s *MemoryStore) UpdateActivity(_ context.Context, token string, at, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[token]
	if !ok {
		return ErrSessionNotFound
	}
	sess.LastActivityAt = at
	sess.ExpiresAt = expiresAt
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.items, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteExpired(context.Context) error {
	now := time.Now()
	s.mu.Lock()
	for token, sess := range s.items {
		if now.After(sess.ExpiresAt) {
			delete(s.items, token)
		}
	}
	s.mu.Unlock()
	return nil
}

// Len reports how many records are held, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close stops the sweeper. It may be called more than once.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			_ = s.DeleteExpired(context.Background())
		case <-s.stop:
			return
		}
	}
}
