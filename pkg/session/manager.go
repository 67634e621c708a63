package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// Manager ties a Store to a Transport. Create one per process and Close it
// on shutdown so pending activity writes reach the store.
type Manager struct {
	store     Store
	transport Transport
	config    Config
	activity  *activityWriter
	owned     *MemoryStore
}

// New builds a Manager. Without options sessions live in memory and the
// token travels in a cookie (plus Config.TokenHeader when set).
func New(opts ...Option) *Manager {
	m := &Manager{config: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.owned = NewMemoryStore(m.config.CleanupInterval)
		m.store = m.owned
	}
	if m.transport == nil {
		m.transport = defaultTransport(m.config)
	}
	m.activity = newActivityWriter(m.store, m.config.ActivityUpdateThreshold, m.expiry)
	return m
}

func defaultTransport(cfg Config) Transport {
	cookie := NewCookieTransport(cfg.CookieName, WithSecureCookie(cfg.SecureCookies))
	if cfg.TokenHeader == "" {
		return cookie
	}
	return NewCompositeTransport(cookie, NewHeaderTransport(cfg.TokenHeader))
}

// Get returns the request's session without creating one. The session
// already loaded by Middleware is preferred over a store lookup.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	if s, ok := FromContext(ctx); ok && !s.IsExpired() {
		return s, nil
	}

	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	s, err := m.store.Get(ctx, token)
	switch {
	case err != nil:
		return nil, err
	case s.IsExpired():
		return nil, ErrSessionExpired
	}

	m.remember(ctx, s)
	return s, nil
}

// Ensure is Get, except that visitors without a usable session get a new
// anonymous one and its token is written to w. A stale or expired token is
// cleared first.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s, err := m.Get(ctx, r)
	if err == nil {
		m.activity.observe(s)
		return s, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		_ = m.transport.ClearToken(w)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	idle, maxAge := m.config.Timeouts(false)
	s = NewSession(token, nil, min(idle, maxAge))
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, token, maxAge); err != nil {
		_ = m.store.Delete(ctx, token)
		return nil, err
	}

	m.remember(ctx, s)
	return s, nil
}

// Set writes key into the session, creating one for first-time visitors.
func (m *Manager) Set(ctx context.Context, w http.ResponseWriter, r *http.Request, key string, value any) error {
	s, err := m.Ensure(ctx, w, r)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return m.store.Update(ctx, s)
}

// GetValue is Get followed by Session.Get; false when there is no session.
func (m *Manager) GetValue(ctx context.Context, r *http.Request, key string) (any, bool) {
	s, err := m.Get(ctx, r)
	if err != nil {
		return nil, false
	}
	return s.Get(key)
}

// Delete removes key. A missing session or key is not an error.
func (m *Manager) Delete(ctx context.Context, r *http.Request, key string) error {
	s, err := m.Get(ctx, r)
	if err != nil {
		return nil
	}
	if _, ok := s.Get(key); !ok {
		return nil
	}
	s.Delete(key)
	return m.store.Update(ctx, s)
}

// Pop reads key and removes it from the stored session.
func (m *Manager) Pop(ctx context.Context, r *http.Request, key string) (any, bool) {
	s, err := m.Get(ctx, r)
	if err != nil {
		return nil, false
	}
	v, ok := s.Pop(key)
	if ok {
		_ = m.store.Update(ctx, s)
	}
	return v, ok
}

// Destroy removes the session from the store and clears the client token.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if s, ok := FromContext(ctx); ok {
		_ = m.store.Delete(ctx, s.Token)
	}
	if token, err := m.transport.GetToken(r); err == nil {
		_ = m.store.Delete(ctx, token)
	}
	m.remember(ctx, nil)
	return m.transport.ClearToken(w)
}

// Close flushes activity writes and stops the default memory store, if any.
func (m *Manager) Close() error {
	m.activity.close()
	if m.owned != nil {
		return m.owned.Close()
	}
	return nil
}

// expiry is the idle deadline counted from at, capped by the session's
// absolute lifetime.
func (m *Manager) expiry(s *Session, at time.Time) time.Time {
	idle, maxAge := m.config.Timeouts(s.IsAuthenticated())
	deadline := s.CreatedAt.Add(maxAge)
	if next := at.Add(idle); next.Before(deadline) {
		return next
	}
	return deadline
}

func (m *Manager) remember(ctx context.Context, s *Session) {
	if h, ok := holderFromContext(ctx); ok {
		h.store(s)
	}
}

func generateToken() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}
