package session

import (
	"context"
	"sync"
)

type sessionContextKey struct{}

// holder is the request-scoped slot the Manager reads from and writes to, so a
// session created halfway through a request is visible to the rest of it.
type holder struct {
	mu      sync.RWMutex
	session *Session
}

func (h *holder) load() *Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *holder) store(s *Session) {
	h.mu.Lock()
	h.session = s
	h.mu.Unlock()
}

func holderFromContext(ctx context.Context) (*holder, bool) {
	h, ok := ctx.Value(sessionContextKey{}).(*holder)
	return h, ok
}

// WithSession adds a session to the context.
// If the context already carries a session slot, the slot is reused.
func WithSession(ctx context.Context, session *Session) context.Context {
	if h, ok := holderFromContext(ctx); ok {
		h.store(session)
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey{}, &holder{session: session})
}

// FromContext retrieves a session from the context
func FromContext(ctx context.Context) (*Session, bool) {
	h, ok := holderFromContext(ctx)
	if !ok {
		return nil, false
	}
	s := h.load()
	return s, s != nil
}

// UserIDFromContext retrieves the user ID from the session in context
func UserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := FromContext(ctx)
	if !ok || !session.IsAuthenticated() {
		return "", false
	}
	return session.UserID.String(), true
}
