package switcher

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/langswitch/pkg/session"
)

// SessionStore reads and writes the locale kept in the visitor's session.
type SessionStore interface {
	// Get returns the stored code; false when there is no session or no value.
	Get(r *http.Request) (string, bool)
	// Put stores code, creating a session when the visitor has none.
	Put(w http.ResponseWriter, r *http.Request, code string) error
}

type managerStore struct {
	mgr *session.Manager
	key string
}

// NewSessionStore keeps the locale under key in sessions handled by mgr.
// The session loaded by session middleware earlier in the request is reused.
func NewSessionStore(mgr *session.Manager, key string) SessionStore {
	if key == "" {
		key = "locale"
	}
	return &managerStore{mgr: mgr, key: key}
}

func (s *managerStore) Get(r *http.Request) (string, bool) {
	sess, err := s.mgr.Get(r.Context(), r)
	if err != nil {
		return "", false
	}
	return sess.GetString(s.key)
}

func (s *managerStore) Put(w http.ResponseWriter, r *http.Request, code string) error {
	if err := s.mgr.Set(r.Context(), w, r, s.key, code); err != nil {
		return errors.Join(ErrSessionWrite, err)
	}
	return nil
}
