package session

import "net/http"

// Middleware gives each request a session slot and fills it with the
// visitor's session when there is one. Handlers further down use the
// Manager as usual; a session one of them creates is seen by the others.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithSession(r.Context(), nil)
		if s, err := m.Get(ctx, r); err == nil {
			m.activity.observe(s)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
