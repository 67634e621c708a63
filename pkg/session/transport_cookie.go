package session

import (
	"net/http"
	"time"
)

// CookieTransport carries the session token in an HttpOnly cookie.
// The token is an opaque random value that only means something to the store,
// so the cookie itself is not signed or encrypted.
type CookieTransport struct {
	name   string
	path   string
	domain string
	secure bool
}

// CookieOption configures a CookieTransport.
type CookieOption func(*CookieTransport)

// WithCookiePath sets the cookie path (default "/").
func WithCookiePath(path string) CookieOption {
	return func(t *CookieTransport) {
		if path != "" {
			t.path = path
		}
	}
}

// WithCookieDomain scopes the cookie to a domain.
func WithCookieDomain(domain string) CookieOption {
	return func(t *CookieTransport) {
		t.domain = domain
	}
}

// WithSecureCookie sets the Secure flag (recommended for production).
func WithSecureCookie(secure bool) CookieOption {
	return func(t *CookieTransport) {
		t.secure = secure
	}
}

// NewCookieTransport creates a new cookie-based transport
func NewCookieTransport(name string, opts ...CookieOption) *CookieTransport {
	t := &CookieTransport{
		name: name,
		path: "/",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken extracts the session token from the cookie
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrSessionNotFound
	}
	return c.Value, nil
}

// SetToken stores the session token in a cookie
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     t.path,
		Domain:   t.domain,
		MaxAge:   int(ttl.Seconds()),
		Secure:   t.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode, // CSRF protection
	})
	return nil
}

// ClearToken removes the session cookie
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     t.path,
		Domain:   t.domain,
		MaxAge:   -1,
		Secure:   t.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
