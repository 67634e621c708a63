package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport carries the session token in a request/response header.
// API clients that do not keep cookies echo the header back on every call.
type HeaderTransport struct {
	name   string
	scheme string
}

// HeaderOption configures a HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderScheme expects and emits values as "<scheme> <token>",
// e.g. WithHeaderScheme("Bearer") for the Authorization header.
func WithHeaderScheme(scheme string) HeaderOption {
	return func(t *HeaderTransport) {
		t.scheme = strings.TrimSpace(scheme)
	}
}

// NewHeaderTransport creates a transport reading and writing the named header.
func NewHeaderTransport(name string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{name: http.CanonicalHeaderKey(name)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken reads the token from the request header. A configured scheme
// must be present (case-insensitive).
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(t.name))
	if t.scheme != "" {
		scheme, token, ok := strings.Cut(value, " ")
		if !ok || !strings.EqualFold(scheme, t.scheme) {
			return "", ErrSessionNotFound
		}
		value = strings.TrimSpace(token)
	}
	if value == "" {
		return "", ErrSessionNotFound
	}
	return value, nil
}

// SetToken exposes the token on the response. The TTL is not sent; the
// store decides when the token stops working.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, _ time.Duration) error {
	if t.scheme != "" {
		token = t.scheme + " " + token
	}
	w.Header().Set(t.name, token)
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.name)
	return nil
}
