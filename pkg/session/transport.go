package session

import (
	"net/http"
	"time"
)

// Transport moves the opaque session token between server and client.
// Browsers use the cookie transport; API clients may send a header instead.
//
// GetToken returns ErrSessionNotFound when the request carries no token.
// A ttl of zero passed to SetToken means "until the client discards it".
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}
