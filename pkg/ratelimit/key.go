package ratelimit

import (
	"net/http"

	"github.com/dmitrymomot/langswitch/pkg/clientip"
)

// KeyFunc derives the counter key for a request. An empty key means the
// request could not be attributed to a client.
type KeyFunc func(*http.Request) string

// ByIP keys requests on the client address with the given prefix, so
// "language_switch_" yields "language_switch_203.0.113.5". Proxy headers
// count only when a clientip Resolver middleware trusts them.
func ByIP(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientip.FromRequest(r)
		if ip == "" {
			return ""
		}
		return prefix + ip
	}
}
