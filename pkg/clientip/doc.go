// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are checked in order (CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For, X-Real-IP) and the first valid address wins; RemoteAddr is
// the fallback. Deployments exposed directly to clients should build a
// Resolver with WithHeaders() and no arguments so spoofed headers are ignored.
//
//	resolver := clientip.New(clientip.WithHeaders("X-Real-IP"))
//	handler := resolver.Middleware(mux)
//
//	func h(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.FromRequest(r)
//	}
//
// FromRequest without the middleware reads RemoteAddr only.
//
// The resolved address is used as the rate-limit key for language switches
// and recorded on change events. GetIP never fails; it returns "" when no
// valid address is found.
package clientip
