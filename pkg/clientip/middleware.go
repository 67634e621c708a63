package clientip

import "net/http"

// Middleware stores the client IP, resolved with GetIP, in the request context.
func Middleware(next http.Handler) http.Handler {
	return New().Middleware(next)
}

// Middleware stores the client IP resolved by this Resolver in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIP(r.Context(), res.IP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
