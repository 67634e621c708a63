// Package session provides server-side sessions addressed by an opaque token.
//
// A Manager ties together a Store (where session records live) and a
// Transport (how the token travels between client and server). The package
// ships an in-memory store, a Redis store, and cookie / header transports.
//
// # Request scope
//
// Manager.Middleware installs a per-request session slot in the context. Any
// session loaded or created during the request is kept there, so two writes in
// the same request land in the same session instead of minting two.
//
//	manager := session.New(
//	    session.WithStore(session.NewRedisStore(redisClient)),
//	)
//	defer manager.Close()
//
//	mux.Handle("/", manager.Middleware(app))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    _ = manager.Set(r.Context(), w, r, "locale", "ja")
//	    v, _ := manager.GetValue(r.Context(), r, "locale")
//	}
//
// # Errors
//
//   - ErrSessionNotFound  no session associated with the request
//   - ErrSessionExpired   session has passed its expiry
//   - ErrInvalidSession   nil session or empty token passed to a store
//   - ErrStoreFailure     backend failure, joined with the cause
package session
