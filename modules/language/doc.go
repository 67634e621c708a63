// Package language mounts the HTTP surface of the language switcher: the
// browser switch endpoint with flash messages, the switcher widget fragment
// and the JSON API under /api/languages.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID, sessions.Middleware, svc.Middleware)
//	r.Mount("/", language.Router(svc, language.Options{
//		Sessions: sessions,
//		Logger:   log,
//	}))
package language
