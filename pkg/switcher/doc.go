// Package switcher detects, stores, and switches the UI locale of HTTP
// requests.
//
// A Service is built from an immutable Config and a SessionStore. Its
// Middleware resolves the locale of every request (session, query parameter,
// Accept-Language, in the order the detection method allows), falls back to
// the configured fallback language for unsupported codes, installs the result
// in the request context (see locale.GetLocale), and writes it back to the
// session when it changed.
//
// Switch changes the locale on behalf of the visitor. It validates the code,
// applies the optional per-client rate limit, persists the new locale, and
// publishes a LanguageChanged event:
//
//	cfg := switcher.DefaultConfig()
//	svc, err := switcher.New(&cfg, switcher.NewSessionStore(sessions, cfg.SessionKey),
//	    switcher.WithLogger(log),
//	    switcher.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//
//	router.Use(sessions.Middleware, svc.Middleware)
//
//	change, err := svc.Switch(w, r, "ja")
//	switch {
//	case errors.Is(err, switcher.ErrUnsupportedLocale):
//	    // 400
//	case errors.Is(err, switcher.ErrRateLimited):
//	    // 429
//	}
package switcher
