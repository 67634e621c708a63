package switcher

import (
	"net/http"

	"github.com/dmitrymomot/langswitch/pkg/locale"
	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// Middleware resolves the request locale, installs it in the request context,
// and persists it to the session when it changed. It never rejects a request.
// Excluded paths pass through untouched.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.exclude.match(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		stored, _ := s.store.Get(r)
		det := s.detector.Resolve(s.candidates(r, stored), s.cfg.DetectionMethod)
		s.metrics.detection(det.Source)

		r = r.WithContext(locale.WithLocale(r.Context(), det.Locale))
		w.Header().Set("Content-Language", det.Locale)

		if s.cfg.Middleware.StoreInSession && det.Locale != stored {
			if err := s.store.Put(w, r, det.Locale); err != nil {
				s.log.WarnContext(r.Context(), "failed to persist locale",
					logger.Locale(det.Locale),
					logger.Source(string(det.Source)),
					logger.Error(err),
				)
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) candidates(r *http.Request, stored string) locale.Candidates {
	return locale.Candidates{
		Session: stored,
		Query:   r.URL.Query().Get(s.cfg.URLParameter),
		Header:  r.Header.Get("Accept-Language"),
	}
}

// Current returns the locale of the request: the one installed by Middleware,
// or a fresh resolution for handlers mounted outside it.
func (s *Service) Current(r *http.Request) string {
	if code, ok := locale.FromContext(r.Context()); ok {
		return code
	}
	stored, _ := s.store.Get(r)
	return s.detector.Resolve(s.candidates(r, stored), s.cfg.DetectionMethod).Locale
}
