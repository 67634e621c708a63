package switcher

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/langswitch/pkg/clientip"
	"github.com/dmitrymomot/langswitch/pkg/locale"
	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// Change is the outcome of a successful switch.
type Change struct {
	Previous string
	New      string
}

// Switch makes code the visitor's locale. Unsupported codes fail with
// *UnsupportedLocaleError and rate limited clients with *RateLimitedError;
// in both cases neither the session nor the request locale is touched.
// Switching to the current locale succeeds with Previous == New.
func (s *Service) Switch(w http.ResponseWriter, r *http.Request, code string) (Change, error) {
	ctx := r.Context()

	if !s.registry.IsSupported(code) {
		s.metrics.switched(resultUnsupported)
		return Change{}, &UnsupportedLocaleError{Code: code, Supported: s.registry.SupportedCodes()}
	}

	if s.limiter != nil {
		key := s.keyFunc(r)
		if key == "" {
			key = RateLimitKeyPrefix + "unknown"
		}
		res, err := s.limiter.Allow(ctx, key)
		switch {
		case err != nil:
			// fail open when the counter backend is unavailable
			s.log.ErrorContext(ctx, "rate limit check failed", logger.Error(err))
		case !res.Allowed:
			s.metrics.switched(resultRateLimited)
			return Change{}, &RateLimitedError{Limit: res.Limit, RetryAfter: res.RetryAfter()}
		}
	}

	previous := s.Current(r)

	if err := s.store.Put(w, r, code); err != nil {
		s.metrics.switched(resultError)
		if !errors.Is(err, ErrSessionWrite) {
			err = errors.Join(ErrSessionWrite, err)
		}
		return Change{}, err
	}
	locale.Override(ctx, code)

	s.dispatcher.Dispatch(ctx, LanguageChanged{
		Previous:  previous,
		New:       code,
		User:      s.actor(r),
		IP:        clientip.FromRequest(r),
		UserAgent: r.UserAgent(),
		At:        time.Now(),
	})
	s.metrics.switched(resultOK)

	s.log.DebugContext(ctx, "language switched",
		slog.String("previous_language", previous),
		logger.Locale(code),
	)

	return Change{Previous: previous, New: code}, nil
}
