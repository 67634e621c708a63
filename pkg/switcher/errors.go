package switcher

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnsupportedLocale = errors.New("switcher: unsupported locale")
	ErrRateLimited       = errors.New("switcher: too many language switch attempts")
	ErrInvalidConfig     = errors.New("switcher: invalid config")
	ErrSessionWrite      = errors.New("switcher: failed to store locale in session")
	ErrNilConfig         = errors.New("switcher: config is required")
	ErrNilSessionStore   = errors.New("switcher: session store is required")
)

// UnsupportedLocaleError is returned by Switch for codes outside the registry.
type UnsupportedLocaleError struct {
	Code      string
	Supported []string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("language %q is not supported", e.Code)
}

func (e *UnsupportedLocaleError) Is(target error) bool {
	return target == ErrUnsupportedLocale
}

// RateLimitedError is returned by Switch when the client exhausted its attempts.
type RateLimitedError struct {
	Limit      int
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many language switch attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}
