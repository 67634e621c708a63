package locale

import (
	"context"
	"sync"
)

// localeContextKey is the key for storing the request locale in context
type localeContextKey struct{}

// state is the request-scoped locale holder. It is a pointer so that a handler
// further down the chain can change the locale seen by the rest of the request.
type state struct {
	mu   sync.RWMutex
	code string
}

// WithLocale installs a request-scoped locale in the context.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, &state{code: code})
}

// FromContext returns the request-scoped locale and whether one was installed.
func FromContext(ctx context.Context) (string, bool) {
	st, ok := ctx.Value(localeContextKey{}).(*state)
	if !ok {
		return "", false
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.code, st.code != ""
}

// GetLocale returns the locale from the context.
// If no locale is set, will return default locale - "en".
func GetLocale(ctx context.Context) string {
	if code, ok := FromContext(ctx); ok {
		return code
	}
	return DefaultLocale
}

// Override replaces the locale installed by WithLocale earlier in the request.
// It returns false when the context carries no locale holder.
func Override(ctx context.Context, code string) bool {
	st, ok := ctx.Value(localeContextKey{}).(*state)
	if !ok {
		return false
	}
	st.mu.Lock()
	st.code = code
	st.mu.Unlock()
	return true
}
