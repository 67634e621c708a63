package switcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// memoryStore is a single-visitor SessionStore.
type memoryStore struct {
	mu     sync.Mutex
	code   string
	puts   int
	putErr error
}

func (m *memoryStore) Get(*http.Request) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.code != ""
}

func (m *memoryStore) Put(_ http.ResponseWriter, _ *http.Request, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.code = code
	m.puts++
	return nil
}

func (m *memoryStore) value() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.puts
}

func newService(t *testing.T, store switcher.SessionStore, mutate func(*switcher.Config), opts ...switcher.Option) *switcher.Service {
	t.Helper()
	cfg := switcher.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	svc, err := switcher.New(&cfg, store, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

// countChanges registers an inline listener and returns the received events.
func countChanges(t *testing.T, svc *switcher.Service) func() []switcher.LanguageChanged {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []switcher.LanguageChanged
	)
	require.NoError(t, svc.Events().Listen(func(_ context.Context, evt switcher.LanguageChanged) error {
		mu.Lock()
		seen = append(seen, evt)
		mu.Unlock()
		return nil
	}))
	return func() []switcher.LanguageChanged {
		mu.Lock()
		defer mu.Unlock()
		return append([]switcher.LanguageChanged(nil), seen...)
	}
}

// browser keeps cookies between requests sent through the session and
// switcher middleware.
type browser struct {
	t       *testing.T
	mgr     *session.Manager
	sess    *session.MemoryStore
	svc     *switcher.Service
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, mutate func(*switcher.Config), opts ...switcher.Option) *browser {
	t.Helper()
	store := session.NewMemoryStore(0)
	mgr := session.New(session.WithStore(store), session.WithCookieName("sid"))
	t.Cleanup(func() {
		_ = mgr.Close()
		_ = store.Close()
	})

	cfg := switcher.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	svc := newService(t, switcher.NewSessionStore(mgr, cfg.SessionKey), mutate, opts...)

	return &browser{t: t, mgr: mgr, sess: store, svc: svc, cookies: map[string]*http.Cookie{}}
}

func (b *browser) request(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	return req
}

func (b *browser) serve(req *http.Request, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	b.mgr.Middleware(b.svc.Middleware(h)).ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

// stored reads the locale kept in the browser's session.
func (b *browser) stored() (string, bool) {
	val, ok := b.mgr.GetValue(context.Background(), b.request(http.MethodGet, "/"), "locale")
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func noop(http.ResponseWriter, *http.Request) {}

type failingLimiter struct {
	calls atomic.Int32
}

func (f *failingLimiter) Allow(context.Context, string) (*ratelimit.Result, error) {
	f.calls.Add(1)
	return nil, errors.New("redis down")
}
