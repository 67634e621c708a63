package language_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/modules/language"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// client drives the full middleware stack and keeps cookies between requests.
type client struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, mutate func(*switcher.Config)) *client {
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
	svc, err := switcher.New(&cfg, switcher.NewSessionStore(mgr, cfg.SessionKey))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	router := language.Router(svc, language.Options{Sessions: mgr})

	return &client{
		t:       t,
		handler: mgr.Middleware(svc.Middleware(router)),
		cookies: map[string]*http.Cookie{},
	}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	return c.do(req)
}

func (c *client) post(target, contentType, body string, header ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, target, r)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	return c.do(req)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
