package switcher_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

func newRequest(method, target string, header map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	return req
}

func httptestServe(svc *switcher.Service, target string, header map[string]string, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.Middleware(h).ServeHTTP(rec, newRequest(http.MethodGet, target, header))
	return rec
}

func trimSlash(s string) string {
	return strings.TrimLeft(s, "/")
}
