package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langswitch/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.0.2.1:1234",
			expected:   "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1",
			expected:   "192.0.2.1",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:80",
			expected:   "203.0.113.5",
		},
		{
			name:       "first valid forwarded address",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.7, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			expected:   "198.51.100.7",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "198.51.100.9"},
			remoteAddr: "10.0.0.1:80",
			expected:   "198.51.100.9",
		},
		{
			name:       "ipv6 is normalized",
			remoteAddr: "[2001:0db8:0000:0000:0000:0000:0000:0001]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "nothing valid",
			remoteAddr: "bogus",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, clientip.GetIP(r))
		})
	}
}

func TestResolver_WithHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5000"
	r.Header.Set("X-Forwarded-For", "198.51.100.1")

	direct := clientip.New(clientip.WithHeaders())
	assert.Equal(t, "192.0.2.10", direct.IP(r), "headers are ignored without trusted proxies")

	proxied := clientip.New(clientip.WithHeaders("X-Forwarded-For"))
	assert.Equal(t, "198.51.100.1", proxied.IP(r))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var fromCtx, fromReq string
	handler := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = clientip.IPFromContext(r.Context())
		fromReq = clientip.FromRequest(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "203.0.113.77")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.77", fromCtx)
	assert.Equal(t, "203.0.113.77", fromReq)
}

func TestFromRequest_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.33:1"
	r.Header.Set("X-Forwarded-For", "198.51.100.9")
	r.Header.Set("CF-Connecting-IP", "198.51.100.10")
	assert.Equal(t, "192.0.2.33", clientip.FromRequest(r), "proxy headers need a configured resolver")
}

func TestFromRequest_DirectResolverIgnoresHeaders(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.New(clientip.WithHeaders()).Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromRequest(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "not-an-address"
	r.Header.Set("X-Forwarded-For", "198.51.100.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Empty(t, got)
}
