package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langswitch/pkg/clientip"
	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
)

func TestByIP(t *testing.T) {
	t.Parallel()

	keyFunc := ratelimit.ByIP("language_switch_")

	t.Run("remote address", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "203.0.113.5:4321"
		assert.Equal(t, "language_switch_203.0.113.5", keyFunc(req))
	})

	t.Run("address from context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(clientip.WithIP(req.Context(), "198.51.100.2"))
		assert.Equal(t, "language_switch_198.51.100.2", keyFunc(req))
	})

	t.Run("no address", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "unknown"
		assert.Empty(t, keyFunc(req))
	})
}
