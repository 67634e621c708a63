package switcher_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/locale"
	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// switchInRequest runs Switch from inside the middleware chain and reports
// the locale visible to the handler afterwards.
func switchInRequest(b *browser, code string) (switcher.Change, string, error) {
	var (
		change switcher.Change
		err    error
		after  string
	)
	req := b.request(http.MethodPost, "/language-switcher/"+code)
	req.RemoteAddr = "203.0.113.7:5000"
	b.serve(req, func(w http.ResponseWriter, r *http.Request) {
		change, err = b.svc.Switch(w, r, code)
		after = locale.GetLocale(r.Context())
	})
	return change, after, err
}

func TestSwitch_Success(t *testing.T) {
	b := newBrowser(t, nil)
	changes := countChanges(t, b.svc)

	change, after, err := switchInRequest(b, "ja")
	require.NoError(t, err)

	assert.Equal(t, switcher.Change{Previous: "en", New: "ja"}, change)
	assert.Equal(t, "ja", after)

	stored, ok := b.stored()
	require.True(t, ok)
	assert.Equal(t, "ja", stored)

	got := changes()
	require.Len(t, got, 1)
	assert.Equal(t, "en", got[0].Previous)
	assert.Equal(t, "ja", got[0].New)
	assert.Equal(t, "203.0.113.7", got[0].IP)
	assert.Nil(t, got[0].User)
	assert.WithinDuration(t, time.Now(), got[0].At, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(b.svc.Metrics().Switches("ok")))
}

func TestSwitch_SameLocaleIsIdempotent(t *testing.T) {
	b := newBrowser(t, nil)
	changes := countChanges(t, b.svc)

	_, _, err := switchInRequest(b, "vi")
	require.NoError(t, err)

	change, after, err := switchInRequest(b, "vi")
	require.NoError(t, err)
	assert.Equal(t, switcher.Change{Previous: "vi", New: "vi"}, change)
	assert.Equal(t, "vi", after)
	assert.Len(t, changes(), 2)
}

func TestSwitch_Unsupported(t *testing.T) {
	b := newBrowser(t, nil)
	changes := countChanges(t, b.svc)

	_, _, err := switchInRequest(b, "ja")
	require.NoError(t, err)

	_, after, err := switchInRequest(b, "xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, switcher.ErrUnsupportedLocale)

	var unsupported *switcher.UnsupportedLocaleError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "xx", unsupported.Code)
	assert.Equal(t, []string{"en", "ja", "vi"}, unsupported.Supported)

	assert.Equal(t, "ja", after, "request locale unchanged")
	stored, _ := b.stored()
	assert.Equal(t, "ja", stored, "session unchanged")
	assert.Len(t, changes(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(b.svc.Metrics().Switches("unsupported")))
}

func TestSwitch_RateLimited(t *testing.T) {
	b := newBrowser(t, func(c *switcher.Config) {
		c.Security.RateLimiting.Enabled = true
		c.Security.RateLimiting.MaxAttempts = 2
	})
	require.True(t, b.svc.RateLimited())
	changes := countChanges(t, b.svc)

	_, _, err := switchInRequest(b, "xx")
	require.ErrorIs(t, err, switcher.ErrUnsupportedLocale, "validation runs before counting")

	_, _, err = switchInRequest(b, "ja")
	require.NoError(t, err)
	_, _, err = switchInRequest(b, "vi")
	require.NoError(t, err)

	_, after, err := switchInRequest(b, "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, switcher.ErrRateLimited)

	var limited *switcher.RateLimitedError
	require.True(t, errors.As(err, &limited))
	assert.Equal(t, 2, limited.Limit)
	assert.Greater(t, limited.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, limited.RetryAfter, time.Minute)

	assert.Equal(t, "vi", after)
	stored, _ := b.stored()
	assert.Equal(t, "vi", stored)
	assert.Len(t, changes(), 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(b.svc.Metrics().Switches("rate_limited")))
}

func TestSwitch_RateLimitKeyPerClient(t *testing.T) {
	counters := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = counters.Close() })

	svc := newService(t, &memoryStore{}, func(c *switcher.Config) {
		c.Security.RateLimiting.Enabled = true
		c.Security.RateLimiting.MaxAttempts = 1
	}, switcher.WithRateLimitStore(counters))

	attempt := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":40000"
		_, err := svc.Switch(httptest.NewRecorder(), req, "ja")
		return err
	}

	require.NoError(t, attempt("198.51.100.1"))
	require.ErrorIs(t, attempt("198.51.100.1"), switcher.ErrRateLimited)
	require.NoError(t, attempt("198.51.100.2"))

	assert.Equal(t, 2, counters.Len())
}

func TestSwitch_LimiterFailureFailsOpen(t *testing.T) {
	limiter := &failingLimiter{}
	store := &memoryStore{}
	svc := newService(t, store, func(c *switcher.Config) {
		c.Security.RateLimiting.Enabled = true
	}, switcher.WithLimiter(limiter))

	change, err := svc.Switch(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil), "vi")
	require.NoError(t, err)
	assert.Equal(t, "vi", change.New)
	assert.Equal(t, int32(1), limiter.calls.Load())
}

func TestSwitch_SessionWriteFailure(t *testing.T) {
	store := &memoryStore{code: "ja", putErr: errors.New("store down")}
	svc := newService(t, store, nil)
	changes := countChanges(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(locale.WithLocale(req.Context(), "ja"))

	_, err := svc.Switch(httptest.NewRecorder(), req, "vi")
	require.Error(t, err)
	assert.ErrorIs(t, err, switcher.ErrSessionWrite)
	assert.Equal(t, "ja", locale.GetLocale(req.Context()))
	assert.Empty(t, changes())
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Metrics().Switches("error")))
}

func TestSwitch_Actor(t *testing.T) {
	t.Run("authenticated session", func(t *testing.T) {
		svc := newService(t, &memoryStore{}, nil)
		changes := countChanges(t, svc)

		userID := uuid.New()
		sess := session.NewSession("token", &userID, time.Hour)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(session.WithSession(req.Context(), sess))

		_, err := svc.Switch(httptest.NewRecorder(), req, "ja")
		require.NoError(t, err)
		require.Len(t, changes(), 1)
		assert.Equal(t, &switcher.Actor{ID: userID.String()}, changes()[0].User)
	})

	t.Run("custom resolver", func(t *testing.T) {
		svc := newService(t, &memoryStore{}, nil, switcher.WithActorFunc(func(*http.Request) *switcher.Actor {
			return &switcher.Actor{ID: "42", Email: "ann@example.com"}
		}))
		changes := countChanges(t, svc)

		_, err := svc.Switch(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil), "ja")
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", changes()[0].User.Email)
	})
}
