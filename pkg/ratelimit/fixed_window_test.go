package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
)

func newMemoryStore(t *testing.T) *ratelimit.MemoryStore {
	t.Helper()
	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(t)

	tests := []struct {
		name        string
		store       ratelimit.Store
		limit       int
		window      time.Duration
		expectError error
	}{
		{name: "nil store", limit: 10, window: time.Minute, expectError: ratelimit.ErrStoreRequired},
		{name: "zero limit", store: store, limit: 0, window: time.Minute, expectError: ratelimit.ErrInvalidLimit},
		{name: "negative window", store: store, limit: 10, window: -time.Second, expectError: ratelimit.ErrInvalidInterval},
		{name: "valid", store: store, limit: 10, window: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fw, err := ratelimit.NewFixedWindow(tt.store, tt.limit, tt.window)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, fw)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fw)
		})
	}
}

func TestFixedWindow_Allow(t *testing.T) {
	t.Parallel()

	fw, err := ratelimit.NewFixedWindow(newMemoryStore(t), 3, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := fw.Allow(ctx, "language_switch_203.0.113.5")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d", i)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
		assert.Zero(t, res.RetryAfter())
	}

	res, err := fw.Allow(ctx, "language_switch_203.0.113.5")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.InDelta(t, time.Minute.Seconds(), res.RetryAfter().Seconds(), 2)

	other, err := fw.Allow(ctx, "language_switch_198.51.100.1")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are counted independently")

	_, err = fw.Allow(ctx, "")
	assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
}

func TestFixedWindow_WindowExpiry(t *testing.T) {
	t.Parallel()

	fw, err := ratelimit.NewFixedWindow(newMemoryStore(t), 1, 50*time.Millisecond)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := fw.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = fw.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	time.Sleep(60 * time.Millisecond)

	res, err = fw.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestFixedWindow_Concurrent(t *testing.T) {
	t.Parallel()

	fw, err := ratelimit.NewFixedWindow(newMemoryStore(t), 10, time.Minute)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := fw.Allow(context.Background(), "shared")
			if err == nil && res.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("down")
}

func TestFixedWindow_StoreError(t *testing.T) {
	t.Parallel()

	fw, err := ratelimit.NewFixedWindow(failingStore{}, 1, time.Minute)
	require.NoError(t, err)

	_, err = fw.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	allowed := ratelimit.Result{Allowed: true, ResetAt: time.Now().Add(time.Minute)}
	assert.Zero(t, allowed.RetryAfter())

	denied := ratelimit.Result{ResetAt: time.Now().Add(5 * time.Second)}
	assert.InDelta(t, 5.0, denied.RetryAfter().Seconds(), 0.5)

	past := ratelimit.Result{ResetAt: time.Now().Add(-time.Second)}
	assert.Zero(t, past.RetryAfter())
}
