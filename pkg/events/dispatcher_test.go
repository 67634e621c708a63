package events_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/events"
)

type greeted struct {
	Name string
}

func newDispatcher(t *testing.T, opts ...events.Option) *events.Dispatcher[greeted] {
	t.Helper()
	d, err := events.NewDispatcher[greeted]("greeted", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestDispatcher_InlineOrder(t *testing.T) {
	d := newDispatcher(t)

	var order []string
	require.NoError(t, d.Listen(func(_ context.Context, e greeted) error {
		order = append(order, "first:"+e.Name)
		return nil
	}))
	require.NoError(t, d.Listen(func(_ context.Context, e greeted) error {
		order = append(order, "second:"+e.Name)
		return nil
	}))

	d.Dispatch(context.Background(), greeted{Name: "ann"})
	assert.Equal(t, []string{"first:ann", "second:ann"}, order)
}

func TestDispatcher_ErrorsAndPanicsDoNotStopOthers(t *testing.T) {
	d := newDispatcher(t)

	var calls atomic.Int32
	require.NoError(t, d.Listen(func(context.Context, greeted) error {
		calls.Add(1)
		return errors.New("boom")
	}))
	require.NoError(t, d.Listen(func(context.Context, greeted) error {
		calls.Add(1)
		panic("listener bug")
	}))
	require.NoError(t, d.Listen(func(context.Context, greeted) error {
		calls.Add(1)
		return nil
	}))

	assert.NotPanics(t, func() { d.Dispatch(context.Background(), greeted{}) })
	assert.Equal(t, int32(3), calls.Load())
}

func TestDispatcher_Queued(t *testing.T) {
	d, err := events.NewDispatcher[greeted]("greeted", events.WithWorkers(2), events.WithBlocking())
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen []string
	)
	require.NoError(t, d.ListenQueued(func(ctx context.Context, e greeted) error {
		time.Sleep(5 * time.Millisecond)
		assert.NoError(t, ctx.Err())
		mu.Lock()
		seen = append(seen, e.Name)
		mu.Unlock()
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	for _, n := range []string{"a", "b", "c"} {
		d.Dispatch(ctx, greeted{Name: n})
	}
	cancel()

	require.NoError(t, d.Close())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, seen)
}

func TestDispatcher_Close(t *testing.T) {
	d, err := events.NewDispatcher[greeted]("greeted")
	require.NoError(t, err)

	var calls atomic.Int32
	require.NoError(t, d.Listen(func(context.Context, greeted) error {
		calls.Add(1)
		return nil
	}))

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	d.Dispatch(context.Background(), greeted{})
	assert.Zero(t, calls.Load())
}

func TestDispatcher_NilListener(t *testing.T) {
	d := newDispatcher(t)
	assert.ErrorIs(t, d.Listen(nil), events.ErrNilListener)
	assert.ErrorIs(t, d.ListenQueued(nil), events.ErrNilListener)
}

func TestDispatcher_CloseWhileDispatching(t *testing.T) {
	d, err := events.NewDispatcher[greeted]("greeted", events.WithWorkers(4), events.WithBlocking())
	require.NoError(t, err)

	var handled atomic.Int32
	require.NoError(t, d.ListenQueued(func(context.Context, greeted) error {
		time.Sleep(time.Millisecond)
		handled.Add(1)
		return nil
	}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				d.Dispatch(context.Background(), greeted{Name: "x"})
			}
		}()
	}

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, d.Close())
	atClose := handled.Load()

	wg.Wait()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, atClose, handled.Load(), "no queued listener may run after Close returns")
}
