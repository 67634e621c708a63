package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// Listener handles one event. Returned errors are logged by the dispatcher and
// never reach the code that dispatched the event.
type Listener[T any] func(ctx context.Context, evt T) error

// Dispatcher fans typed events out to inline and queued listeners.
// Inline listeners run in the caller's goroutine in registration order.
// Queued listeners run on a bounded worker pool.
type Dispatcher[T any] struct {
	name   string
	log    *slog.Logger
	pool   *ants.Pool
	wg     sync.WaitGroup

	// mu guards the listener lists and closed; Dispatch holds it while
	// adding to wg so Close never waits on a counter that can still grow.
	mu     sync.RWMutex
	closed bool
	inline []Listener[T]
	queued []Listener[T]
}

type dispatcherOptions struct {
	logger      *slog.Logger
	workers     int
	nonblocking bool
}

// Option configures a Dispatcher.
type Option func(*dispatcherOptions)

// WithLogger sets the logger used for listener failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *dispatcherOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers caps the number of goroutines serving queued listeners (default 16).
func WithWorkers(n int) Option {
	return func(o *dispatcherOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithBlocking makes Dispatch wait for a free worker instead of dropping the
// queued call when the pool is saturated.
func WithBlocking() Option {
	return func(o *dispatcherOptions) {
		o.nonblocking = false
	}
}

// NewDispatcher creates a dispatcher. name identifies the event in logs.
func NewDispatcher[T any](name string, opts ...Option) (*Dispatcher[T], error) {
	o := &dispatcherOptions{
		logger:      logger.Noop(),
		workers:     16,
		nonblocking: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger.With(logger.Component("events"), slog.String("event", name))

	pool, err := ants.NewPool(o.workers,
		ants.WithNonblocking(o.nonblocking),
		ants.WithPanicHandler(func(p any) {
			log.Error("queued listener panicked", slog.Any("panic", p))
		}),
	)
	if err != nil {
		return nil, errors.Join(ErrPoolCreation, err)
	}

	return &Dispatcher[T]{
		name: name,
		log:  log,
		pool: pool,
	}, nil
}

// Listen registers a listener that runs synchronously during Dispatch.
func (d *Dispatcher[T]) Listen(l Listener[T]) error {
	if l == nil {
		return ErrNilListener
	}
	d.mu.Lock()
	d.inline = append(d.inline, l)
	d.mu.Unlock()
	return nil
}

// ListenQueued registers a listener that runs on the worker pool.
func (d *Dispatcher[T]) ListenQueued(l Listener[T]) error {
	if l == nil {
		return ErrNilListener
	}
	d.mu.Lock()
	d.queued = append(d.queued, l)
	d.mu.Unlock()
	return nil
}

// Dispatch delivers evt to every listener. It does not fail: listener errors,
// panics, and a saturated pool are logged.
func (d *Dispatcher[T]) Dispatch(ctx context.Context, evt T) {
	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		d.log.WarnContext(ctx, "dispatch after close", logger.Error(ErrDispatcherClosed))
		return
	}
	inline := d.inline
	queued := d.queued
	d.wg.Add(len(queued))
	d.mu.RUnlock()

	for _, l := range inline {
		if err := d.call(ctx, l, evt); err != nil {
			d.log.ErrorContext(ctx, "listener failed", logger.Error(err))
		}
	}

	if len(queued) == 0 {
		return
	}

	// queued listeners outlive the request
	bg := context.WithoutCancel(ctx)
	for _, l := range queued {
		err := d.pool.Submit(func() {
			defer d.wg.Done()
			if err := d.call(bg, l, evt); err != nil {
				d.log.ErrorContext(bg, "queued listener failed", logger.Error(err))
			}
		})
		if err != nil {
			d.wg.Done()
			d.log.ErrorContext(ctx, "queued listener dropped", logger.Error(err))
		}
	}
}

// Close waits for in-flight queued listeners and releases the pool.
func (d *Dispatcher[T]) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	d.pool.Release()
	return nil
}

func (d *Dispatcher[T]) call(ctx context.Context, l Listener[T], evt T) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, p)
		}
	}()
	return l(ctx, evt)
}
