package session

import (
	"context"
	"sync"
	"time"
)

type touch struct {
	token     string
	at        time.Time
	expiresAt time.Time
}

// activityWriter records activity off the request path and slides the
// session's expiry with it. A session is touched at most once per
// threshold; when the queue is full the touch is dropped and a later
// request tries again.
type activityWriter struct {
	store     Store
	threshold time.Duration
	expiry    func(s *Session, at time.Time) time.Time
	queue     chan touch
	closing   chan struct{}
	finished  chan struct{}
	closeOnce sync.Once
}

func newActivityWriter(store Store, threshold time.Duration, expiry func(*Session, time.Time) time.Time) *activityWriter {
	a := &activityWriter{
		store:     store,
		threshold: threshold,
		expiry:    expiry,
		queue:     make(chan touch, 1024),
		closing:   make(chan struct{}),
		finished:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *activityWriter) observe(s *Session) {
	if time.Since(s.LastActivityAt) < a.threshold {
		return
	}
	now := time.Now()
	select {
	case a.queue <- touch{token: s.Token, at: now, expiresAt: a.expiry(s, now)}:
	default:
	}
}

func (a *activityWriter) write(ctx context.Context, t touch) {
	_ = a.store.UpdateActivity(ctx, t.token, t.at, t.expiresAt)
}

func (a *activityWriter) run() {
	defer close(a.finished)
	ctx := context.Background()
	for {
		select {
		case t := <-a.queue:
			a.write(ctx, t)
		case <-a.closing:
			for {
				select {
				case t := <-a.queue:
					a.write(ctx, t)
				default:
					return
				}
			}
		}
	}
}

// close flushes queued touches and waits for the writer to exit.
func (a *activityWriter) close() {
	a.closeOnce.Do(func() { close(a.closing) })
	<-a.finished
}
