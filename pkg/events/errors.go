package events

import "errors"

var (
	ErrDispatcherClosed = errors.New("events: dispatcher closed")
	ErrNilListener      = errors.New("events: nil listener")
	ErrListenerPanic    = errors.New("events: listener panicked")
	ErrPoolCreation     = errors.New("events: failed to create worker pool")
)
