package httpserver

import (
	"context"
	"log/slog"
	"time"
)

// Option adjusts a Server after Config has been applied.
type Option func(*Server)

// WithAddr overrides Config.Addr; "" keeps the configured address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.cfg.Addr = addr
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown, hooks included.
// Non-positive values are ignored.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.cfg.ShutdownTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithShutdownHook registers fn to run once the listener is closed. Hooks run
// in registration order and share the shutdown deadline.
func WithShutdownHook(fn func(context.Context) error) Option {
	if fn == nil {
		panic("httpserver: nil shutdown hook")
	}
	return func(s *Server) { s.hooks = append(s.hooks, fn) }
}
