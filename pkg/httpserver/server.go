package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// Server runs one http.Server until its context ends or the process is
// signalled, then shuts it down and runs the registered hooks.
type Server struct {
	cfg   Config
	log   *slog.Logger
	hooks []func(context.Context) error

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
	errs     error
}

func (s *Server) build(h http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}
	if h == nil {
		h = http.NotFoundHandler()
	}
	s.srv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      h,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}
	return s.srv, nil
}

// Run blocks serving h. It returns nil after a clean shutdown and an error
// wrapping ErrStart when the listener could not be opened or failed.
func (s *Server) Run(ctx context.Context, h http.Handler) error {
	srv, err := s.build(h)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			s.log.Error("graceful shutdown failed", logger.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("http server stopped")
	return nil
}

// Shutdown closes the listener, waits for in-flight requests and runs the
// hooks, all within Config.ShutdownTimeout. Later calls return the result
// of the first one.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()

		var errs []error
		if srv != nil {
			s.log.Info("http server shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		for _, hook := range s.hooks {
			if err := hook(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			s.errs = errors.Join(append([]error{ErrShutdown}, errs...)...)
		}
	})
	return s.errs
}
