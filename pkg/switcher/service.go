package switcher

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/langswitch/pkg/events"
	"github.com/dmitrymomot/langswitch/pkg/locale"
	"github.com/dmitrymomot/langswitch/pkg/logger"
	"github.com/dmitrymomot/langswitch/pkg/ratelimit"
)

// RateLimitKeyPrefix prefixes the client address in rate limit keys.
const RateLimitKeyPrefix = "language_switch_"

// Service resolves, stores, and switches the locale of incoming requests.
// It is safe for concurrent use.
type Service struct {
	cfg      *Config
	registry *locale.Registry
	detector *locale.Detector
	store    SessionStore
	exclude  *pathMatcher
	log      *slog.Logger
	metrics  *Metrics
	actor    ActorFunc

	limiter      ratelimit.Limiter
	limiterStore ratelimit.Store
	keyFunc      ratelimit.KeyFunc
	ownedStore   *ratelimit.MemoryStore

	dispatcher      *events.Dispatcher[LanguageChanged]
	ownedDispatcher bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegisterer registers the switcher counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.metrics = NewMetrics(reg)
	}
}

// WithMetrics uses an existing Metrics value.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithActorFunc overrides how the acting user is resolved for change events.
func WithActorFunc(fn ActorFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.actor = fn
		}
	}
}

// WithRateLimitStore sets the counter backend used when rate limiting is
// enabled. Defaults to an in-memory store owned by the Service.
func WithRateLimitStore(store ratelimit.Store) Option {
	return func(s *Service) {
		s.limiterStore = store
	}
}

// WithLimiter replaces the fixed window limiter built from the config.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

// WithRateLimitKey changes how the rate limit key is derived from a request.
func WithRateLimitKey(fn ratelimit.KeyFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.keyFunc = fn
		}
	}
}

// WithDispatcher publishes change events on d. The caller keeps ownership
// and closes it.
func WithDispatcher(d *events.Dispatcher[LanguageChanged]) Option {
	return func(s *Service) {
		s.dispatcher = d
	}
}

// New validates cfg and builds the service.
func New(cfg *Config, store SessionStore, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if store == nil {
		return nil, ErrNilSessionStore
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := cfg.Registry()
	s := &Service{
		cfg:      cfg,
		registry: reg,
		detector: locale.NewDetector(reg, cfg.AppLocale),
		store:    store,
		exclude:  newPathMatcher(cfg.Middleware.ExcludePaths),
		log:      logger.Noop(),
		actor:    SessionActor,
		keyFunc:  ratelimit.ByIP(RateLimitKeyPrefix),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	s.log = s.log.With(logger.Component("switcher"))

	if cfg.Security.RateLimiting.Enabled && s.limiter == nil {
		if s.limiterStore == nil {
			s.ownedStore = ratelimit.NewMemoryStore()
			s.limiterStore = s.ownedStore
		}
		fw, err := ratelimit.NewFixedWindow(s.limiterStore, cfg.Security.RateLimiting.MaxAttempts, cfg.Security.RateLimiting.Window())
		if err != nil {
			s.closeOwned()
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		s.limiter = fw
	}

	if s.dispatcher == nil {
		d, err := events.NewDispatcher[LanguageChanged](EventLanguageChanged, events.WithLogger(s.log))
		if err != nil {
			s.closeOwned()
			return nil, err
		}
		s.dispatcher = d
		s.ownedDispatcher = true
	}
	if err := s.dispatcher.ListenQueued(LogLanguageChange(s.log, cfg.Debug.LogLanguageChanges)); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *Service) Config() *Config            { return s.cfg }
func (s *Service) Registry() *locale.Registry { return s.registry }
func (s *Service) Detector() *locale.Detector { return s.detector }
func (s *Service) Metrics() *Metrics          { return s.metrics }

// RateLimited reports whether Switch attempts are counted.
func (s *Service) RateLimited() bool { return s.limiter != nil }

// Events returns the dispatcher change events are published on, for
// registering additional listeners.
func (s *Service) Events() *events.Dispatcher[LanguageChanged] {
	return s.dispatcher
}

// Close waits for queued listeners and releases resources the service created.
func (s *Service) Close() error {
	s.closeOwned()
	return nil
}

func (s *Service) closeOwned() {
	if s.ownedDispatcher && s.dispatcher != nil {
		_ = s.dispatcher.Close()
	}
	if s.ownedStore != nil {
		_ = s.ownedStore.Close()
	}
}
