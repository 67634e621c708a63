package httpserver

import (
	"time"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

// Config is the env-driven part of the server setup. Zero fields fall back
// to DefaultConfig.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     2 * time.Minute,
		ShutdownTimeout: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	c.ReadTimeout = positive(c.ReadTimeout, def.ReadTimeout)
	c.WriteTimeout = positive(c.WriteTimeout, def.WriteTimeout)
	c.IdleTimeout = positive(c.IdleTimeout, def.IdleTimeout)
	c.ShutdownTimeout = positive(c.ShutdownTimeout, def.ShutdownTimeout)
	return c
}

func positive(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// NewFromConfig builds a Server from cfg; opts are applied afterwards and
// win over it.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg.withDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Noop()
	}
	return s
}

// New is NewFromConfig with DefaultConfig.
func New(opts ...Option) *Server {
	return NewFromConfig(DefaultConfig(), opts...)
}
