package session

import "time"

// Config is read from SESSION_* variables. Anonymous and authenticated
// sessions have separate timeouts; langswitch itself only creates
// anonymous ones.
type Config struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"langswitch_session"`

	// Idle timeouts slide with activity. Max lifetimes are counted from
	// creation and never move.
	AnonIdleTimeout time.Duration `env:"SESSION_ANON_IDLE_TIMEOUT" envDefault:"2h"`
	AnonMaxLifetime time.Duration `env:"SESSION_ANON_MAX_LIFETIME" envDefault:"720h"`
	AuthIdleTimeout time.Duration `env:"SESSION_AUTH_IDLE_TIMEOUT" envDefault:"2h"`
	AuthMaxLifetime time.Duration `env:"SESSION_AUTH_MAX_LIFETIME" envDefault:"720h"`

	// ActivityUpdateThreshold throttles activity writes per session.
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`

	// CleanupInterval is the sweep period of the built-in memory store; 0 turns it off.
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// TokenHeader, when set, also accepts and returns the token in this header
	// so API clients without a cookie jar keep their session.
	TokenHeader string `env:"SESSION_TOKEN_HEADER"`

	RedisKeyPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	const month = 30 * 24 * time.Hour
	return Config{
		CookieName:              "langswitch_session",
		AnonIdleTimeout:         2 * time.Hour,
		AnonMaxLifetime:         month,
		AuthIdleTimeout:         2 * time.Hour,
		AuthMaxLifetime:         month,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         5 * time.Minute,
		RedisKeyPrefix:          "session:",
	}
}

// Timeouts picks the idle timeout and max lifetime for a session kind.
func (c Config) Timeouts(authenticated bool) (idle, maxAge time.Duration) {
	if authenticated {
		return c.AuthIdleTimeout, c.AuthMaxLifetime
	}
	return c.AnonIdleTimeout, c.AnonMaxLifetime
}

// NewFromConfig is New with cfg applied before opts.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
