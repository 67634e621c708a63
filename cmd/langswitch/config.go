package main

import (
	"errors"
	"io/fs"

	"github.com/dmitrymomot/langswitch/pkg/config"
	"github.com/dmitrymomot/langswitch/pkg/httpserver"
	"github.com/dmitrymomot/langswitch/pkg/logger"
	"github.com/dmitrymomot/langswitch/pkg/redis"
	"github.com/dmitrymomot/langswitch/pkg/session"
	"github.com/dmitrymomot/langswitch/pkg/switcher"
)

// appConfig is the process level configuration. The switcher itself is
// configured separately so it can be overlaid from a YAML file.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Name       string `env:"APP_NAME" envDefault:"langswitch"`
	ConfigFile string `env:"LANGSWITCH_CONFIG_FILE"`

	// TrustedIPHeaders are consulted, in order, before RemoteAddr when
	// deriving the client address for rate limiting and event logs.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	Log     logger.Config
	HTTP    httpserver.Config
	Session session.Config
	Redis   redis.Config
}

// loadConfig reads .env (when present), the process environment and the
// optional switcher YAML file, then validates the switcher config.
func loadConfig() (appConfig, switcher.Config, error) {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return appConfig{}, switcher.Config{}, err
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return appConfig{}, switcher.Config{}, err
	}

	var cfg switcher.Config
	if err := config.LoadFile(app.ConfigFile, &cfg); err != nil {
		return appConfig{}, switcher.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return appConfig{}, switcher.Config{}, err
	}

	return app, cfg, nil
}
