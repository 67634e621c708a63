package logger

import (
	"fmt"
	"log/slog"
)

// Config holds operator overrides read from the environment. Empty fields
// keep whatever the environment preset chose.
type Config struct {
	Level   string `env:"LOG_LEVEL"`  // debug, info, warn, error
	Format  Format `env:"LOG_FORMAT"` // json, text, pretty
	NoColor bool   `env:"NO_COLOR"`
}

// Options turns cfg into options to pass after WithEnvironment.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("logger: LOG_LEVEL: %w", err)
		}
		opts = append(opts, WithLevel(l))
	}
	switch c.Format {
	case "":
	case FormatJSON, FormatText, FormatPretty:
		opts = append(opts, WithFormat(c.Format))
	default:
		return nil, fmt.Errorf("logger: LOG_FORMAT: unknown format %q", c.Format)
	}
	if c.NoColor {
		opts = append(opts, WithNoColor())
	}
	return opts, nil
}
