package logger

import (
	"fmt"
	"io"
	"log/slog"
)

// Option adjusts New.
type Option func(*settings)

func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat panics on unknown formats so a typo fails at startup.
func WithFormat(f Format) Option {
	switch f {
	case FormatJSON, FormatText, FormatPretty:
	default:
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(s *settings) { s.format = f }
}

// WithOutput ignores nil writers.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

func WithNoColor() Option {
	return func(s *settings) { s.noColor = true }
}

// WithAttr attaches attrs to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithContextExtractors registers per-record context lookups, e.g. the chi
// request id. Nil entries are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) { s.extractors = append(s.extractors, extractors...) }
}

// Environment names understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// WithEnvironment applies a preset and tags records with env and service:
// production and staging log JSON at info, anything else logs pretty
// output at debug. "prod" and "stage" are accepted as aliases.
func WithEnvironment(env, service string) Option {
	level, format := slog.LevelDebug, FormatPretty
	switch env {
	case EnvProduction, "prod":
		env, level, format = EnvProduction, slog.LevelInfo, FormatJSON
	case EnvStaging, "stage":
		env, level, format = EnvStaging, slog.LevelInfo, FormatJSON
	default:
		env = EnvDevelopment
	}
	return func(s *settings) {
		s.level, s.format = level, format
		s.attrs = append(s.attrs, slog.String("env", env))
		if service != "" {
			s.attrs = append(s.attrs, slog.String("service", service))
		}
	}
}
