package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Format selects the record encoding.
type Format string

const (
	FormatJSON   Format = "json"   // one JSON object per line
	FormatText   Format = "text"   // logfmt key=value
	FormatPretty Format = "pretty" // coloured tint output for terminals
)

type settings struct {
	level      slog.Level
	format     Format
	out        io.Writer
	noColor    bool
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// New builds a logger writing JSON at info level to stdout unless options
// say otherwise.
func New(opts ...Option) *slog.Logger {
	s := &settings{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}

	h := s.handler()
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(withContext(h, s.extractors))
}

func (s *settings) handler() slog.Handler {
	switch s.format {
	case FormatPretty:
		return tint.NewHandler(s.out, &tint.Options{
			Level:      s.level,
			TimeFormat: time.Kitchen,
			NoColor:    s.noColor,
		})
	case FormatText:
		return slog.NewTextHandler(s.out, &slog.HandlerOptions{Level: s.level})
	default:
		return slog.NewJSONHandler(s.out, &slog.HandlerOptions{Level: s.level})
	}
}

// Noop discards everything. Components with an optional logger default to it.
func Noop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
