package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langswitch/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", logger.Locale("ja"))
		assert.Contains(t, buf.String(), "locale=ja")
	})

	t.Run("pretty format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatPretty),
			logger.WithNoColor(),
		)
		log.Info("hello", logger.Locale("vi"))
		out := buf.String()
		assert.Contains(t, out, "hello")
		assert.Contains(t, out, "locale=vi")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("level filter", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestContextExtractors(t *testing.T) {
	type key string
	k := key("id")

	t.Run("custom extractor", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(k).(string); ok {
					return slog.String("id", v), true
				}
				return slog.Attr{}, false
			}),
		)
		log.InfoContext(context.WithValue(context.Background(), k, "42"), "msg")
		assert.Equal(t, "42", decode(t, buf)["id"])
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "langswitch"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "langswitch", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "langswitch"), logger.WithOutput(buf), logger.WithNoColor())
		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
		assert.Contains(t, buf.String(), "service=langswitch")
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() { logger.WithFormat(logger.Format("xml")) })
}

func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Noop().Info("nothing") })
}

func TestConfigOptions(t *testing.T) {
	t.Run("overrides preset", func(t *testing.T) {
		opts, err := logger.Config{Level: "warn", Format: logger.FormatJSON}.Options()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(append([]logger.Option{logger.WithEnvironment("development", "langswitch"), logger.WithOutput(buf)}, opts...)...)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("empty config adds nothing", func(t *testing.T) {
		opts, err := logger.Config{}.Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := logger.Config{Level: "loud"}.Options()
		assert.Error(t, err)
		_, err = logger.Config{Format: "xml"}.Options()
		assert.Error(t, err)
	})
}
