package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apollo-Deploy/g11n/pkg/logger"
)

type ctxKey string

// decodeLine parses a single JSON log line into a map.
func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	return rec
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("bundle loaded", slog.String("locale", "fr"))

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "bundle loaded", rec["msg"])
		assert.Equal(t, "fr", rec["locale"])
	})

	t.Run("filters below the configured level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		rec := decodeLine(t, buf.String())
		assert.Equal(t, "kept", rec["msg"])
	})

	t.Run("debug level enables debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("verbose")

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "DEBUG", rec["level"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithText())
		log.Info("hello", slog.String("locale", "de"))

		out := buf.String()
		assert.Contains(t, out, "msg=hello")
		assert.Contains(t, out, "locale=de")
	})

	t.Run("static attributes appear on every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttrs(slog.String("service", "storefront")),
		)

		log.Info("first")
		log.Info("second")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			rec := decodeLine(t, line)
			assert.Equal(t, "storefront", rec["service"])
		}
	})

	t.Run("extractor injects context values", func(t *testing.T) {
		t.Parallel()

		key := ctxKey("locale")
		extract := func(ctx context.Context) (slog.Attr, bool) {
			if loc, ok := ctx.Value(key).(string); ok && loc != "" {
				return slog.String("locale", loc), true
			}
			return slog.Attr{}, false
		}

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(extract))

		ctx := context.WithValue(context.Background(), key, "pl")
		log.InfoContext(ctx, "missing translation", slog.String("key", "nav.home"))

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "pl", rec["locale"])
		assert.Equal(t, "nav.home", rec["key"])
	})

	t.Run("extractor returning false is skipped", func(t *testing.T) {
		t.Parallel()

		extract := func(ctx context.Context) (slog.Attr, bool) {
			return slog.Attr{}, false
		}

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(extract))
		log.InfoContext(context.Background(), "plain")

		rec := decodeLine(t, buf.String())
		_, present := rec["locale"]
		assert.False(t, present)
	})

	t.Run("nil extractor is dropped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(nil))

		require.NotPanics(t, func() {
			log.InfoContext(context.Background(), "still works")
		})
		rec := decodeLine(t, buf.String())
		assert.Equal(t, "still works", rec["msg"])
	})

	t.Run("nil output keeps stdout fallback intact", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			logger.New(logger.WithOutput(nil))
		})
	})
}

func TestNewContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("extraction survives With", func(t *testing.T) {
		t.Parallel()

		key := ctxKey("request_id")
		extract := func(ctx context.Context) (slog.Attr, bool) {
			if id, ok := ctx.Value(key).(string); ok {
				return slog.String("request_id", id), true
			}
			return slog.Attr{}, false
		}

		var buf bytes.Buffer
		inner := slog.NewJSONHandler(&buf, nil)
		log := slog.New(logger.NewContextHandler(inner, extract))

		ctx := context.WithValue(context.Background(), key, "abc-123")
		log.With(slog.String("component", "cache")).
			InfoContext(ctx, "preload finished", slog.Int("namespaces", 3))

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "abc-123", rec["request_id"])
		assert.Equal(t, "cache", rec["component"])
		assert.EqualValues(t, 3, rec["namespaces"])
	})

	t.Run("extracted attributes follow the open group", func(t *testing.T) {
		t.Parallel()

		key := ctxKey("request_id")
		extract := func(ctx context.Context) (slog.Attr, bool) {
			if id, ok := ctx.Value(key).(string); ok {
				return slog.String("request_id", id), true
			}
			return slog.Attr{}, false
		}

		var buf bytes.Buffer
		inner := slog.NewJSONHandler(&buf, nil)
		log := slog.New(logger.NewContextHandler(inner, extract))

		ctx := context.WithValue(context.Background(), key, "abc-123")
		log.WithGroup("detail").InfoContext(ctx, "preload finished", slog.Int("namespaces", 3))

		// Extraction happens at Handle time, so the attribute is qualified
		// by the handler's open groups like any other record attribute.
		rec := decodeLine(t, buf.String())
		detail, ok := rec["detail"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "abc-123", detail["request_id"])
		assert.EqualValues(t, 3, detail["namespaces"])
	})

	t.Run("multiple extractors all apply", func(t *testing.T) {
		t.Parallel()

		first := func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("a", "1"), true
		}
		second := func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("b", "2"), true
		}

		var buf bytes.Buffer
		log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), first, second))
		log.InfoContext(context.Background(), "both")

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "1", rec["a"])
		assert.Equal(t, "2", rec["b"])
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.NotPanics(t, func() {
		log.Info("discarded", slog.String("key", "value"))
		log.Error("also discarded")
	})
}

func TestWithSentry(t *testing.T) {
	t.Parallel()

	t.Run("empty DSN degrades to plain logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{}))
		log.Error("payment failed")

		rec := decodeLine(t, buf.String())
		assert.Equal(t, "payment failed", rec["msg"])
	})

	t.Run("invalid DSN degrades to plain logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{
			DSN: "::not-a-dsn::",
		}))
		log.Info("still logging")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "failed to initialize Sentry")

		rec := decodeLine(t, lines[1])
		assert.Equal(t, "still logging", rec["msg"])
	})
}
