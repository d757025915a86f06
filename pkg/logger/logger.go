package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	output     io.Writer
	level      slog.Level
	text       bool
	attrs      []slog.Attr
	extractors []ContextExtractor
	sentry     SentryConfig
	useSentry  bool
}

// Option configures logger construction.
type Option func(*config)

// WithOutput redirects log output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to info.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithText switches to the human-readable text format. Defaults to JSON.
func WithText() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithAttrs attaches static attributes to every record, typically the
// service name and environment.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithExtractors registers context extractors evaluated on every log call.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithSentry mirrors warn and error records to Sentry. An empty DSN is a
// no-op so local development needs no special casing.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		c.sentry = cfg
		c.useSentry = true
	}
}

// New creates a structured logger. With no options it writes JSON records
// at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	if cfg.text {
		handler = slog.NewTextHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
	} else {
		handler = slog.NewJSONHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	if cfg.useSentry {
		handler = attachSentry(handler, cfg.sentry)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
