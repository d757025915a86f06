package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel narrows which records mirror to Sentry as logs. Errors
	// always become Sentry events regardless of this setting.
	MinLevel slog.Level
}

// attachSentry mirrors records from handler to Sentry. An empty DSN and a
// failed SDK init both degrade to the plain handler so a misconfigured
// tracker never takes logging down with it.
func attachSentry(handler slog.Handler, cfg SentryConfig) slog.Handler {
	if cfg.DSN == "" {
		return handler
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return handler
	}

	// Errors create Sentry issues. Warnings ride along as searchable logs
	// unless the config restricts mirroring to errors only.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return newMultiHandler(handler, sentryHandler)
}
