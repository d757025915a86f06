// Package logger provides structured logging with context extraction and
// optional Sentry mirroring.
//
// It builds on the standard library's log/slog. Loggers are assembled with
// functional options, and every handler is wrapped so that request-scoped
// values carried in a context (the active locale, a request ID) land on log
// records without call sites threading them through.
//
// # Basic Usage
//
// With no options New writes JSON records at info level to stdout:
//
//	log := logger.New()
//	log.Info("bundle loaded", slog.String("locale", "fr"))
//
// Options adjust output, level, and format:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithText(),
//		logger.WithAttrs(slog.String("service", "storefront")),
//	)
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call, so request-scoped values stay fresh.
// Returning false skips the attribute for that record:
//
//	localeExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if loc, ok := ctx.Value(localeKey).(string); ok && loc != "" {
//			return slog.String("locale", loc), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.WithExtractors(localeExtractor))
//
//	ctx := context.WithValue(context.Background(), localeKey, "de")
//	log.InfoContext(ctx, "missing translation", slog.String("key", "nav.home"))
//	// {"level":"INFO","msg":"missing translation","key":"nav.home","locale":"de"}
//
// # Sentry
//
// WithSentry mirrors warnings and errors to Sentry while stdout logging
// continues unchanged:
//
//	log := logger.New(logger.WithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	}))
//
// An empty DSN, or a failed SDK init, degrades to plain stdout logging so
// the same construction code runs in development and production.
//
// # Wrapping Existing Handlers
//
// NewContextHandler decorates any slog.Handler with extraction, for code
// that already has a handler pipeline:
//
//	decorated := logger.NewContextHandler(existingHandler, localeExtractor)
//	log := slog.New(decorated)
package logger
