package g11n

import (
	"context"
	"log/slog"

	"github.com/Apollo-Deploy/g11n/pkg/logger"
)

// localeKey is the context key for the resolved locale string.
type localeKey struct{}

// translatorKey is the context key for the request-bound Translator.
type translatorKey struct{}

// ContextWithLocale stores the resolved locale in the context.
func ContextWithLocale(ctx context.Context, loc string) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext returns the locale stored by ContextWithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	loc, ok := ctx.Value(localeKey{}).(string)
	if !ok || loc == "" {
		return "", false
	}
	return loc, true
}

// ContextWithTranslator stores a bound translator in the context.
func ContextWithTranslator(ctx context.Context, tr *Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

// TranslatorFromContext returns the translator stored by
// ContextWithTranslator.
func TranslatorFromContext(ctx context.Context) (*Translator, bool) {
	tr, ok := ctx.Value(translatorKey{}).(*Translator)
	if !ok || tr == nil {
		return nil, false
	}
	return tr, true
}

// LocaleExtractor returns a logger extractor that adds the context locale
// to log records, so every line written while serving a request carries
// the locale it was rendered in.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		loc, ok := LocaleFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("locale", loc), true
	}
}
