package g11n

import (
	"fmt"
	"log/slog"

	"github.com/Apollo-Deploy/g11n/pkg/bundle"
	"github.com/Apollo-Deploy/g11n/pkg/format"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
	"github.com/Apollo-Deploy/g11n/pkg/richtext"
)

// Option configures the instance during construction.
type Option func(*G11n) error

// WithLoader sets the bundle source. Required unless WithBundleCache
// supplies a prebuilt cache.
func WithLoader(loader bundle.Loader) Option {
	return func(g *G11n) error {
		if loader == nil {
			return ErrNilLoader
		}
		g.loader = loader
		return nil
	}
}

// WithBundleCache supplies a prebuilt bundle cache, for callers that
// configured one directly (custom cache options, shared refresher).
// Takes precedence over WithLoader.
func WithBundleCache(cache *bundle.Cache) Option {
	return func(g *G11n) error {
		if cache == nil {
			return fmt.Errorf("%w: nil bundle cache", ErrInvalidConfig)
		}
		g.cache = cache
		return nil
	}
}

// WithStore persists the locale choice across sessions. Store failures
// degrade to "choice not remembered" and never surface to callers.
func WithStore(store locale.Store) Option {
	return func(g *G11n) error {
		g.store = store
		return nil
	}
}

// WithLogger attaches a logger for resolution diagnostics. Defaults to a
// discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *G11n) error {
		if log != nil {
			g.log = log
		}
		return nil
	}
}

// WithDetectionSources replaces the host-signal sources consulted when no
// explicit or persisted locale exists. Defaults to the process environment.
func WithDetectionSources(sources ...locale.Source) Option {
	return func(g *G11n) error {
		g.sources = sources
		g.sourcesSet = true
		return nil
	}
}

// WithInitialLocale forces the startup locale, bypassing persistence and
// detection. An unsupported value is skipped silently.
func WithInitialLocale(code string) Option {
	return func(g *G11n) error {
		g.initial = code
		return nil
	}
}

// WithMissingTranslationHandler registers a callback invoked each time a
// translate call exhausts the fallback chain without resolving. Diagnostics
// only; the returned string is unaffected.
func WithMissingTranslationHandler(fn func(locale, namespace, key string)) Option {
	return func(g *G11n) error {
		g.missingTranslation = fn
		return nil
	}
}

// WithMissingVariableHandler registers a callback invoked once per distinct
// placeholder left unresolved during an interpolation pass.
func WithMissingVariableHandler(fn func(name string)) Option {
	return func(g *G11n) error {
		g.missingVariable = fn
		return nil
	}
}

// WithRichText replaces the renderer behind Translator.THTML and
// TMarkdown, for custom sanitization policies or markdown extensions.
func WithRichText(r *richtext.Renderer) Option {
	return func(g *G11n) error {
		if r != nil {
			g.rich = r
		}
		return nil
	}
}

// WithLocaleFormats sets per-locale display format overrides. Keys are
// normalized, so "fr-CA" and "fr" address the same entry. Locales
// without an override use the predefined format for their language.
func WithLocaleFormats(formats map[string]*format.LocaleFormat) Option {
	return func(g *G11n) error {
		g.formats = formats
		return nil
	}
}

// WithDefaultFormat sets the display format for locales that have no
// override, replacing the per-language predefined formats.
func WithDefaultFormat(f *format.LocaleFormat) Option {
	return func(g *G11n) error {
		g.defaultFormat = f
		return nil
	}
}
