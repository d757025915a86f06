package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/Apollo-Deploy/g11n"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
)

const (
	// LocaleQueryParam is the query parameter checked for an explicit
	// locale choice.
	LocaleQueryParam = "lang"

	// LocaleCookieName is the default cookie holding the visitor's
	// locale preference.
	LocaleCookieName = "g11n_locale"

	// LocaleURLParam is the chi route parameter checked by the default
	// source chain, for routes like /{locale}/about.
	LocaleURLParam = "locale"

	// defaultCookieMaxAge keeps a persisted locale choice for a year.
	defaultCookieMaxAge = 365 * 24 * time.Hour
)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Namespace    string
	Sources      []ExtractorSource
	CookieName   string
	CookieMaxAge time.Duration
	Persist      bool
	sourcesSet   bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleNamespace sets the default namespace for the context translator.
func WithLocaleNamespace(ns string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Namespace = ns
	}
}

// WithLocaleSources replaces the default source chain. Sources are tried
// in order and the first candidate in the supported set wins.
func WithLocaleSources(sources ...ExtractorSource) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Sources = sources
		cfg.sourcesSet = true
	}
}

// WithLocaleCookie changes the cookie used for the stored preference and
// for persistence.
func WithLocaleCookie(name string, maxAge time.Duration) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.CookieName = name
		cfg.CookieMaxAge = maxAge
	}
}

// WithCookiePersistence makes the middleware persist an explicit
// query-param locale choice as a cookie on the response. The query
// parameter is consulted before the source chain whenever persistence is
// on, so a ?lang= choice wins regardless of the configured sources.
func WithCookiePersistence() LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Persist = true
	}
}

// FromAcceptLanguage returns a source that parses the Accept-Language
// header and matches it against the available locales.
func FromAcceptLanguage(available []string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return locale.ParseAcceptLanguage(header, available), true
	}
}

// Locale returns middleware that resolves the request locale, binds a
// Translator to it, and stores both in the request context. Candidates
// come from the source chain (default: lang query param, preference
// cookie, chi {locale} route param, Accept-Language); the first
// supported candidate wins and unsupported values fall through to the
// next source. When nothing matches, the instance default locale is
// used, so downstream handlers always see a usable locale.
func Locale(g *g11n.G11n, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		CookieName:   LocaleCookieName,
		CookieMaxAge: defaultCookieMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default chain: explicit choice → stored preference → route → header.
	if !cfg.sourcesSet {
		cfg.Sources = []ExtractorSource{
			FromQuery(LocaleQueryParam),
			FromCookie(cfg.CookieName),
			FromChiParam(LocaleURLParam),
			FromAcceptLanguage(g.SupportedLocales()),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, persist := resolveLocale(g, cfg, r)

			if persist {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    loc,
					Path:     "/",
					MaxAge:   int(cfg.CookieMaxAge.Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}

			tr := g.Translator(loc, cfg.Namespace)
			ctx := g11n.ContextWithLocale(r.Context(), loc)
			ctx = g11n.ContextWithTranslator(ctx, tr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveLocale returns the normalized request locale. The bool reports
// whether the value is an explicit query-param choice that should be
// persisted as a cookie.
func resolveLocale(g *g11n.G11n, cfg *LocaleConfig, r *http.Request) (string, bool) {
	if cfg.Persist {
		if v := strings.TrimSpace(r.URL.Query().Get(LocaleQueryParam)); v != "" {
			if norm := locale.Normalize(v); g.IsLocaleSupported(norm) {
				return norm, true
			}
		}
	}

	for _, src := range cfg.Sources {
		v, ok := src(r)
		if !ok || v == "" {
			continue
		}
		if norm := locale.Normalize(v); g.IsLocaleSupported(norm) {
			return norm, false
		}
	}

	return g.DefaultLocale(), false
}

// GetTranslator extracts the request-bound Translator from the context.
// Returns nil if the Locale middleware is not used.
func GetTranslator(r *http.Request) *g11n.Translator {
	tr, _ := g11n.TranslatorFromContext(r.Context())
	return tr
}

// GetLocale extracts the resolved locale from the request context.
// Returns an empty string if the Locale middleware is not used.
func GetLocale(r *http.Request) string {
	loc, _ := g11n.LocaleFromContext(r.Context())
	return loc
}
