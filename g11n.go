package g11n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/Apollo-Deploy/g11n/pkg/bundle"
	"github.com/Apollo-Deploy/g11n/pkg/format"
	"github.com/Apollo-Deploy/g11n/pkg/interpolate"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
	"github.com/Apollo-Deploy/g11n/pkg/logger"
	"github.com/Apollo-Deploy/g11n/pkg/richtext"
)

const (
	// DefaultLocale is used when the configuration names no default.
	DefaultLocale = "en"

	// DefaultNamespace is used when the configuration names no default.
	DefaultNamespace = "common"
)

// Type aliases - public API
type (
	// Change describes one committed locale switch.
	Change = locale.Change

	// Listener receives locale changes.
	Listener = locale.Listener

	// Store persists the locale choice across sessions.
	Store = locale.Store

	// Source yields locale candidates from a host signal.
	Source = locale.Source

	// Loader fetches a translation bundle for (locale, namespace).
	Loader = bundle.Loader

	// LocaleFormat holds one locale's number, currency, and date
	// display conventions.
	LocaleFormat = format.LocaleFormat

	// ContextExtractor extracts a slog attribute from context.
	// Used with pkg/logger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// G11n resolves translation keys into display strings for the current
// locale. It combines locale state, cached bundles, pluralization,
// interpolation, and the fallback chain behind one surface.
//
// A G11n is safe for concurrent use. Construction performs no I/O; call
// Preload or LoadNamespace to warm the cache before resolving.
type G11n struct {
	manager *locale.Manager
	cache   *bundle.Cache
	interp  *interpolate.Interpolator
	rich    *richtext.Renderer
	log     *slog.Logger

	namespaces []string
	defaultNS  string
	debug      bool

	formats       map[string]*format.LocaleFormat
	defaultFormat *format.LocaleFormat

	missingTranslation func(locale, namespace, key string)
	missingVariable    func(name string)

	// Collaborators collected by options, consumed once in New.
	loader     bundle.Loader
	store      locale.Store
	sources    []locale.Source
	sourcesSet bool
	initial    string

	// switchMu orders locale-change commits; seq hands out tickets so a
	// preload superseded by a newer request never commits.
	switchMu sync.Mutex
	seq      uint64
}

// New creates a G11n instance from the configuration and options. Zero
// config fields fall back to working defaults (locale "en", namespace
// "common", {{ }} delimiters, escaping on). A bundle loader is required
// unless WithBundleCache supplies a prebuilt cache.
func New(cfg Config, opts ...Option) (*G11n, error) {
	g := &G11n{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		debug: cfg.Debug,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if g.cache == nil {
		if g.loader == nil {
			return nil, ErrNilLoader
		}
		cache, err := bundle.New(g.loader, bundle.WithLogger(g.log))
		if err != nil {
			return nil, err
		}
		g.cache = cache
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.DefaultNamespace == "" {
		cfg.DefaultNamespace = DefaultNamespace
	}

	supported := cfg.SupportedLocales
	if len(supported) == 0 {
		supported = []string{cfg.DefaultLocale}
	}

	mopts := []locale.Option{
		locale.WithSupported(supported...),
		locale.WithDefault(cfg.DefaultLocale),
		locale.WithLogger(g.log),
	}
	if cfg.FallbackLocale != "" {
		mopts = append(mopts, locale.WithFallback(cfg.FallbackLocale))
	}
	if g.initial != "" {
		mopts = append(mopts, locale.WithInitial(g.initial))
	}
	if g.store != nil {
		mopts = append(mopts, locale.WithStore(g.store))
	}
	if g.sourcesSet {
		mopts = append(mopts, locale.WithDetectionSources(g.sources...))
	}

	manager, err := locale.NewManager(mopts...)
	if err != nil {
		return nil, err
	}
	g.manager = manager

	g.defaultNS = cfg.DefaultNamespace
	g.namespaces = slices.Clone(cfg.Namespaces)
	if !slices.Contains(g.namespaces, g.defaultNS) {
		g.namespaces = append(g.namespaces, g.defaultNS)
	}

	interpOpts := []interpolate.Option{
		interpolate.WithDelimiters(cfg.InterpolationPrefix, cfg.InterpolationSuffix),
	}
	if cfg.DisableEscaping {
		interpOpts = append(interpOpts, interpolate.WithoutEscaping())
	}
	if g.missingVariable != nil {
		interpOpts = append(interpOpts, interpolate.WithMissingHandler(g.missingVariable))
	}
	if cfg.Debug {
		interpOpts = append(interpOpts, interpolate.WithLogger(g.log))
	}
	g.interp = interpolate.New(interpOpts...)

	if g.rich == nil {
		g.rich = richtext.New()
	}

	if len(g.formats) > 0 {
		normed := make(map[string]*format.LocaleFormat, len(g.formats))
		for code, f := range g.formats {
			if f != nil {
				normed[locale.Normalize(code)] = f
			}
		}
		g.formats = normed
	}

	return g, nil
}

// Locale returns the current locale.
func (g *G11n) Locale() string {
	return g.manager.Current()
}

// DefaultLocale returns the configured default locale.
func (g *G11n) DefaultLocale() string {
	return g.manager.Default()
}

// FormatFor returns the display format for a locale: a configured
// override when one matches, then the configured default format, then
// the predefined format for the locale's language. An empty locale
// means the current one.
func (g *G11n) FormatFor(loc string) *format.LocaleFormat {
	norm := locale.Normalize(loc)
	if norm == "" {
		norm = g.manager.Current()
	}
	if f, ok := g.formats[norm]; ok {
		return f
	}
	if g.defaultFormat != nil {
		return g.defaultFormat
	}
	return format.ForLocale(norm)
}

// IsLocaleSupported reports whether code, once normalized, is in the
// supported set.
func (g *G11n) IsLocaleSupported(code string) bool {
	return g.manager.IsSupported(code)
}

// SupportedLocales returns the supported set in configured order.
func (g *G11n) SupportedLocales() []string {
	return g.manager.Supported()
}

// SetLocale switches the current locale. The switch is atomic with respect
// to bundle loading: the new locale's namespaces are preloaded first, and
// the state commits only if no newer SetLocale call arrived in the
// meantime. Superseded calls return ErrSuperseded without changing state.
// Setting the already-current locale is a complete no-op.
//
// Subscribers are notified synchronously during commit; a listener must
// not call SetLocale itself.
func (g *G11n) SetLocale(ctx context.Context, code string) error {
	norm := locale.Normalize(code)
	if !g.manager.IsSupported(norm) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, code)
	}
	if norm == g.manager.Current() {
		return nil
	}

	g.switchMu.Lock()
	g.seq++
	ticket := g.seq
	g.switchMu.Unlock()

	if err := g.cache.PreloadLocale(ctx, norm, g.namespaces); err != nil {
		return err
	}

	g.switchMu.Lock()
	defer g.switchMu.Unlock()
	if g.seq != ticket {
		if g.debug {
			g.log.Debug("locale change superseded",
				slog.String("locale", norm),
				slog.Uint64("ticket", ticket),
			)
		}
		return ErrSuperseded
	}
	return g.manager.SetLocale(ctx, norm)
}

// ResetToDefault switches to the configured fallback locale through the
// same atomic path as SetLocale.
func (g *G11n) ResetToDefault(ctx context.Context) error {
	return g.SetLocale(ctx, g.manager.Fallback())
}

// Subscribe registers a listener for locale changes and returns its
// unsubscribe function. Listeners run synchronously in registration order;
// a panicking listener is recovered and logged so the rest still run.
func (g *G11n) Subscribe(fn Listener) func() {
	return g.manager.Subscribe(fn)
}

// DetectPreferred walks the detection sources and returns the first
// supported candidate, or the fallback locale when none match.
func (g *G11n) DetectPreferred() string {
	return g.manager.DetectPreferred()
}

// LoadNamespace ensures the namespace is cached for the current locale.
func (g *G11n) LoadNamespace(ctx context.Context, namespace string) error {
	return g.cache.LoadNamespace(ctx, g.manager.Current(), namespace)
}

// Preload loads every configured namespace for the given locale in
// parallel. An empty locale means the current one. Individual load
// failures are absorbed; only context cancellation returns an error.
func (g *G11n) Preload(ctx context.Context, loc string) error {
	if loc == "" {
		loc = g.manager.Current()
	}
	return g.cache.PreloadLocale(ctx, locale.Normalize(loc), g.namespaces)
}

// ClearCache drops every cached bundle and the missing-key ledger.
func (g *G11n) ClearCache() {
	g.cache.Clear()
}

// ClearLocaleCache drops the cached bundles of one locale.
func (g *G11n) ClearLocaleCache(loc string) {
	g.cache.ClearLocale(locale.Normalize(loc))
}

// MissingKeys returns the locale:namespace:key entries recorded for
// lookups that missed, in sorted order.
func (g *G11n) MissingKeys() []string {
	return g.cache.MissingKeys()
}
