// Package g11n resolves translation keys into display strings.
//
// It covers the full resolution pipeline: locale state with change
// notification, cached translation bundles with deduplicated loading,
// dot-path key lookup, CLDR pluralization with exact-count and interval
// overrides, template interpolation with escaping, and a two-level
// fallback chain (requested locale, then the configured fallback, then a
// caller default or the literal key). Resolution never fails: some
// displayable string always comes back.
//
// # Quick Start
//
// Create an instance with g11n.New(), give it a bundle loader, and warm
// the cache before translating:
//
//	cfg, err := g11n.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc, err := g11n.New(cfg,
//	    g11n.WithLoader(bundle.NewFS(locales)),
//	    g11n.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := svc.Preload(ctx, svc.Locale()); err != nil {
//	    log.Fatal(err)
//	}
//
//	svc.T("greeting.hello", g11n.WithVar("name", "Ada"))
//	svc.T("cart.items", g11n.WithCount(3))
//
// # Locale Switching
//
// SetLocale preloads the new locale's namespaces before committing, so
// subscribers never observe a locale whose bundles are absent. When
// switches race, the newest wins and older calls return ErrSuperseded:
//
//	unsubscribe := svc.Subscribe(func(change g11n.Change) {
//	    log.Info("locale changed", "from", change.Previous, "to", change.Locale)
//	})
//	defer unsubscribe()
//
//	if err := svc.SetLocale(ctx, "fr"); err != nil {
//	    log.Warn("switch failed", "error", err)
//	}
//
// # Bound Translators
//
// Translator fixes a locale and namespace so call sites pass only keys.
// The locale middleware stores one per request. It also formats numbers,
// currency, and dates with its locale's display conventions (pkg/format,
// overridable per locale with WithLocaleFormats):
//
//	tr := svc.Translator("de", "checkout")
//	tr.T("title")
//	tr.Tn("items", 5)
//	tr.TMarkdown("terms")
//	tr.FormatCurrency(42.5)
//
// # Package-Level Instance
//
// Single-binary applications can promote one instance to package level
// with Init and use the function-style API:
//
//	if err := g11n.Init(cfg, g11n.WithLoader(loader)); err != nil {
//	    log.Fatal(err)
//	}
//	g11n.T("nav.home")
//
// Init succeeds at most once; Default panics before initialization.
// Anything hosting several instances should stay with New.
//
// # Configuration
//
// Config fields map to G11N_* environment variables (LoadConfig), and
// collaborators that cannot live in env vars are injected with options:
// WithLoader or WithBundleCache for bundle sources, WithStore for locale
// persistence, WithDetectionSources for startup locale detection,
// WithMissingTranslationHandler and WithMissingVariableHandler for
// diagnostics. Diagnostics never change the returned string.
package g11n
