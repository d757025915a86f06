// Package locale manages the active locale of a process or scope:
// validation against a supported set, startup resolution, persistence,
// host-preference detection, and change notification.
//
// # Manager
//
// A [Manager] is configured once and then switched through [Manager.SetLocale]:
//
//	mgr, err := locale.NewManager(
//	    locale.WithSupported("en", "fr", "de"),
//	    locale.WithDefault("en"),
//	    locale.WithStore(locale.NewFileStore("/var/lib/app/locale")),
//	)
//	if err != nil {
//	    return err
//	}
//
//	unsubscribe := mgr.Subscribe(func(ch locale.Change) {
//	    log.Info("locale changed", "from", ch.Previous, "to", ch.Locale)
//	})
//	defer unsubscribe()
//
//	if err := mgr.SetLocale(ctx, "fr"); err != nil {
//	    // locale.ErrInvalidLocale: "fr" not in the supported set
//	}
//
// The startup locale resolves through a priority chain: the explicit
// [WithInitial] code, then the persisted store value, then the detected
// host preference, then the configured default. Each candidate must be
// supported to win.
//
// Switching to the already-active locale is a complete no-op. A real
// switch persists the choice, then notifies listeners synchronously in
// subscription order; a panicking listener is recovered and logged so the
// remaining listeners still run.
//
// # Normalization
//
// All codes entering the package reduce to their lowercase
// primary-language subtag via [Normalize]: "en-US", "en_US.UTF-8", and
// "EN" are all "en". Comparisons, the supported set, and every reported
// locale use this normalized form.
//
// # Detection
//
// [Manager.DetectPreferred] walks [Source] functions for locale
// candidates. The default chain reads the POSIX environment ([FromEnv]:
// LANGUAGE, LC_ALL, LC_MESSAGES, LANG). [FromList] wires fixed
// candidates, and [ParseAcceptLanguage] matches an HTTP Accept-Language
// header against an available list for request-scoped detection:
//
//	locale.ParseAcceptLanguage("en-US,en;q=0.9,pl;q=0.8", []string{"pl", "en"})
//	// "en"
//
// # Persistence
//
// A [Store] remembers the choice across sessions. Implementations swallow
// backend failures: a broken store degrades to "locale not remembered",
// never to an error on the switch itself. [NewMemoryStore] keeps the
// value in process memory, [NewFileStore] writes a single owner-only
// file, and [NewRedisStore] shares the choice across processes.
package locale
