// Package middlewares provides net/http middleware that resolves the
// request locale and exposes a request-bound translator.
//
// # Locale
//
// Locale middleware picks the visitor's locale and stores it, together
// with a Translator bound to that locale, in the request context. The
// default source chain tries the lang query parameter, the g11n_locale
// cookie, the chi {locale} route parameter, and the Accept-Language
// header; the first candidate in the supported set wins.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(svc))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    t := middlewares.GetTranslator(r)
//	    fmt.Fprint(w, t.T("greeting.hello", g11n.WithVar("name", "Ada")))
//	})
//
// # Custom Sources
//
// The chain is replaceable. Sources run in order and a candidate outside
// the supported set falls through to the next source, so a stale cookie
// never shadows a usable Accept-Language header.
//
//	r.Use(middlewares.Locale(svc,
//	    middlewares.WithLocaleSources(
//	        middlewares.FromHeader("X-Locale"),
//	        middlewares.FromAcceptLanguage(svc.SupportedLocales()),
//	    ),
//	))
//
// # Persisting Choices
//
// With cookie persistence on, an explicit ?lang= choice is written back
// as a preference cookie, so the selection survives across visits:
//
//	r.Use(middlewares.Locale(svc,
//	    middlewares.WithCookiePersistence(),
//	))
//
// # Route-Based Locales
//
// For path-localized sites, mount routes under a {locale} parameter and
// the default chain picks it up:
//
//	r.Route("/{locale}", func(r chi.Router) {
//	    r.Use(middlewares.Locale(svc))
//	    r.Get("/about", aboutHandler)
//	})
package middlewares
