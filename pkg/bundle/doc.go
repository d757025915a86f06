// Package bundle loads, caches, and serves translation bundles keyed by
// (locale, namespace).
//
// A bundle is a nested tree of string segments whose leaves are plain
// strings, plural-form maps, or grammatical-context maps of plural-form
// maps. Bundles come from a pluggable [Loader] and are cached immutably:
// a cached (locale, namespace) pair never changes in place, so readers
// share it without copying. Replacing a bundle requires [Cache.Clear] or
// [Cache.ClearLocale] followed by a reload.
//
// # Loaders
//
// A [Loader] fetches the raw tree for one (locale, namespace) pair.
// Loaders distinguish a plain miss (the bundle does not exist: a 404, a
// missing file, an absent row) from a real failure (transport error,
// parse error). A miss yields an empty tree and a nil error; only
// failures return errors.
//
// Built-in loaders:
//
//   - [Static]: fixed in-memory data, for tests and embedded defaults
//   - [NewFS]: fs.FS files (embed.FS, os.DirFS), JSON with YAML fallback
//   - [NewHTTP]: GET against a URL template
//   - [NewS3]: objects in an S3-compatible bucket
//   - [NewPostgres]: flat rows in Postgres, rebuilt into a tree
//   - [NewRedis]: JSON documents in Redis
//   - [NewChain]: try several loaders in order, first non-empty wins
//
// File, URL, and object paths come from a [Template] expanding both the
// {{locale}}/{{namespace}} and {{lng}}/{{ns}} placeholder pairs:
//
//	loader := bundle.NewHTTP("https://cdn.example.com/locales/{{lng}}/{{ns}}.json")
//
// # Cache
//
// [Cache] wraps a Loader with in-flight deduplication (singleflight) and
// failure absorption. Concurrent loads of the same (locale, namespace)
// invoke the loader once; distinct pairs load in parallel. A loader
// failure is logged and cached as an empty bundle so resolution callers
// always proceed; a cancelled load is not committed and the next call
// retries.
//
//	cache, err := bundle.New(loader, bundle.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	if err := cache.PreloadLocale(ctx, "en", []string{"common", "auth"}); err != nil {
//	    return err
//	}
//	msg, ok := cache.Translation("en", "common", "greeting.hello")
//
// [Cache.Translation] resolves dot-separated paths to string leaves and
// records unresolved lookups in a deduplicated missing-key ledger
// ([Cache.MissingKeys]); [Cache.Raw] returns the classified [Leaf] for
// plural and context handling without touching the ledger.
//
// # Postgres Schema
//
// [Migrate] creates the g11n_translations table read by [NewPostgres]:
//
//	if err := bundle.Migrate(ctx, pool, log); err != nil {
//	    return err
//	}
//	loader, err := bundle.NewPostgres(pool)
//
// # Periodic Refresh
//
// [Refresher] re-preloads configured locales on a cron schedule so
// long-running processes pick up published translations:
//
//	r, err := bundle.NewRefresher(cache, "*/30 * * * *",
//	    []string{"en", "fr"}, []string{"common"},
//	    bundle.WithRefresherLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := r.Start(ctx); err != nil {
//	    return err
//	}
//	defer r.Stop(context.Background())
package bundle
