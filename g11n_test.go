package g11n_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apollo-Deploy/g11n"
	"github.com/Apollo-Deploy/g11n/pkg/bundle"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
)

// fixtureData is the bundle set most root tests resolve against.
func fixtureData() map[string]map[string]map[string]any {
	return map[string]map[string]map[string]any{
		"en": {
			"common": {
				"greeting": map[string]any{
					"hello": "Hello, {{name}}!",
					"plain": "Welcome",
				},
				"nav": map[string]any{"home": "Home"},
				"cart": map[string]any{
					"items": map[string]any{
						"0":     "No items",
						"2-5":   "A few items",
						"11+":   "Lots of items",
						"one":   "{{count}} item",
						"other": "{{count}} items",
					},
					"total": "Total: {{count}}",
				},
				"place": map[string]any{
					"one":   "{{count}}st",
					"two":   "{{count}}nd",
					"few":   "{{count}}rd",
					"other": "{{count}}th",
				},
				"friend": map[string]any{
					"0": "No friends",
					"male": map[string]any{
						"one":   "One friend (m)",
						"other": "{{count}} friends (m)",
					},
					"female": map[string]any{
						"one":   "One friend (f)",
						"other": "{{count}} friends (f)",
					},
					"other": "{{count}} friends",
				},
				"promo": map[string]any{
					"html": `Click <a href="https://example.com">here</a><script>bad()</script>`,
					"md":   "Please **accept** the [terms](https://example.com/terms).",
				},
			},
			"auth": {
				"login": map[string]any{"title": "Sign in"},
			},
		},
		"fr": {
			"common": {
				"greeting": map[string]any{"hello": "Bonjour, {{name}} !"},
				"cart": map[string]any{
					"items": map[string]any{
						"one":   "{{count}} article",
						"other": "{{count}} articles",
					},
				},
			},
		},
		"de": {
			"common": {
				"nav": map[string]any{"home": "Startseite"},
			},
		},
	}
}

// newFixtureInstance builds a preloaded instance over the fixture bundles.
func newFixtureInstance(t *testing.T, opts ...g11n.Option) *g11n.G11n {
	t.Helper()

	cfg := g11n.Config{
		DefaultLocale:    "en",
		SupportedLocales: []string{"en", "fr", "de"},
		Namespaces:       []string{"common", "auth"},
	}

	base := []g11n.Option{
		g11n.WithLoader(bundle.Static(fixtureData())),
		g11n.WithDetectionSources(),
	}
	svc, err := g11n.New(cfg, append(base, opts...)...)
	require.NoError(t, err)

	for _, loc := range []string{"en", "fr", "de"} {
		require.NoError(t, svc.Preload(context.Background(), loc))
	}
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a loader or cache", func(t *testing.T) {
		t.Parallel()

		_, err := g11n.New(g11n.Config{})
		require.ErrorIs(t, err, g11n.ErrNilLoader)
	})

	t.Run("rejects nil loader option", func(t *testing.T) {
		t.Parallel()

		_, err := g11n.New(g11n.Config{}, g11n.WithLoader(nil))
		require.ErrorIs(t, err, g11n.ErrNilLoader)
	})

	t.Run("accepts a prebuilt bundle cache", func(t *testing.T) {
		t.Parallel()

		cache, err := bundle.New(bundle.Static(fixtureData()))
		require.NoError(t, err)

		svc, err := g11n.New(g11n.Config{}, g11n.WithBundleCache(cache), g11n.WithDetectionSources())
		require.NoError(t, err)
		assert.Equal(t, "en", svc.Locale())
	})

	t.Run("rejects nil bundle cache", func(t *testing.T) {
		t.Parallel()

		_, err := g11n.New(g11n.Config{}, g11n.WithBundleCache(nil))
		require.ErrorIs(t, err, g11n.ErrInvalidConfig)
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		svc, err := g11n.New(g11n.Config{},
			g11n.WithLoader(bundle.Static(nil)),
			g11n.WithDetectionSources(),
		)
		require.NoError(t, err)
		assert.Equal(t, "en", svc.Locale())
		assert.Equal(t, []string{"en"}, svc.SupportedLocales())
	})

	t.Run("normalizes the supported set", func(t *testing.T) {
		t.Parallel()

		svc, err := g11n.New(g11n.Config{
			DefaultLocale:    "en-US",
			SupportedLocales: []string{"en-US", "fr_FR", "FR"},
		}, g11n.WithLoader(bundle.Static(nil)), g11n.WithDetectionSources())
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr"}, svc.SupportedLocales())
		assert.Equal(t, "en", svc.Locale())
	})

	t.Run("rejects unsupported default locale", func(t *testing.T) {
		t.Parallel()

		_, err := g11n.New(g11n.Config{
			DefaultLocale:    "ja",
			SupportedLocales: []string{"en", "fr"},
		}, g11n.WithLoader(bundle.Static(nil)), g11n.WithDetectionSources())
		require.Error(t, err)
	})

	t.Run("initial locale wins the startup chain", func(t *testing.T) {
		t.Parallel()

		svc, err := g11n.New(g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr"},
		},
			g11n.WithLoader(bundle.Static(nil)),
			g11n.WithDetectionSources(),
			g11n.WithInitialLocale("fr-CA"),
		)
		require.NoError(t, err)
		assert.Equal(t, "fr", svc.Locale())
	})

	t.Run("detection sources resolve the startup locale", func(t *testing.T) {
		t.Parallel()

		svc, err := g11n.New(g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "de"},
		},
			g11n.WithLoader(bundle.Static(nil)),
			g11n.WithDetectionSources(locale.FromList("ja", "de-AT")),
		)
		require.NoError(t, err)
		assert.Equal(t, "de", svc.Locale())
	})
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	t.Run("switches and notifies", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)

		var changes []g11n.Change
		unsubscribe := svc.Subscribe(func(c g11n.Change) {
			changes = append(changes, c)
		})
		defer unsubscribe()

		require.NoError(t, svc.SetLocale(context.Background(), "fr"))
		assert.Equal(t, "fr", svc.Locale())

		require.Len(t, changes, 1)
		assert.Equal(t, "en", changes[0].Previous)
		assert.Equal(t, "fr", changes[0].Locale)
		assert.NotEmpty(t, changes[0].ID)
	})

	t.Run("rejects unsupported locale", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)
		err := svc.SetLocale(context.Background(), "ja")
		require.ErrorIs(t, err, g11n.ErrInvalidLocale)
		assert.Equal(t, "en", svc.Locale())
	})

	t.Run("same locale is a no-op", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)

		var notified atomic.Int64
		unsubscribe := svc.Subscribe(func(g11n.Change) { notified.Add(1) })
		defer unsubscribe()

		require.NoError(t, svc.SetLocale(context.Background(), "en"))
		require.NoError(t, svc.SetLocale(context.Background(), "en-GB"))
		assert.Zero(t, notified.Load())
	})

	t.Run("preloads namespaces before committing", func(t *testing.T) {
		t.Parallel()

		// No explicit Preload: the switch itself must load fr bundles.
		cfg := g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr"},
			Namespaces:       []string{"common"},
		}
		svc, err := g11n.New(cfg,
			g11n.WithLoader(bundle.Static(fixtureData())),
			g11n.WithDetectionSources(),
		)
		require.NoError(t, err)

		require.NoError(t, svc.SetLocale(context.Background(), "fr"))
		got := svc.T("greeting.hello", g11n.WithVar("name", "Ada"))
		assert.Equal(t, "Bonjour, Ada !", got)
	})

	t.Run("newest concurrent switch wins", func(t *testing.T) {
		t.Parallel()

		started := make(chan string, 2)
		release := make(chan struct{})
		data := fixtureData()

		loader := bundle.LoaderFunc(func(ctx context.Context, loc, ns string) (map[string]any, error) {
			if loc != "en" {
				started <- loc
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return data[loc][ns], nil
		})

		cfg := g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr", "de"},
			Namespaces:       []string{"common"},
		}
		svc, err := g11n.New(cfg, g11n.WithLoader(loader), g11n.WithDetectionSources())
		require.NoError(t, err)

		frDone := make(chan error, 1)
		go func() { frDone <- svc.SetLocale(context.Background(), "fr") }()
		require.Equal(t, "fr", <-started)

		deDone := make(chan error, 1)
		go func() { deDone <- svc.SetLocale(context.Background(), "de") }()
		require.Equal(t, "de", <-started)

		close(release)

		require.ErrorIs(t, <-frDone, g11n.ErrSuperseded)
		require.NoError(t, <-deDone)
		assert.Equal(t, "de", svc.Locale())
	})

	t.Run("preload failure does not block the switch", func(t *testing.T) {
		t.Parallel()

		loader := bundle.LoaderFunc(func(_ context.Context, loc, _ string) (map[string]any, error) {
			if loc == "fr" {
				return nil, errors.New("source offline")
			}
			return fixtureData()[loc]["common"], nil
		})

		cfg := g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr"},
		}
		svc, err := g11n.New(cfg, g11n.WithLoader(loader), g11n.WithDetectionSources())
		require.NoError(t, err)

		require.NoError(t, svc.SetLocale(context.Background(), "fr"))
		assert.Equal(t, "fr", svc.Locale())
	})

	t.Run("cancelled preload leaves the locale unchanged", func(t *testing.T) {
		t.Parallel()

		loader := bundle.LoaderFunc(func(ctx context.Context, _, _ string) (map[string]any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return map[string]any{}, nil
		})

		cfg := g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "fr"},
		}
		svc, err := g11n.New(cfg, g11n.WithLoader(loader), g11n.WithDetectionSources())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = svc.SetLocale(ctx, "fr")
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "en", svc.Locale())
	})
}

func TestResetToDefault(t *testing.T) {
	t.Parallel()

	svc := newFixtureInstance(t)
	require.NoError(t, svc.SetLocale(context.Background(), "fr"))
	require.NoError(t, svc.ResetToDefault(context.Background()))
	assert.Equal(t, "en", svc.Locale())
}

func TestDetectPreferred(t *testing.T) {
	t.Parallel()

	svc := newFixtureInstance(t, g11n.WithDetectionSources(
		locale.FromList("ja", "zh"),
		locale.FromList("de-CH"),
	))
	assert.Equal(t, "de", svc.DetectPreferred())
}

func TestSubscribeUnsubscribe(t *testing.T) {
	t.Parallel()

	svc := newFixtureInstance(t)

	var count atomic.Int64
	unsubscribe := svc.Subscribe(func(g11n.Change) { count.Add(1) })

	require.NoError(t, svc.SetLocale(context.Background(), "fr"))
	unsubscribe()
	require.NoError(t, svc.SetLocale(context.Background(), "de"))

	assert.Equal(t, int64(1), count.Load())
}

func TestIsLocaleSupported(t *testing.T) {
	t.Parallel()

	svc := newFixtureInstance(t)
	assert.True(t, svc.IsLocaleSupported("fr"))
	assert.True(t, svc.IsLocaleSupported("FR_ca"))
	assert.False(t, svc.IsLocaleSupported("ja"))
}

func TestCacheManagement(t *testing.T) {
	t.Parallel()

	t.Run("clear cache drops loaded bundles", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)
		assert.Equal(t, "Welcome", svc.T("greeting.plain"))

		svc.ClearCache()

		// Lookups read only cached bundles; after a clear the key falls
		// through the whole chain.
		assert.Equal(t, "greeting.plain", svc.T("greeting.plain"))

		require.NoError(t, svc.Preload(context.Background(), "en"))
		assert.Equal(t, "Welcome", svc.T("greeting.plain"))
	})

	t.Run("clear locale cache is scoped", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)
		svc.ClearLocaleCache("fr")

		assert.Equal(t, "Welcome", svc.T("greeting.plain"))

		// fr is gone, so the fallback chain serves the English template.
		assert.Equal(t, "Hello, {{name}}!", svc.Translate("fr", "greeting.hello"))
	})

	t.Run("load namespace targets the current locale", func(t *testing.T) {
		t.Parallel()

		cfg := g11n.Config{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en"},
			Namespaces:       []string{"common"},
		}
		svc, err := g11n.New(cfg,
			g11n.WithLoader(bundle.Static(fixtureData())),
			g11n.WithDetectionSources(),
		)
		require.NoError(t, err)

		require.NoError(t, svc.LoadNamespace(context.Background(), "auth"))
		assert.Equal(t, "Sign in", svc.T("login.title", g11n.WithNamespace("auth")))
	})

	t.Run("missing keys ledger", func(t *testing.T) {
		t.Parallel()

		svc := newFixtureInstance(t)
		svc.T("ghost.key")
		svc.T("ghost.key")

		keys := svc.MissingKeys()
		assert.Contains(t, keys, "en:common:ghost.key")
	})
}

func TestSetLocaleStress(t *testing.T) {
	t.Parallel()

	svc := newFixtureInstance(t)

	// Hammer switches from several goroutines; every call must end in a
	// committed or superseded state, never a torn one.
	locales := []string{"en", "fr", "de"}
	done := make(chan struct{})
	var calls atomic.Int64

	for i := range 3 {
		go func(seed int) {
			defer func() { done <- struct{}{} }()
			for j := range 20 {
				loc := locales[(seed+j)%len(locales)]
				err := svc.SetLocale(context.Background(), loc)
				if err != nil {
					assert.ErrorIs(t, err, g11n.ErrSuperseded)
				}
				calls.Add(1)
			}
		}(i)
	}

	deadline := time.After(10 * time.Second)
	for range 3 {
		select {
		case <-done:
		case <-deadline:
			t.Fatal("locale switching deadlocked")
		}
	}

	require.Equal(t, int64(60), calls.Load())
	assert.Contains(t, locales, svc.Locale())
}
