package bundle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Cache stores loaded translation bundles keyed by (locale, namespace).
// Bundles are immutable once cached: a completed load, successful or not,
// is never retried until Clear or ClearLocale. Concurrent loads of the
// same key collapse into a single loader invocation.
//
// A Cache is safe for concurrent use.
type Cache struct {
	loader  Loader
	log     *slog.Logger
	missing func(locale, namespace, key string)

	mu      sync.RWMutex
	bundles map[string]map[string]any
	ledger  map[string]struct{}

	flight singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger attaches a logger for load-failure and missing-key
// diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMissingKeyHandler registers a callback invoked the first time each
// distinct (locale, namespace, key) lookup misses.
func WithMissingKeyHandler(fn func(locale, namespace, key string)) Option {
	return func(c *Cache) {
		c.missing = fn
	}
}

// New creates a Cache backed by the given loader.
func New(loader Loader, opts ...Option) (*Cache, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	c := &Cache{
		loader:  loader,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bundles: make(map[string]map[string]any),
		ledger:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LoadNamespace ensures the bundle for (locale, namespace) is cached.
// A cached key returns immediately. Concurrent callers for the same key
// share one loader invocation and observe the same outcome. A loader
// failure is absorbed: the error is logged, an empty bundle is cached so
// the load is not retried, and nil is returned. Only context cancellation
// propagates to the caller, and a cancelled load stays uncached so a later
// call can retry it.
func (c *Cache) LoadNamespace(ctx context.Context, locale, namespace string) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if namespace == "" {
		return ErrEmptyNamespace
	}

	key := bundleKey(locale, namespace)

	c.mu.RLock()
	_, cached := c.bundles[key]
	c.mu.RUnlock()
	if cached {
		return nil
	}

	_, err, _ := c.flight.Do(key, func() (any, error) {
		tree, err := c.loader.Load(ctx, locale, namespace)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			c.log.Error("bundle load failed",
				slog.String("locale", locale),
				slog.String("namespace", namespace),
				slog.Any("error", err),
			)
			tree = nil
		}
		if tree == nil {
			tree = make(map[string]any)
		}

		c.mu.Lock()
		if _, exists := c.bundles[key]; !exists {
			c.bundles[key] = tree
		}
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// HasNamespace reports whether the bundle for (locale, namespace) has
// completed loading.
func (c *Cache) HasNamespace(locale, namespace string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bundles[bundleKey(locale, namespace)]
	return ok
}

// PreloadLocale loads the given namespaces for a locale in parallel.
// Individual load failures are absorbed per namespace and do not abort
// the siblings; the error is non-nil only when the context is cancelled
// or an argument is invalid.
func (c *Cache) PreloadLocale(ctx context.Context, locale string, namespaces []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, namespace := range namespaces {
		g.Go(func() error {
			return c.LoadNamespace(ctx, locale, namespace)
		})
	}
	return g.Wait()
}

// Translation returns the string stored at the dot-separated key path in
// the cached bundle. It reports false, records a missing-key ledger entry,
// and notifies the missing-key handler (once per distinct path) when the
// namespace is not cached, a path segment is absent, or the value is not a
// plain string. Plural-form tables are deliberately not resolved here; use
// Raw for count-aware lookups.
func (c *Cache) Translation(locale, namespace, key string) (string, bool) {
	c.mu.RLock()
	tree, ok := c.bundles[bundleKey(locale, namespace)]
	c.mu.RUnlock()
	if !ok {
		c.recordMissing(locale, namespace, key)
		return "", false
	}

	value, ok := descend(tree, key)
	if !ok {
		c.recordMissing(locale, namespace, key)
		return "", false
	}

	s, ok := value.(string)
	if !ok {
		c.recordMissing(locale, namespace, key)
		return "", false
	}
	return s, true
}

// Raw returns the classified leaf at the dot-separated key path. An absent
// path yields a LeafNone leaf without touching the missing-key ledger; the
// caller owns unresolved handling on this path.
func (c *Cache) Raw(locale, namespace, key string) Leaf {
	c.mu.RLock()
	tree, ok := c.bundles[bundleKey(locale, namespace)]
	c.mu.RUnlock()
	if !ok {
		return Leaf{Kind: LeafNone}
	}

	value, ok := descend(tree, key)
	if !ok {
		return Leaf{Kind: LeafNone}
	}
	return Classify(value)
}

// MissingKeys returns the recorded locale:namespace:key ledger entries in
// sorted order.
func (c *Cache) MissingKeys() []string {
	c.mu.RLock()
	keys := slices.Collect(maps.Keys(c.ledger))
	c.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Clear drops every cached bundle and the missing-key ledger. The next
// LoadNamespace for each key invokes the loader again.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bundles = make(map[string]map[string]any)
	c.ledger = make(map[string]struct{})
}

// ClearLocale drops the cached bundles and ledger entries of one locale.
func (c *Cache) ClearLocale(locale string) {
	prefix := locale + ":"

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.bundles {
		if strings.HasPrefix(key, prefix) {
			delete(c.bundles, key)
		}
	}
	for entry := range c.ledger {
		if strings.HasPrefix(entry, prefix) {
			delete(c.ledger, entry)
		}
	}
}

func (c *Cache) recordMissing(locale, namespace, key string) {
	entry := locale + ":" + namespace + ":" + key

	c.mu.Lock()
	if _, seen := c.ledger[entry]; seen {
		c.mu.Unlock()
		return
	}
	c.ledger[entry] = struct{}{}
	c.mu.Unlock()

	if c.missing != nil {
		c.missing(locale, namespace, key)
	}
	c.log.Debug("missing translation key",
		slog.String("locale", locale),
		slog.String("namespace", namespace),
		slog.String("key", key),
	)
}

func bundleKey(locale, namespace string) string {
	return locale + ":" + namespace
}
