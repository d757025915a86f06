package g11n

import (
	"context"
	"sync"
	"sync/atomic"
)

// The package-level instance moves Uninitialized -> Ready exactly once
// through Init. Function-style access keeps single-binary applications
// from threading a *G11n everywhere; anything hosting several instances
// should use New directly.
var (
	defaultInstance atomic.Pointer[G11n]
	initMu          sync.Mutex
)

// Init creates the package-level instance. It succeeds at most once;
// later calls return ErrAlreadyInitialized regardless of arguments.
func Init(cfg Config, opts ...Option) error {
	initMu.Lock()
	defer initMu.Unlock()

	if defaultInstance.Load() != nil {
		return ErrAlreadyInitialized
	}

	g, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	defaultInstance.Store(g)
	return nil
}

// Default returns the package-level instance. It panics when called
// before a successful Init; initialization order is a programming error,
// not a runtime condition.
func Default() *G11n {
	g := defaultInstance.Load()
	if g == nil {
		panic("g11n: not initialized")
	}
	return g
}

// T translates a key at the current locale of the package-level instance.
func T(key string, opts ...TranslateOption) string {
	return Default().T(key, opts...)
}

// Translate resolves a key at the given locale on the package-level
// instance.
func Translate(loc, key string, opts ...TranslateOption) string {
	return Default().Translate(loc, key, opts...)
}

// SetLocale switches the package-level instance's locale.
func SetLocale(ctx context.Context, code string) error {
	return Default().SetLocale(ctx, code)
}

// CurrentLocale returns the package-level instance's current locale.
func CurrentLocale() string {
	return Default().Locale()
}

// Subscribe registers a locale-change listener on the package-level
// instance and returns its unsubscribe function.
func Subscribe(fn Listener) func() {
	return Default().Subscribe(fn)
}

// ResetToDefault switches the package-level instance to its fallback
// locale.
func ResetToDefault(ctx context.Context) error {
	return Default().ResetToDefault(ctx)
}

// DetectPreferred returns the first supported locale the package-level
// instance's detection sources report.
func DetectPreferred() string {
	return Default().DetectPreferred()
}

// Preload warms the package-level instance's cache for a locale.
func Preload(ctx context.Context, loc string) error {
	return Default().Preload(ctx, loc)
}
