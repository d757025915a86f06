package locale

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Change describes one completed locale switch.
type Change struct {
	// ID uniquely identifies the change for correlation in logs and
	// downstream handlers.
	ID       string
	Previous string
	Locale   string
	At       time.Time
}

// Listener receives locale changes. Listeners run synchronously on the
// goroutine calling SetLocale, in subscription order.
type Listener func(Change)

// Store persists the user's locale choice across sessions. Implementations
// swallow their backend's failures: Get reports a miss and Set reports
// false instead of propagating errors, so a broken store degrades to
// "locale not remembered" without affecting the current session.
type Store interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, locale string) bool
}

// Manager holds the current locale for a process or scope, validates
// switches against the configured supported set, persists choices, and
// broadcasts changes to subscribers. Safe for concurrent use.
type Manager struct {
	supported []string
	index     map[string]struct{}
	def       string
	fallback  string
	store     Store
	sources   []Source
	log       *slog.Logger
	initial   string

	mu        sync.RWMutex
	current   string
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Manager during construction.
type Option func(*Manager) error

// WithSupported sets the ordered supported locale set. Codes are
// normalized and deduplicated; the first entry becomes the default unless
// WithDefault overrides it.
func WithSupported(locales ...string) Option {
	return func(m *Manager) error {
		for _, code := range locales {
			norm := Normalize(code)
			if norm == "" {
				continue
			}
			if _, ok := m.index[norm]; ok {
				continue
			}
			m.index[norm] = struct{}{}
			m.supported = append(m.supported, norm)
		}
		return nil
	}
}

// WithDefault sets the default locale. Must be in the supported set.
func WithDefault(code string) Option {
	return func(m *Manager) error {
		m.def = Normalize(code)
		return nil
	}
}

// WithFallback sets the locale used when detection fails and as the
// ResetToDefault target. Defaults to the default locale. Must be in the
// supported set.
func WithFallback(code string) Option {
	return func(m *Manager) error {
		m.fallback = Normalize(code)
		return nil
	}
}

// WithInitial sets an explicit startup locale, taking priority over the
// persisted and detected candidates. An unsupported code is skipped, not
// an error, so deployments can pass user input here safely.
func WithInitial(code string) Option {
	return func(m *Manager) error {
		m.initial = code
		return nil
	}
}

// WithStore attaches a persistence backend consulted at startup and
// written on every successful SetLocale.
func WithStore(store Store) Option {
	return func(m *Manager) error {
		m.store = store
		return nil
	}
}

// WithDetectionSources replaces the default host-signal detection chain
// (environment variables).
func WithDetectionSources(sources ...Source) Option {
	return func(m *Manager) error {
		m.sources = sources
		return nil
	}
}

// WithLogger attaches a logger for persistence and listener diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) error {
		if log != nil {
			m.log = log
		}
		return nil
	}
}

// NewManager creates a Manager and resolves its startup locale through the
// priority chain: explicit initial, persisted value, detected host
// preference, configured default. Each candidate is normalized and must be
// in the supported set to win.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		index:   make(map[string]struct{}),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sources: []Source{FromEnv()},
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(m.supported) == 0 {
		return nil, ErrNoSupportedLocales
	}

	if m.def == "" {
		m.def = m.supported[0]
	} else if !m.has(m.def) {
		return nil, fmt.Errorf("%w: default %q is not in the supported set", ErrInvalidLocale, m.def)
	}

	if m.fallback == "" {
		m.fallback = m.def
	} else if !m.has(m.fallback) {
		return nil, fmt.Errorf("%w: fallback %q is not in the supported set", ErrInvalidLocale, m.fallback)
	}

	m.current = m.resolveStartup()
	return m, nil
}

// resolveStartup walks the startup priority chain. Store reads use a
// background context; store implementations carry their own timeouts.
func (m *Manager) resolveStartup() string {
	if norm := Normalize(m.initial); norm != "" && m.has(norm) {
		return norm
	}

	if m.store != nil {
		if persisted, ok := m.store.Get(context.Background()); ok {
			if norm := Normalize(persisted); m.has(norm) {
				return norm
			}
		}
	}

	if detected := m.detect(); detected != "" {
		return detected
	}

	return m.def
}

// Current returns the active locale.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsSupported reports whether the code, once normalized, is in the
// supported set.
func (m *Manager) IsSupported(code string) bool {
	return m.has(Normalize(code))
}

// Supported returns the supported locales in configuration order.
func (m *Manager) Supported() []string {
	return slices.Clone(m.supported)
}

// Default returns the configured default locale.
func (m *Manager) Default() string {
	return m.def
}

// Fallback returns the configured fallback locale.
func (m *Manager) Fallback() string {
	return m.fallback
}

// SetLocale switches the active locale. Unsupported codes return
// ErrInvalidLocale. Switching to the already-active locale is a complete
// no-op: nothing is persisted and no listener runs. Otherwise the change
// is persisted through the store (failure logged, never fatal) and every
// listener runs synchronously in subscription order; a panicking listener
// is recovered and logged so later listeners still run.
func (m *Manager) SetLocale(ctx context.Context, code string) error {
	norm := Normalize(code)
	if !m.has(norm) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, code)
	}

	m.mu.Lock()
	if norm == m.current {
		m.mu.Unlock()
		return nil
	}
	previous := m.current
	m.current = norm
	subs := slices.Clone(m.listeners)
	m.mu.Unlock()

	if m.store != nil && !m.store.Set(ctx, norm) {
		m.log.Warn("locale choice not persisted",
			slog.String("locale", norm),
		)
	}

	change := Change{
		ID:       uuid.New().String(),
		Previous: previous,
		Locale:   norm,
		At:       time.Now(),
	}
	for _, sub := range subs {
		m.notify(sub, change)
	}
	return nil
}

func (m *Manager) notify(sub subscription, change Change) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("locale listener panicked",
				slog.String("change_id", change.ID),
				slog.Any("panic", r),
			)
		}
	}()
	sub.fn(change)
}

// ResetToDefault switches to the configured fallback locale.
func (m *Manager) ResetToDefault(ctx context.Context) error {
	return m.SetLocale(ctx, m.fallback)
}

// Subscribe registers a listener for locale changes and returns its
// unsubscribe function. Listeners are notified in subscription order.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners = append(m.listeners, subscription{id: id, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listeners = slices.DeleteFunc(m.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

// DetectPreferred returns the first supported locale found in the
// detection sources, or the fallback locale when no source yields one.
func (m *Manager) DetectPreferred() string {
	if detected := m.detect(); detected != "" {
		return detected
	}
	return m.fallback
}

func (m *Manager) detect() string {
	for _, source := range m.sources {
		for _, candidate := range source() {
			if norm := Normalize(candidate); norm != "" && m.has(norm) {
				return norm
			}
		}
	}
	return ""
}

func (m *Manager) has(code string) bool {
	_, ok := m.index[code]
	return ok
}
