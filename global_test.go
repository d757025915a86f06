package g11n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apollo-Deploy/g11n/pkg/bundle"
)

// resetDefault isolates package-level state per test. These tests stay
// sequential: the default instance is process-wide.
func resetDefault(t *testing.T) {
	t.Helper()
	prev := defaultInstance.Load()
	defaultInstance.Store(nil)
	t.Cleanup(func() {
		if prev != nil {
			defaultInstance.Store(prev)
		} else {
			defaultInstance.Store(nil)
		}
	})
}

func globalFixture() (Config, []Option) {
	data := map[string]map[string]map[string]any{
		"en": {"common": {"greeting": map[string]any{"plain": "Welcome"}}},
		"fr": {"common": {"greeting": map[string]any{"plain": "Bienvenue"}}},
	}
	cfg := Config{
		DefaultLocale:    "en",
		SupportedLocales: []string{"en", "fr"},
	}
	opts := []Option{
		WithLoader(bundle.Static(data)),
		WithDetectionSources(),
	}
	return cfg, opts
}

func TestDefaultPanicsBeforeInit(t *testing.T) {
	resetDefault(t)

	assert.PanicsWithValue(t, "g11n: not initialized", func() {
		Default()
	})
	assert.PanicsWithValue(t, "g11n: not initialized", func() {
		T("greeting.plain")
	})
}

func TestInit(t *testing.T) {
	resetDefault(t)

	cfg, opts := globalFixture()
	require.NoError(t, Init(cfg, opts...))

	require.NotNil(t, Default())
	require.NoError(t, Preload(context.Background(), ""))
	require.NoError(t, Preload(context.Background(), "fr"))

	assert.Equal(t, "en", CurrentLocale())
	assert.Equal(t, "Welcome", T("greeting.plain"))
	assert.Equal(t, "Bienvenue", Translate("fr", "greeting.plain"))
}

func TestInitOnlyOnce(t *testing.T) {
	resetDefault(t)

	cfg, opts := globalFixture()
	require.NoError(t, Init(cfg, opts...))
	require.ErrorIs(t, Init(cfg, opts...), ErrAlreadyInitialized)
}

func TestInitFailureLeavesUninitialized(t *testing.T) {
	resetDefault(t)

	require.ErrorIs(t, Init(Config{}), ErrNilLoader)
	assert.Panics(t, func() { Default() })

	// A failed Init does not consume the single initialization.
	cfg, opts := globalFixture()
	require.NoError(t, Init(cfg, opts...))
}

func TestGlobalLocaleOperations(t *testing.T) {
	resetDefault(t)

	cfg, opts := globalFixture()
	require.NoError(t, Init(cfg, opts...))

	var changes []Change
	unsubscribe := Subscribe(func(c Change) { changes = append(changes, c) })
	defer unsubscribe()

	require.NoError(t, SetLocale(context.Background(), "fr"))
	assert.Equal(t, "fr", CurrentLocale())
	assert.Equal(t, "Bienvenue", T("greeting.plain"))
	require.Len(t, changes, 1)

	require.NoError(t, ResetToDefault(context.Background()))
	assert.Equal(t, "en", CurrentLocale())

	assert.Equal(t, "en", DetectPreferred())
}
