package g11n

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the translation setup. Every field maps to an environment
// variable so deployments can configure locales without code changes;
// collaborators that cannot be expressed as env values (loader, store,
// logger) are supplied through options on New.
type Config struct {
	// DefaultLocale is the locale used when nothing else resolves one.
	DefaultLocale string `env:"G11N_DEFAULT_LOCALE" envDefault:"en"`

	// SupportedLocales is the ordered set of locales the instance accepts.
	// Defaults to the default locale alone.
	SupportedLocales []string `env:"G11N_SUPPORTED_LOCALES" envSeparator:","`

	// FallbackLocale is retried when a key is unresolved at the requested
	// locale. Defaults to the default locale.
	FallbackLocale string `env:"G11N_FALLBACK_LOCALE"`

	// Namespaces lists the bundles preloaded on locale switches.
	// Defaults to the default namespace alone.
	Namespaces []string `env:"G11N_NAMESPACES" envSeparator:","`

	// DefaultNamespace is the bundle used when a translate call names none.
	DefaultNamespace string `env:"G11N_DEFAULT_NAMESPACE" envDefault:"common"`

	// BundlePath is the path template handed to path-based loaders,
	// e.g. "locales/{{locale}}/{{namespace}}.json".
	BundlePath string `env:"G11N_BUNDLE_PATH"`

	// InterpolationPrefix and InterpolationSuffix delimit placeholders in
	// translation templates.
	InterpolationPrefix string `env:"G11N_INTERPOLATION_PREFIX" envDefault:"{{"`
	InterpolationSuffix string `env:"G11N_INTERPOLATION_SUFFIX" envDefault:"}}"`

	// DisableEscaping turns off HTML escaping of interpolated values.
	// Escaping is on by default so the zero value stays display-safe.
	DisableEscaping bool `env:"G11N_DISABLE_ESCAPING"`

	// SimplifyPluralSuffix is accepted for bundle-format compatibility.
	// It is parsed and stored but not acted on.
	SimplifyPluralSuffix bool `env:"G11N_SIMPLIFY_PLURAL_SUFFIX"`

	// Debug enables verbose resolution diagnostics. It never changes
	// resolution outcomes.
	Debug bool `env:"G11N_DEBUG"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("g11n: parse config: %w", err)
	}
	return cfg, nil
}
