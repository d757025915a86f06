package g11n

import (
	"time"

	"github.com/Apollo-Deploy/g11n/pkg/format"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
)

// Translator binds a locale and namespace so call sites translate with
// just a key. Handlers typically receive one per request from the locale
// middleware.
type Translator struct {
	g         *G11n
	locale    string
	namespace string
}

// Translator returns a bound translator. An empty locale means the current
// one; an empty namespace means the configured default.
func (g *G11n) Translator(loc, namespace string) *Translator {
	norm := locale.Normalize(loc)
	if norm == "" {
		norm = g.manager.Current()
	}
	if namespace == "" {
		namespace = g.defaultNS
	}
	return &Translator{
		g:         g,
		locale:    norm,
		namespace: namespace,
	}
}

// T translates a key in the bound locale and namespace. Per-call options
// may still override either.
func (t *Translator) T(key string, opts ...TranslateOption) string {
	bound := append([]TranslateOption{WithNamespace(t.namespace)}, opts...)
	return t.g.Translate(t.locale, key, bound...)
}

// Tn translates a key with pluralization for n.
func (t *Translator) Tn(key string, n int, opts ...TranslateOption) string {
	return t.T(key, append([]TranslateOption{WithCount(n)}, opts...)...)
}

// THTML translates a key and sanitizes the result, for translations that
// carry HTML markup.
func (t *Translator) THTML(key string, opts ...TranslateOption) string {
	return t.g.rich.Sanitize(t.T(key, opts...))
}

// TMarkdown translates a key and renders the result from markdown to
// sanitized HTML.
func (t *Translator) TMarkdown(key string, opts ...TranslateOption) string {
	return t.g.rich.Render(t.T(key, opts...))
}

// Format returns the display format for the bound locale.
func (t *Translator) Format() *format.LocaleFormat {
	return t.g.FormatFor(t.locale)
}

// FormatNumber formats a number with the bound locale's separators.
func (t *Translator) FormatNumber(n float64) string {
	return t.Format().FormatNumber(n)
}

// FormatCurrency formats an amount with the bound locale's currency
// symbol and placement.
func (t *Translator) FormatCurrency(amount float64) string {
	return t.Format().FormatCurrency(amount)
}

// FormatPercent formats a ratio as a percentage in the bound locale.
func (t *Translator) FormatPercent(ratio float64) string {
	return t.Format().FormatPercent(ratio)
}

// FormatDate formats a date in the bound locale's convention.
func (t *Translator) FormatDate(tm time.Time) string {
	return t.Format().FormatDate(tm)
}

// FormatTime formats a time of day in the bound locale's convention.
func (t *Translator) FormatTime(tm time.Time) string {
	return t.Format().FormatTime(tm)
}

// FormatDateTime formats a date with time in the bound locale's
// convention.
func (t *Translator) FormatDateTime(tm time.Time) string {
	return t.Format().FormatDateTime(tm)
}

// Locale returns the bound locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Namespace returns the bound namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}
