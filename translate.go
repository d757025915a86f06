package g11n

import (
	"log/slog"
	"maps"

	"github.com/Apollo-Deploy/g11n/pkg/bundle"
	"github.com/Apollo-Deploy/g11n/pkg/locale"
	"github.com/Apollo-Deploy/g11n/pkg/plural"
)

// M is a convenience type for interpolation variable bags. Values may nest
// further string-keyed maps; placeholders address them with dot paths.
type M map[string]any

// TranslateOption configures a single translate call.
type TranslateOption func(*translateOptions)

type translateOptions struct {
	bag        M
	vars       M
	context    string
	defaultVal string
	namespace  string
	count      int
	hasCount   bool
	hasBag     bool
	hasDefault bool
	ordinal    bool
}

// WithCount routes resolution through pluralization and injects count as
// an interpolation variable.
func WithCount(n int) TranslateOption {
	return func(o *translateOptions) {
		o.count = n
		o.hasCount = true
	}
}

// WithOrdinal selects ordinal plural rules (1st, 2nd, 3rd) instead of
// cardinal. Only meaningful together with WithCount.
func WithOrdinal() TranslateOption {
	return func(o *translateOptions) {
		o.ordinal = true
	}
}

// WithContext selects a grammatical context's form set (e.g. gender) when
// the translation defines one.
func WithContext(name string) TranslateOption {
	return func(o *translateOptions) {
		o.context = name
	}
}

// WithDefault sets the string returned when the key is unresolved in both
// the requested and fallback locales. The default is interpolated with the
// same variable bag as a resolved translation.
func WithDefault(value string) TranslateOption {
	return func(o *translateOptions) {
		o.defaultVal = value
		o.hasDefault = true
	}
}

// WithNamespace targets a namespace other than the configured default.
func WithNamespace(ns string) TranslateOption {
	return func(o *translateOptions) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithVars supplies the interpolation variable bag verbatim, including
// nested maps for dot-path placeholders. When present, variables added
// through WithVar are ignored.
func WithVars(vars M) TranslateOption {
	return func(o *translateOptions) {
		o.bag = vars
		o.hasBag = true
	}
}

// WithVar adds a single interpolation variable. Repeat for several;
// convenient when a call has no need for a nested bag.
func WithVar(name string, value any) TranslateOption {
	return func(o *translateOptions) {
		if o.vars == nil {
			o.vars = make(M)
		}
		o.vars[name] = value
	}
}

// variables assembles the interpolation bag for one call. A count is
// injected first so explicit variables can override it.
func (o *translateOptions) variables() map[string]any {
	out := make(map[string]any)
	if o.hasCount {
		out["count"] = o.count
	}
	if o.hasBag {
		maps.Copy(out, o.bag)
		return out
	}
	maps.Copy(out, o.vars)
	return out
}

// T resolves key at the current locale.
func (g *G11n) T(key string, opts ...TranslateOption) string {
	return g.Translate(g.manager.Current(), key, opts...)
}

// THTML resolves key at the current locale and sanitizes the result, for
// translations that carry HTML markup.
func (g *G11n) THTML(key string, opts ...TranslateOption) string {
	return g.rich.Sanitize(g.T(key, opts...))
}

// TMarkdown resolves key at the current locale and renders the result
// from markdown to sanitized HTML.
func (g *G11n) TMarkdown(key string, opts ...TranslateOption) string {
	return g.rich.Render(g.T(key, opts...))
}

// Translate resolves key at the given locale into a display string. An
// empty locale means the current one.
//
// With a count option the raw leaf drives resolution: a plain string skips
// pluralization, a plural-form table goes through CLDR selection with
// exact-count and interval overrides, and the count joins the variable bag.
// Without a count only plain string leaves resolve.
//
// A key unresolved at the requested locale is retried once at the fallback
// locale. If both miss, the default value (when set) or the literal key is
// returned and a missing-translation diagnostic is emitted. Translate never
// fails: some displayable string always comes back.
func (g *G11n) Translate(loc, key string, opts ...TranslateOption) string {
	var o translateOptions
	for _, opt := range opts {
		opt(&o)
	}

	namespace := o.namespace
	if namespace == "" {
		namespace = g.defaultNS
	}

	norm := locale.Normalize(loc)
	if norm == "" {
		norm = g.manager.Current()
	}

	if s, ok := g.resolveAt(norm, namespace, key, &o); ok {
		return s
	}

	if fb := g.manager.Fallback(); fb != "" && fb != norm {
		if s, ok := g.resolveAt(fb, namespace, key, &o); ok {
			return s
		}
	}

	if g.missingTranslation != nil {
		g.missingTranslation(norm, namespace, key)
	}
	g.log.Debug("translation missing",
		slog.String("locale", norm),
		slog.String("namespace", namespace),
		slog.String("key", key),
	)

	if o.hasDefault {
		return g.interp.Interpolate(o.defaultVal, o.variables())
	}
	return key
}

// resolveAt runs the single-locale resolution procedure: lookup, optional
// pluralization, interpolation. It reports false when the key does not
// resolve at this locale so the caller can continue the fallback chain.
func (g *G11n) resolveAt(loc, namespace, key string, o *translateOptions) (string, bool) {
	if !o.hasCount {
		s, ok := g.cache.Translation(loc, namespace, key)
		if !ok {
			return "", false
		}
		return g.interp.Interpolate(s, o.variables()), true
	}

	leaf := g.cache.Raw(loc, namespace, key)
	switch leaf.Kind {
	case bundle.LeafString:
		return g.interp.Interpolate(leaf.Str, o.variables()), true

	case bundle.LeafForms, bundle.LeafContext:
		table := plural.Table{Forms: leaf.Forms, Contexts: leaf.Context}

		var popts []plural.Option
		if o.ordinal {
			popts = append(popts, plural.Ordinal())
		}
		if o.context != "" {
			popts = append(popts, plural.Context(o.context))
		}

		template := table.Resolve(loc, o.count, popts...)
		return g.interp.Interpolate(template, o.variables()), true
	}
	return "", false
}
