package interpolate

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// Interpolator substitutes named placeholders in template strings with
// values from a nested variable bag. Configure once with New; an
// Interpolator is immutable and safe for concurrent use.
type Interpolator struct {
	log            *slog.Logger
	missingHandler func(name string)
	prefix         string
	suffix         string
	escape         bool
}

// Option configures an Interpolator.
type Option func(*Interpolator)

// WithDelimiters replaces the default {{ and }} placeholder delimiters.
// Empty delimiters are ignored.
func WithDelimiters(prefix, suffix string) Option {
	return func(ip *Interpolator) {
		if prefix != "" && suffix != "" {
			ip.prefix = prefix
			ip.suffix = suffix
		}
	}
}

// WithoutEscaping disables HTML escaping of substituted values.
func WithoutEscaping() Option {
	return func(ip *Interpolator) {
		ip.escape = false
	}
}

// WithMissingHandler registers a callback invoked once per distinct
// placeholder left unresolved during an Interpolate call.
func WithMissingHandler(fn func(name string)) Option {
	return func(ip *Interpolator) {
		ip.missingHandler = fn
	}
}

// WithLogger attaches a logger for missing-variable diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(ip *Interpolator) {
		ip.log = log
	}
}

// New creates an Interpolator. Defaults: {{ and }} delimiters, escaping on.
func New(opts ...Option) *Interpolator {
	ip := &Interpolator{
		prefix: "{{",
		suffix: "}}",
		escape: true,
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Interpolate replaces each delimiter-bounded placeholder in template with
// the value found at the placeholder's dot-separated path inside values.
// Placeholder names are trimmed of surrounding whitespace before lookup, so
// {{ name }} and {{name}} are equivalent.
//
// A placeholder whose path cannot be resolved (absent segment, non-map
// intermediate node, or nil value) stays in the output verbatim and is
// reported through the missing handler and logger, once per distinct name.
// Resolved values are stringified in their default textual form and, when
// escaping is enabled, HTML-escaped via Escape. A template without
// placeholders is returned unchanged.
func (ip *Interpolator) Interpolate(template string, values map[string]any) string {
	if !strings.Contains(template, ip.prefix) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + len(template)/4)

	var missing []string
	seen := make(map[string]bool)

	rest := template
	for {
		start := strings.Index(rest, ip.prefix)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])

		after := rest[start+len(ip.prefix):]
		end := strings.Index(after, ip.suffix)
		if end < 0 {
			// Unterminated placeholder, keep the remainder as-is.
			b.WriteString(rest[start:])
			break
		}

		raw := after[:end]
		rest = after[end+len(ip.suffix):]

		name := strings.TrimSpace(raw)
		value, ok := lookup(values, name)
		if name == "" || !ok {
			b.WriteString(ip.prefix)
			b.WriteString(raw)
			b.WriteString(ip.suffix)
			if name != "" && !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
			continue
		}

		s := fmt.Sprintf("%v", value)
		if ip.escape {
			s = Escape(s)
		}
		b.WriteString(s)
	}

	for _, name := range missing {
		if ip.missingHandler != nil {
			ip.missingHandler(name)
		}
		if ip.log != nil {
			ip.log.Warn("missing interpolation variable", slog.String("variable", name))
		}
	}

	return b.String()
}

// escaper rewrites characters that carry meaning in HTML. Each input
// character is replaced exactly once: an ampersand inside an existing
// character reference gets escaped itself, the reference is not expanded.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
)

// Escape replaces & < > " ' / with their HTML character references.
func Escape(s string) string {
	return escaper.Replace(s)
}

// lookup descends a dot-separated path through nested string-keyed maps.
// Any absent segment, non-map intermediate node, or nil result reports
// ok as false.
func lookup(values map[string]any, path string) (any, bool) {
	var current any = values
	for _, segment := range strings.Split(path, ".") {
		next, ok := index(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// index reads key from a string-keyed map node. Named map types such as
// the M convenience type carry their own dynamic type inside an interface
// value, so anything beyond the two common shapes goes through reflection.
func index(node any, key string) (any, bool) {
	switch m := node.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	// Named key types need the conversion; MapIndex panics on a plain
	// string otherwise.
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}
