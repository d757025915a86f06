// Package interpolate substitutes named placeholders in translation
// templates with values from a nested variable bag.
//
// Placeholders are delimiter-bounded names, {{name}} by default. Names may
// be dot-separated paths resolved through nested maps:
//
//	ip := interpolate.New()
//	ip.Interpolate("Hello, {{user.name}}!", map[string]any{
//		"user": map[string]any{"name": "Ada"},
//	})
//	// "Hello, Ada!"
//
// Substituted values are HTML-escaped unless escaping is disabled:
//
//	ip.Interpolate("{{x}}", map[string]any{"x": "<b>"})
//	// "&lt;b&gt;"
//
//	raw := interpolate.New(interpolate.WithoutEscaping())
//	raw.Interpolate("{{x}}", map[string]any{"x": "<b>"})
//	// "<b>"
//
// A placeholder that cannot be resolved stays in the output verbatim, so a
// display string is always produced; unresolved names are reported through
// an optional handler and logger instead of errors:
//
//	ip := interpolate.New(interpolate.WithMissingHandler(func(name string) {
//		metrics.MissingVariable(name)
//	}))
//	ip.Interpolate("Hello, {{name}}!", nil)
//	// "Hello, {{name}}!" and the handler receives "name"
//
// Delimiters are configurable for templates whose host format already uses
// braces:
//
//	ip := interpolate.New(interpolate.WithDelimiters("%(", ")"))
//	ip.Interpolate("Hi %(name)", map[string]any{"name": "Ada"})
package interpolate
