package bundle

import "strings"

// Template is a bundle path pattern expanded per (locale, namespace).
// Two placeholder pairs are recognized and interchangeable:
// {{locale}}/{{namespace}} and the shorter {{lng}}/{{ns}}.
type Template string

// DefaultTemplate lays bundles out as one file per namespace inside a
// locale directory.
const DefaultTemplate Template = "{{locale}}/{{namespace}}.json"

// Expand substitutes the locale and namespace placeholders.
func (t Template) Expand(locale, namespace string) string {
	return strings.NewReplacer(
		"{{locale}}", locale,
		"{{namespace}}", namespace,
		"{{lng}}", locale,
		"{{ns}}", namespace,
	).Replace(string(t))
}
