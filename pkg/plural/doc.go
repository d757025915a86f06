// Package plural selects grammatically correct plural forms for counts
// using CLDR-style rules grouped by language family.
//
// The package has no dependencies and no state. It covers both cardinal
// ("1 item", "2 items") and ordinal ("1st", "2nd", "3rd") selection, and
// resolves plural form tables that may carry exact-count and interval
// overrides alongside the CLDR form names.
//
// # Rules
//
// A Rule maps a count to one of the six CLDR categories (zero, one, two,
// few, many, other). Rules are grouped by family rather than by full
// locale tag; RuleFor and OrdinalRuleFor pick the family from the
// two-letter primary language code:
//
//	plural.RuleFor("en")(1)         // plural.One
//	plural.RuleFor("fr")(0)         // plural.One (zero is singular in French)
//	plural.RuleFor("ar")(5)         // plural.Few
//	plural.OrdinalRuleFor("en")(23) // plural.Few (23rd)
//
// Unknown languages fall back to the English rules.
//
// # Form tables
//
// A Table holds the alternatives stored under one translation key and
// resolves a count against them:
//
//	t := plural.Table{Forms: map[string]string{
//		"one":   "{{count}} item",
//		"other": "{{count}} items",
//		"0":     "No items yet",
//		"100+":  "Hundreds of items",
//	}}
//
//	t.Resolve("en", 1)   // "{{count}} item"
//	t.Resolve("en", 0)   // "No items yet" (exact override wins)
//	t.Resolve("en", 250) // "Hundreds of items" (interval override)
//
// Exact counts ("0", "3") and intervals ("2-5", "11+") take precedence
// over CLDR selection so copy writers can special-case counts directly in
// translation files. Grammatical contexts (e.g. gender) nest a second
// level of form tables and are selected per call:
//
//	t.Resolve("en", 2, plural.Context("female"))
//
// # Form enumeration
//
// Forms and HasForm report which categories a rule distinguishes by
// probing a fixed set of representative counts:
//
//	plural.Forms(plural.RuleFor("ar")) // [zero one two few many other]
//	plural.Forms(plural.RuleFor("ja")) // [other]
package plural
