package plural

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Table holds the plural alternatives stored under a single translation
// key. Forms maps CLDR form names, exact counts ("3"), or count intervals
// ("2-5", "11+") to templates. Contexts maps grammatical context names
// (e.g. gender) to their own form sets.
type Table struct {
	Forms    map[string]string
	Contexts map[string]map[string]string
}

// Option configures a single Resolve call.
type Option func(*resolveOptions)

type resolveOptions struct {
	context string
	ordinal bool
}

// Ordinal selects ordinal plural rules (1st, 2nd, 3rd) instead of cardinal.
func Ordinal() Option {
	return func(o *resolveOptions) {
		o.ordinal = true
	}
}

// Context selects the named grammatical context's form set when the
// table defines one.
func Context(name string) Option {
	return func(o *resolveOptions) {
		o.context = name
	}
}

// Resolve selects the template for count. The first match wins:
//
//  1. A form key exactly equal to the decimal count ("3" for count 3,
//     "-1" for count -1).
//  2. An interval key containing the count: "2-5" (inclusive bounds) or
//     "11+" (open-ended minimum).
//  3. The requested grammatical context's form set, selected by exact
//     count and CLDR rule. Interval overrides apply at the outer level
//     alone and are not re-checked inside a context.
//  4. The CLDR form for (locale, count), then "other" when the specific
//     form is absent.
//
// When nothing matches, Resolve returns the count in decimal form so the
// caller always receives displayable text.
func (t Table) Resolve(locale string, count int, opts ...Option) string {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if s, ok := t.Forms[strconv.Itoa(count)]; ok {
		return s
	}
	if s, ok := matchInterval(t.Forms, count); ok {
		return s
	}

	if o.context != "" {
		if forms, ok := t.Contexts[o.context]; ok {
			if s, ok := forms[strconv.Itoa(count)]; ok {
				return s
			}
			return selectForm(locale, count, forms, o.ordinal)
		}
	}

	return selectForm(locale, count, t.Forms, o.ordinal)
}

// selectForm applies CLDR form selection: the rule's form for the count,
// then "other", then the literal count.
func selectForm(locale string, count int, forms map[string]string, ordinal bool) string {
	rule := RuleFor(locale)
	if ordinal {
		rule = OrdinalRuleFor(locale)
	}

	form := rule(count)
	if s, ok := forms[string(form)]; ok {
		return s
	}
	if form != Other {
		if s, ok := forms[string(Other)]; ok {
			return s
		}
	}
	return strconv.Itoa(count)
}

// matchInterval scans interval keys and returns the template of the first
// interval containing count. Map iteration order is not deterministic, so
// candidates are ordered by lower bound before checking.
func matchInterval(forms map[string]string, count int) (string, bool) {
	type span struct {
		value  string
		lo, hi int
	}

	var spans []span
	for key, value := range forms {
		lo, hi, ok := parseInterval(key)
		if !ok {
			continue
		}
		spans = append(spans, span{value: value, lo: lo, hi: hi})
	}
	if len(spans) == 0 {
		return "", false
	}

	slices.SortFunc(spans, func(a, b span) int {
		if a.lo != b.lo {
			return a.lo - b.lo
		}
		return a.hi - b.hi
	})

	for _, s := range spans {
		if count >= s.lo && count <= s.hi {
			return s.value, true
		}
	}
	return "", false
}

// parseInterval recognizes "A-B" (inclusive range) and "N+" (open-ended
// minimum) keys. Form names, exact counts, and malformed ranges report ok
// as false.
func parseInterval(key string) (lo, hi int, ok bool) {
	if n, found := strings.CutSuffix(key, "+"); found {
		v, err := strconv.Atoi(n)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		return v, math.MaxInt, true
	}

	a, b, found := strings.Cut(key, "-")
	if !found {
		return 0, 0, false
	}
	loV, err := strconv.Atoi(a)
	if err != nil || loV < 0 {
		return 0, 0, false
	}
	hiV, err := strconv.Atoi(b)
	if err != nil || hiV < loV {
		return 0, 0, false
	}
	return loV, hiV, true
}
