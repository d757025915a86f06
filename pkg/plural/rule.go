package plural

import "strings"

// Form identifies a CLDR plural category.
type Form string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  Form = "zero"
	One   Form = "one"
	Two   Form = "two"
	Few   Form = "few"
	Many  Form = "many"
	Other Form = "other"
)

// Rule maps a count to the plural form a language uses for it.
// Rules operate on the absolute value of the count, so -1 selects
// the same form as 1.
type Rule func(n int) Form

// English implements cardinal rules for English.
// Categories: one (1), other (everything else including 0).
var English Rule = func(n int) Form {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// EnglishOrdinal implements ordinal rules for English (1st, 2nd, 3rd, 4th).
// The teens 11-13 take "other" despite ending in 1-3.
var EnglishOrdinal Rule = func(n int) Form {
	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return One
	case mod10 == 2 && mod100 != 12:
		return Two
	case mod10 == 3 && mod100 != 13:
		return Few
	default:
		return Other
	}
}

// French implements cardinal rules for French and similar Romance
// languages (Italian, Portuguese). Zero is singular.
// Categories: one (0, 1), other.
var French Rule = func(n int) Form {
	if absN := abs(n); absN == 0 || absN == 1 {
		return One
	}
	return Other
}

// FrenchOrdinal implements ordinal rules for French (1er, 2e, 3e).
// Categories: one (1), other.
var FrenchOrdinal Rule = func(n int) Form {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// Spanish implements cardinal rules for Spanish.
// Categories: one (1), other.
var Spanish Rule = func(n int) Form {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// Germanic implements cardinal rules for Germanic languages other than
// English (German, Dutch, Swedish, Norwegian, Danish). The cardinal rule
// matches English, but ordinals do not inflect.
// Categories: one (1), other.
var Germanic Rule = func(n int) Form {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// Slavic implements cardinal rules for Slavic languages
// (Polish, Russian, Ukrainian, Czech, Croatian, Serbian, etc.).
// Categories: one, few, many.
var Slavic Rule = func(n int) Form {
	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return One
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return Few
	default:
		return Many
	}
}

// Asian implements cardinal rules for languages that do not
// distinguish plural forms (Japanese, Chinese, Korean, Thai,
// Vietnamese, Indonesian, Malay).
// Categories: other.
var Asian Rule = func(_ int) Form {
	return Other
}

// Arabic implements the full six-category cardinal rules for Arabic.
// Categories: zero (0), one (1), two (2), few (3-10 mod 100),
// many (11-99 mod 100), other.
var Arabic Rule = func(n int) Form {
	absN := abs(n)

	switch {
	case absN == 0:
		return Zero
	case absN == 1:
		return One
	case absN == 2:
		return Two
	}

	mod100 := absN % 100

	if mod100 >= 3 && mod100 <= 10 {
		return Few
	}
	if mod100 >= 11 && mod100 <= 99 {
		return Many
	}
	return Other
}

// otherOnly serves as the ordinal rule for families whose ordinals
// do not inflect.
var otherOnly Rule = func(_ int) Form {
	return Other
}

// RuleFor returns the cardinal plural rule for a locale. It matches on
// the two-letter primary language tag (e.g. "en", "fr", "pl") and is
// case-insensitive, so "en-US" and "EN" both resolve the English rule.
// Unknown languages fall back to the English rule.
func RuleFor(locale string) Rule {
	switch family(locale) {
	case "fr", "it", "pt":
		return French
	case "es":
		return Spanish
	case "de", "nl", "sv", "no", "da", "is":
		return Germanic
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return Slavic
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return Asian
	case "ar":
		return Arabic
	default:
		return English
	}
}

// OrdinalRuleFor returns the ordinal plural rule for a locale. Among the
// known families only English and the French-like Romance languages
// inflect ordinals. Unknown languages fall back to the English ordinal
// rule, matching the cardinal fallback.
func OrdinalRuleFor(locale string) Rule {
	switch family(locale) {
	case "fr", "it", "pt":
		return FrenchOrdinal
	case "es", "de", "nl", "sv", "no", "da", "is",
		"pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg",
		"ja", "zh", "ko", "th", "vi", "id", "ms",
		"ar":
		return otherOnly
	default:
		return EnglishOrdinal
	}
}

// family reduces a locale code to its lowercase primary language tag.
func family(locale string) string {
	if len(locale) >= 2 {
		locale = locale[:2]
	}
	return strings.ToLower(locale)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
