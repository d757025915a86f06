// Package format renders numbers, money, percentages, and timestamps
// with locale-specific display conventions.
//
// A LocaleFormat bundles the separators, currency placement, and time
// layouts of one locale:
//
//	f := format.DeDE()
//	f.FormatNumber(1234567.5)  // "1.234.567,5"
//	f.FormatCurrency(1234.5)   // "1.234,50 €"
//	f.FormatPercent(0.125)     // "12,5%"
//	f.FormatDate(t)            // "23.08.2026"
//
// Predefined formats exist for common locales (EnUS, EnGB, DeDE, FrFR,
// EsES, PtBR, JaJP, ZhCN, KoKR, PlPL, RuRU, ArSA); ForLocale picks one
// by primary language subtag. Custom conventions are assembled with New:
//
//	f := format.New(
//		format.WithDecimalSeparator(","),
//		format.WithCurrencySymbol("Kč"),
//		format.WithCurrencyAfter(),
//	)
//
// The package holds no locale state and does no tag matching beyond the
// primary subtag; it is the display layer under the translator's
// FormatNumber, FormatCurrency, and FormatDate helpers.
package format
