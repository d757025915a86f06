package format

import "strings"

// EnUS returns the format for US English (the construction default).
func EnUS() *LocaleFormat {
	return New()
}

// EnGB returns the format for British English.
func EnGB() *LocaleFormat {
	return New(
		WithCurrencySymbol("£"),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// DeDE returns the format for German.
func DeDE() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyAfter(),
		WithDateLayout("02.01.2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// FrFR returns the format for French.
func FrFR() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol("€"),
		WithCurrencyAfter(),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// EsES returns the format for European Spanish.
func EsES() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyAfter(),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// PtBR returns the format for Brazilian Portuguese.
func PtBR() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("R$"),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// JaJP returns the format for Japanese.
func JaJP() *LocaleFormat {
	return New(
		WithCurrencySymbol("¥"),
		WithDateLayout("2006/01/02"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("2006/01/02 15:04"),
	)
}

// ZhCN returns the format for Simplified Chinese.
func ZhCN() *LocaleFormat {
	return New(
		WithCurrencySymbol("¥"),
		WithDateLayout("2006-01-02"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("2006-01-02 15:04"),
	)
}

// KoKR returns the format for Korean.
func KoKR() *LocaleFormat {
	return New(
		WithCurrencySymbol("₩"),
		WithDateLayout("2006.01.02"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("2006.01.02 15:04"),
	)
}

// PlPL returns the format for Polish.
func PlPL() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol("zł"),
		WithCurrencyAfter(),
		WithDateLayout("02.01.2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// RuRU returns the format for Russian.
func RuRU() *LocaleFormat {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol("₽"),
		WithCurrencyAfter(),
		WithDateLayout("02.01.2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// ArSA returns the format for Arabic (Saudi Arabia).
func ArSA() *LocaleFormat {
	return New(
		WithCurrencySymbol("SAR"),
		WithCurrencyAfter(),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("3:04 PM"),
		WithDateTimeLayout("02/01/2006 3:04 PM"),
	)
}

// ForLocale returns the predefined format matching a locale's primary
// language subtag, falling back to EnUS for languages without an entry.
// The lookup is a plain subtag split; callers that need full BCP 47
// normalization should normalize before calling.
func ForLocale(code string) *LocaleFormat {
	lang := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(lang, "-_.@"); i >= 0 {
		lang = lang[:i]
	}

	switch lang {
	case "de":
		return DeDE()
	case "fr":
		return FrFR()
	case "es":
		return EsES()
	case "pt":
		return PtBR()
	case "ja":
		return JaJP()
	case "zh":
		return ZhCN()
	case "ko":
		return KoKR()
	case "pl":
		return PlPL()
	case "ru":
		return RuRU()
	case "ar":
		return ArSA()
	default:
		return EnUS()
	}
}
