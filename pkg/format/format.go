package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// LocaleFormat holds the display conventions of one locale: number
// separators, currency placement, and date/time layouts. It is immutable
// after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSep     string
	thousandSep    string
	currencySymbol string
	currencyAfter  bool
	percentSymbol  string
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
}

// Option configures a LocaleFormat during construction.
type Option func(*LocaleFormat)

// New creates a LocaleFormat. Without options the result carries US
// English conventions.
func New(opts ...Option) *LocaleFormat {
	f := &LocaleFormat{
		decimalSep:     ".",
		thousandSep:    ",",
		currencySymbol: "$",
		percentSymbol:  "%",
		dateLayout:     "01/02/2006",
		timeLayout:     "3:04 PM",
		dateTimeLayout: "01/02/2006 3:04 PM",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) Option {
	return func(f *LocaleFormat) {
		f.decimalSep = sep
	}
}

// WithThousandSeparator sets the digit grouping separator.
func WithThousandSeparator(sep string) Option {
	return func(f *LocaleFormat) {
		f.thousandSep = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) Option {
	return func(f *LocaleFormat) {
		f.currencySymbol = symbol
	}
}

// WithCurrencyAfter places the currency symbol after the amount,
// separated by a space, as most European locales write it.
func WithCurrencyAfter() Option {
	return func(f *LocaleFormat) {
		f.currencyAfter = true
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) Option {
	return func(f *LocaleFormat) {
		f.percentSymbol = symbol
	}
}

// WithDateLayout sets the date layout (Go time layout string).
func WithDateLayout(layout string) Option {
	return func(f *LocaleFormat) {
		f.dateLayout = layout
	}
}

// WithTimeLayout sets the time layout (Go time layout string).
func WithTimeLayout(layout string) Option {
	return func(f *LocaleFormat) {
		f.timeLayout = layout
	}
}

// WithDateTimeLayout sets the combined date and time layout.
func WithDateTimeLayout(layout string) Option {
	return func(f *LocaleFormat) {
		f.dateTimeLayout = layout
	}
}

// FormatNumber renders n with the locale's separators. Fractions are
// rounded to two decimals and trailing zeros are dropped.
func (f *LocaleFormat) FormatNumber(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatFloat(math.Round(n*100)/100, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	out := f.group(intPart)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += f.decimalSep + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCurrency renders a money amount with exactly two decimals and
// the locale's symbol placement. The sign precedes the whole rendering.
func (f *LocaleFormat) FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(math.Round(amount*100)/100, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	num := f.group(intPart) + f.decimalSep + frac

	var out string
	if f.currencyAfter {
		out = num + " " + f.currencySymbol
	} else {
		out = f.currencySymbol + num
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders the ratio n as a percentage, rounded to one
// decimal: 0.125 becomes "12.5%".
func (f *LocaleFormat) FormatPercent(n float64) string {
	pct := n * 100
	neg := pct < 0
	if neg {
		pct = -pct
	}

	s := strconv.FormatFloat(math.Round(pct*10)/10, 'f', 1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	out := intPart
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += f.decimalSep + frac
	}
	if neg {
		out = "-" + out
	}
	return out + f.percentSymbol
}

// FormatDate renders t with the locale's date layout.
func (f *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(f.dateLayout)
}

// FormatTime renders t with the locale's time layout.
func (f *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(f.timeLayout)
}

// FormatDateTime renders t with the locale's combined layout.
func (f *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(f.dateTimeLayout)
}

// group inserts the thousand separator into a plain digit string.
func (f *LocaleFormat) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(f.thousandSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
