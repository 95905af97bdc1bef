package template

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols maps ISO codes to display symbols. Unknown currencies fall
// back to "<code> " as a prefix.
var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
}

// notApplicable renders a null amount.
const notApplicable = "—"

// FormatAmount renders an amount with a currency symbol, thousands
// separators and two decimal places, e.g. "£120,000,000.00". Negative
// amounts carry a leading minus: "-£8,000,000.00". A nil amount renders as a
// dash.
func FormatAmount(amount *decimal.Decimal, currency string) string {
	if amount == nil {
		return notApplicable
	}

	sign := ""
	d := *amount
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return sign + symbol + groupThousands(d.StringFixed(2))
}

// groupThousands inserts commas into the integer part of a fixed-point
// string: "1234567.89" -> "1,234,567.89".
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i, ch := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
