package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// multipliers maps recognized magnitude suffixes to scale factors. Longer
// suffixes are listed first so "bn" is not consumed as "b" + garbage.
var multipliers = []struct {
	suffix string
	factor decimal.Decimal
}{
	{"billion", decimal.New(1, 9)},
	{"million", decimal.New(1, 6)},
	{"thousand", decimal.New(1, 3)},
	{"bn", decimal.New(1, 9)},
	{"mn", decimal.New(1, 6)},
	{"b", decimal.New(1, 9)},
	{"m", decimal.New(1, 6)},
	{"k", decimal.New(1, 3)},
}

// parseAmount coerces an upstream value into an exact decimal amount.
// Accepts native numbers and strings like "£1,234.56", "50m", "2.5bn",
// "(5,000)". Returns an error for anything ambiguous or non-numeric.
func parseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("non-finite number %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case float32:
		return parseAmount(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return parseAmountString(n.String())
	case string:
		return parseAmountString(n)
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", v)
	}
}

func parseAmountString(s string) (decimal.Decimal, error) {
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	// Accounting-style negatives: "(5,000)" means -5000.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	// Strip currency symbols, separators and stray whitespace.
	replacer := strings.NewReplacer(
		"£", "", "$", "", "€", "",
		"gbp", "", "usd", "", "eur", "",
		",", "", " ", "", " ", "",
	)
	s = strings.TrimSpace(replacer.Replace(s))

	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	factor := decimal.New(1, 0)
	for _, m := range multipliers {
		if strings.HasSuffix(s, m.suffix) {
			factor = m.factor
			s = strings.TrimSpace(strings.TrimSuffix(s, m.suffix))
			break
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable amount %q", orig)
	}
	d = d.Mul(factor)
	if negative {
		d = d.Neg()
	}
	return d, nil
}
