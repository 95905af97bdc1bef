package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/extract"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// amountPart matches "£120m", "30,000,000", "2.5 billion" etc. Group 1 is
// the number, group 2 the magnitude suffix.
const amountPart = `(?:£|\$|€)?\s*(\d[\d,]*(?:\.\d+)?)\s*(billion|million|thousand|bn|mn|m|b|k)?`

// fieldPattern recognizes one capital component in free text, either as
// "<amount> <keyword>" or "<keyword> of <amount>".
type fieldPattern struct {
	field  extract.Field
	before *regexp.Regexp // amount precedes the keyword
	after  *regexp.Regexp // keyword precedes the amount
}

func newFieldPattern(field extract.Field, keywords string) fieldPattern {
	return fieldPattern{
		field:  field,
		before: regexp.MustCompile(`(?i)` + amountPart + `\s+(?:of\s+|in\s+)?(?:` + keywords + `)`),
		after:  regexp.MustCompile(`(?i)(?:` + keywords + `)\s+(?:of|totalling|worth|at)?\s*` + amountPart),
	}
}

// fieldPatterns lists the recognized components in extraction order. The
// keyword sets mirror the alias table in the extract package.
var fieldPatterns = []fieldPattern{
	newFieldPattern(extract.FieldOrdinaryShareCapital, `ordinary share capital|share capital|ordinary shares|paid-up capital`),
	newFieldPattern(extract.FieldRetainedEarnings, `retained earnings|retained profits|accumulated profits`),
	newFieldPattern(extract.FieldAT1Instruments, `at1 instruments|at1 capital|additional tier 1(?: instruments)?|at1`),
	newFieldPattern(extract.FieldTier2Instruments, `tier 2 instruments|tier 2 capital|tier2|subordinated debt`),
	newFieldPattern(extract.FieldIntangibleAssets, `intangible assets|intangibles|goodwill`),
	newFieldPattern(extract.FieldOtherDeductions, `other deductions|regulatory deductions`),
}

var isoDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

// RuleBased extracts capital figures from free text with fixed regular
// expressions. It is the fallback when no hosted model is configured, and
// doubles as a deterministic fixture in tests.
type RuleBased struct{}

// NewRuleBased returns the rule-based generator.
func NewRuleBased() *RuleBased { return &RuleBased{} }

// Generate scans the query for capital components. Matched amounts are
// emitted as text fragments (e.g. "120m"); the extractor performs the
// numeric coercion. Passages are accepted for interface compatibility but
// not consulted.
func (g *RuleBased) Generate(ctx context.Context, query string, _ []model.Passage) (extract.RawGuess, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	guess := extract.RawGuess{}
	for _, p := range fieldPatterns {
		if amount, ok := p.match(query); ok {
			guess[string(p.field)] = amount
		}
	}
	if m := isoDatePattern.FindStringSubmatch(query); m != nil {
		guess[string(extract.FieldReportingDate)] = m[1]
	}
	if c := detectCurrency(query); c != "" {
		guess[string(extract.FieldCurrency)] = c
	}
	return guess, nil
}

// match returns the amount text for this field, preferring the
// amount-before-keyword form.
func (p fieldPattern) match(query string) (string, bool) {
	if m := p.before.FindStringSubmatch(query); m != nil {
		return joinAmount(m[1], m[2]), true
	}
	if m := p.after.FindStringSubmatch(query); m != nil {
		return joinAmount(m[1], m[2]), true
	}
	return "", false
}

func joinAmount(number, suffix string) string {
	if suffix == "" {
		return number
	}
	return fmt.Sprintf("%s%s", number, suffix)
}

func detectCurrency(query string) string {
	for _, c := range []struct{ symbol, code string }{
		{"£", "GBP"},
		{"€", "EUR"},
		{"$", "USD"},
	} {
		if strings.Contains(query, c.symbol) {
			return c.code
		}
	}
	return ""
}
