// Package validation runs the consistency and plausibility rule battery over
// an extracted capital record and its mapped template rows. Flags are the
// engine's output, not failures: a run always completes and reports
// everything it found.
package validation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// Severity tiers a validation flag.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Flag is one finding from a rule check.
type Flag struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Field      string   `json:"field,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ruleFunc checks one rule and appends zero or more flags. Rules are
// independent: each runs regardless of what earlier rules found.
type ruleFunc func(in input) []Flag

type input struct {
	rec  model.CapitalRecord
	rows []model.ReportRow
	now  time.Time
}

// rules is the fixed battery in emission order.
var rules = []ruleFunc{
	checkNonNegativity,
	checkCET1Positivity,
	checkDeductionsExceedCET1,
	checkAT1Plausibility,
	checkTier2Plausibility,
	checkZeroEverything,
	checkReportingDate,
	checkRowTotals,
}

// Validate runs every rule over the record and mapped rows. now anchors the
// reporting-date sanity check.
func Validate(rec model.CapitalRecord, rows []model.ReportRow, now time.Time) Report {
	in := input{rec: rec, rows: rows, now: now}
	var flags []Flag
	for _, rule := range rules {
		flags = append(flags, rule(in)...)
	}
	return buildReport(flags)
}

// checkNonNegativity re-checks the extractor's clamping invariant. These
// flags indicate a defect upstream, not bad user input.
func checkNonNegativity(in input) []Flag {
	components := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"ordinary_share_capital", in.rec.OrdinaryShareCapital},
		{"retained_earnings", in.rec.RetainedEarnings},
		{"at1_instruments", in.rec.AT1Instruments},
		{"tier2_instruments", in.rec.Tier2Instruments},
		{"intangible_assets", in.rec.IntangibleAssets},
		{"other_deductions", in.rec.OtherDeductions},
	}
	var flags []Flag
	for _, c := range components {
		if c.amount.IsNegative() {
			flags = append(flags, Flag{
				Severity:   SeverityError,
				Message:    fmt.Sprintf("%s is negative (%s)", c.name, c.amount),
				Field:      c.name,
				Suggestion: "re-extract the input; non-negative fields must be clamped during normalization",
			})
		}
	}
	return flags
}

func checkCET1Positivity(in input) []Flag {
	cet1 := in.rec.TotalCET1()
	if cet1.GreaterThan(decimal.Zero) {
		return nil
	}
	return []Flag{{
		Severity:   SeverityError,
		Message:    fmt.Sprintf("total CET1 capital is not positive (%s)", cet1),
		Field:      "total_cet1",
		Suggestion: "review CET1 components and deductions",
	}}
}

// checkDeductionsExceedCET1 fires alongside the positivity rule as a more
// specific diagnostic: the deductions alone would drive CET1 negative.
func checkDeductionsExceedCET1(in input) []Flag {
	gross := in.rec.OrdinaryShareCapital.
		Add(in.rec.RetainedEarnings).
		Add(in.rec.OtherCET1Adjustments)
	deductions := in.rec.IntangibleAssets.Add(in.rec.OtherDeductions)
	if deductions.LessThanOrEqual(gross) {
		return nil
	}
	return []Flag{{
		Severity: SeverityWarning,
		Message: fmt.Sprintf("deductions (%s) exceed gross CET1 components (%s)",
			deductions, gross),
		Field:      "intangible_assets",
		Suggestion: "confirm deduction amounts against the balance sheet",
	}}
}

func checkAT1Plausibility(in input) []Flag {
	if in.rec.AT1Instruments.LessThanOrEqual(in.rec.TotalCET1()) {
		return nil
	}
	return []Flag{{
		Severity: SeverityWarning,
		Message: fmt.Sprintf("AT1 instruments (%s) exceed total CET1 (%s), which is unusual",
			in.rec.AT1Instruments, in.rec.TotalCET1()),
		Field:      "at1_instruments",
		Suggestion: "verify the AT1 figure; AT1 rarely exceeds core capital",
	}}
}

func checkTier2Plausibility(in input) []Flag {
	if in.rec.Tier2Instruments.LessThanOrEqual(in.rec.TotalTier1()) {
		return nil
	}
	return []Flag{{
		Severity: SeverityWarning,
		Message: fmt.Sprintf("Tier 2 instruments (%s) exceed total Tier 1 (%s), which is unusual",
			in.rec.Tier2Instruments, in.rec.TotalTier1()),
		Field:      "tier2_instruments",
		Suggestion: "verify the Tier 2 figure against Tier 1 capital",
	}}
}

// checkZeroEverything surfaces the all-zero record for operator attention: a
// fully zero position usually means extraction silently found nothing.
func checkZeroEverything(in input) []Flag {
	if !in.rec.AllZero() {
		return nil
	}
	return []Flag{{
		Severity:   SeverityInfo,
		Message:    "every capital field is zero; the input may not have been extracted correctly",
		Suggestion: "restate the capital figures explicitly and regenerate",
	}}
}

func checkReportingDate(in input) []Flag {
	var flags []Flag
	if in.rec.DateDefaulted {
		flags = append(flags, Flag{
			Severity:   SeverityInfo,
			Message:    "no reporting date supplied; defaulted to generation time",
			Field:      "reporting_date",
			Suggestion: "state the reporting date for the submission",
		})
	}
	if in.rec.ReportingDate.After(in.now) {
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Message: fmt.Sprintf("reporting date %s is in the future",
				in.rec.ReportingDate.Format("2006-01-02")),
			Field:      "reporting_date",
			Suggestion: "confirm the reporting period",
		})
	}
	return flags
}

// checkRowTotals re-derives the template's total rows from the record and
// compares. A mismatch means the mapper and the record disagree, which is a
// defect, but it is reported rather than panicking so the rest of the
// report still reaches the operator.
func checkRowTotals(in input) []Flag {
	expected := map[string]decimal.Decimal{
		"060": in.rec.TotalCET1(),
		"080": in.rec.TotalTier1(),
		"100": in.rec.TotalOwnFunds(),
	}
	var flags []Flag
	for _, row := range in.rows {
		want, ok := expected[row.RowNumber]
		if !ok {
			continue
		}
		if row.Amount == nil || !row.Amount.Equal(want) {
			got := "null"
			if row.Amount != nil {
				got = row.Amount.String()
			}
			flags = append(flags, Flag{
				Severity: SeverityWarning,
				Message: fmt.Sprintf("template row %s amount %s does not match recomputed total %s",
					row.RowNumber, got, want),
				Suggestion: "verify summary calculations are correct",
			})
		}
	}
	return flags
}
