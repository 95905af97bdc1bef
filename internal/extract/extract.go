// Package extract turns the loosely-typed field guesses produced by the
// language-model collaborator into validated CapitalRecords. It is the only
// place in the pipeline that tolerates malformed input: everything it hands
// downstream satisfies the record invariants.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// RawGuess is the upstream model's best-effort field mapping. Keys are
// free-form (the alias table resolves them), values are numbers or short
// text fragments. Unknown keys are ignored.
type RawGuess map[string]any

// Stable extraction failure codes.
const (
	CodeNoCapitalData    = "no_capital_data_found"
	CodeUnparseableField = "unparseable_field"
)

// ExtractionError reports input that cannot be coerced into a record:
// either no capital figure was recognized at all, or a required field was
// present but not a number.
type ExtractionError struct {
	Code    string
	Field   Field // empty for record-level failures
	Message string
}

func (e *ExtractionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("extraction failed (%s) [%s]: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Code, e.Message)
}

// Result is a validated record plus the normalization notes accumulated
// while building it. Notes describe silently-corrected input; they are audit
// data, not errors.
type Result struct {
	Record model.CapitalRecord
	Notes  []string
}

// Date layouts accepted for the reporting date.
var dateLayouts = []string{"2006-01-02", "02/01/2006", time.RFC3339}

// Extract coerces a raw guess into a CapitalRecord. now supplies the default
// reporting date; defaultCurrency is used when the input names none (empty
// falls back to model.DefaultCurrency). Fails only when no capital-related
// key is recognized, or when a required field is present but unparseable;
// optional fields degrade to zero with a note.
func Extract(raw RawGuess, now time.Time, defaultCurrency string) (Result, error) {
	if defaultCurrency == "" {
		defaultCurrency = model.DefaultCurrency
	}
	values := normalizeKeys(raw)

	var res Result
	rec := model.CapitalRecord{Currency: defaultCurrency}

	matched := 0
	amounts := map[Field]decimal.Decimal{}
	for _, f := range monetaryFields {
		v, alias, ok := lookup(values, f)
		if !ok {
			continue
		}
		matched++

		amount, err := parseAmount(v)
		if err != nil {
			if requiredFields[f] {
				return Result{}, &ExtractionError{
					Code:    CodeUnparseableField,
					Field:   f,
					Message: err.Error(),
				}
			}
			res.note("%s: %v; defaulted to 0", f, err)
			continue
		}

		if amount.IsNegative() && !signedFields[f] {
			res.note("%s: negative amount %s clamped to 0", f, amount)
			amount = decimal.Zero
		}
		if alias != string(f) {
			res.note("%s: resolved from key %q", f, alias)
		}
		amounts[f] = amount
	}

	if matched == 0 {
		return Result{}, &ExtractionError{
			Code:    CodeNoCapitalData,
			Message: "no capital-related fields recognized in input",
		}
	}

	rec.OrdinaryShareCapital = amounts[FieldOrdinaryShareCapital]
	rec.RetainedEarnings = amounts[FieldRetainedEarnings]
	rec.OtherCET1Adjustments = amounts[FieldOtherCET1Adjustments]
	rec.AT1Instruments = amounts[FieldAT1Instruments]
	rec.Tier2Instruments = amounts[FieldTier2Instruments]
	rec.IntangibleAssets = amounts[FieldIntangibleAssets]
	rec.OtherDeductions = amounts[FieldOtherDeductions]

	rec.ReportingDate, rec.DateDefaulted = extractDate(values, now, &res)
	rec.Currency = extractCurrency(values, defaultCurrency, &res)

	res.Record = rec
	return res, nil
}

func (r *Result) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// normalizeKeys lowercases keys and folds spaces/hyphens to underscores so
// "Retained Earnings" and "retained-earnings" both resolve. First occurrence
// of a normalized key wins.
func normalizeKeys(raw RawGuess) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		nk := normalizeKey(k)
		if _, seen := out[nk]; !seen {
			out[nk] = v
		}
	}
	return out
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return '_'
		}
		return r
	}, k)
	return k
}

// lookup resolves a field against the alias table, returning the matched
// value and alias.
func lookup(values map[string]any, f Field) (any, string, bool) {
	for _, alias := range aliases[f] {
		if v, ok := values[alias]; ok {
			return v, alias, true
		}
	}
	return nil, "", false
}

func extractDate(values map[string]any, now time.Time, res *Result) (time.Time, bool) {
	v, _, ok := lookup(values, FieldReportingDate)
	if !ok {
		return now, true
	}
	s, ok := v.(string)
	if !ok {
		res.note("%s: unsupported value type %T; defaulted to generation time", FieldReportingDate, v)
		return now, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, false
		}
	}
	res.note("%s: unparseable date %q; defaulted to generation time", FieldReportingDate, s)
	return now, true
}

func extractCurrency(values map[string]any, defaultCurrency string, res *Result) string {
	v, _, ok := lookup(values, FieldCurrency)
	if !ok {
		return defaultCurrency
	}
	s, _ := v.(string)
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		res.note("%s: unrecognized currency %v; defaulted to %s", FieldCurrency, v, defaultCurrency)
		return defaultCurrency
	}
	return s
}
