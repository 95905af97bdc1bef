package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/template"
)

var testNow = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validRecord() model.CapitalRecord {
	return model.CapitalRecord{
		OrdinaryShareCapital: dec("120000000"),
		RetainedEarnings:     dec("30000000"),
		AT1Instruments:       dec("10000000"),
		IntangibleAssets:     dec("8000000"),
		ReportingDate:        time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Currency:             "GBP",
	}
}

func validate(rec model.CapitalRecord) Report {
	return Validate(rec, template.Map(rec), testNow)
}

func flagsForField(flags []Flag, field string) []Flag {
	var out []Flag
	for _, f := range flags {
		if f.Field == field {
			out = append(out, f)
		}
	}
	return out
}

func TestValidate_PassScenario(t *testing.T) {
	rep := validate(validRecord())

	assert.Equal(t, StatusPass, rep.Summary.Status)
	assert.Empty(t, rep.Errors)
	assert.Zero(t, rep.Summary.Errors)
	assert.Equal(t, len(rep.Flags), rep.Summary.TotalFlags)
}

func TestValidate_NegativeComponentIsError(t *testing.T) {
	// Should not occur after normalization; the engine re-checks anyway.
	rec := validRecord()
	rec.Tier2Instruments = dec("-5")

	rep := validate(rec)
	assert.Equal(t, StatusIssues, rep.Summary.Status)
	found := flagsForField(rep.Errors, "tier2_instruments")
	require.Len(t, found, 1)
}

func TestValidate_CET1Positivity(t *testing.T) {
	rec := model.CapitalRecord{
		IntangibleAssets: dec("10"),
		Currency:         "GBP",
		ReportingDate:    testNow,
	}
	rep := validate(rec)

	assert.Equal(t, StatusIssues, rep.Summary.Status)
	cet1Errors := flagsForField(rep.Errors, "total_cet1")
	require.Len(t, cet1Errors, 1, "exactly one CET1 positivity error")
	assert.Contains(t, cet1Errors[0].Message, "not positive")
	assert.Equal(t, "review CET1 components and deductions", cet1Errors[0].Suggestion)
}

func TestValidate_ZeroCET1IsError(t *testing.T) {
	rec := model.CapitalRecord{
		AT1Instruments: dec("5"),
		Currency:       "GBP",
		ReportingDate:  testNow,
	}
	rep := validate(rec)
	require.Len(t, flagsForField(rep.Errors, "total_cet1"), 1)
}

func TestValidate_DeductionsExceedGross(t *testing.T) {
	rec := model.CapitalRecord{
		OrdinaryShareCapital: dec("100"),
		IntangibleAssets:     dec("80"),
		OtherDeductions:      dec("30"),
		Currency:             "GBP",
		ReportingDate:        testNow,
	}
	rep := validate(rec)

	// Both the positivity error and the more specific deduction warning fire.
	assert.NotEmpty(t, flagsForField(rep.Errors, "total_cet1"))
	warnings := flagsForField(rep.Warnings, "intangible_assets")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "exceed gross CET1")
}

func TestValidate_AT1Plausibility(t *testing.T) {
	rec := validRecord()
	rec.AT1Instruments = dec("200000000") // larger than CET1

	rep := validate(rec)
	assert.Equal(t, StatusPass, rep.Summary.Status, "plausibility is a warning, not an error")
	require.Len(t, flagsForField(rep.Warnings, "at1_instruments"), 1)
}

func TestValidate_Tier2Plausibility(t *testing.T) {
	rec := validRecord()
	rec.Tier2Instruments = dec("500000000") // larger than Tier 1

	rep := validate(rec)
	require.Len(t, flagsForField(rep.Warnings, "tier2_instruments"), 1)
}

func TestValidate_ZeroEverything(t *testing.T) {
	rec := model.CapitalRecord{Currency: "GBP", ReportingDate: testNow}
	rep := validate(rec)

	var zeroInfo []Flag
	for _, f := range rep.Info {
		if f.Field == "" {
			zeroInfo = append(zeroInfo, f)
		}
	}
	require.NotEmpty(t, zeroInfo)
	assert.Contains(t, zeroInfo[0].Message, "every capital field is zero")
}

func TestValidate_ReportingDate(t *testing.T) {
	rec := validRecord()
	rec.DateDefaulted = true
	rep := validate(rec)
	require.NotEmpty(t, flagsForField(rep.Info, "reporting_date"))

	rec = validRecord()
	rec.ReportingDate = testNow.AddDate(1, 0, 0)
	rep = validate(rec)
	dateFlags := flagsForField(rep.Info, "reporting_date")
	require.Len(t, dateFlags, 1)
	assert.Contains(t, dateFlags[0].Message, "future")
}

func TestValidate_RowTotalMismatch(t *testing.T) {
	rec := validRecord()
	rows := template.Map(rec)
	bad := dec("1")
	for i := range rows {
		if rows[i].RowNumber == "100" {
			rows[i].Amount = &bad
		}
	}
	rep := Validate(rec, rows, testNow)

	var found bool
	for _, f := range rep.Warnings {
		if f.Field == "" && f.Severity == SeverityWarning {
			assert.Contains(t, f.Message, "row 100")
			found = true
		}
	}
	assert.True(t, found, "expected a row-total mismatch warning")
}

func TestValidate_RulesNeverShortCircuit(t *testing.T) {
	// A record violating several rules at once reports all of them.
	rec := model.CapitalRecord{
		OrdinaryShareCapital: dec("10"),
		IntangibleAssets:     dec("100"),
		AT1Instruments:       dec("50"),
		Tier2Instruments:     dec("50"),
		DateDefaulted:        true,
		Currency:             "GBP",
		ReportingDate:        testNow,
	}
	rep := validate(rec)

	assert.NotEmpty(t, flagsForField(rep.Errors, "total_cet1"))
	assert.NotEmpty(t, flagsForField(rep.Warnings, "intangible_assets"))
	assert.NotEmpty(t, flagsForField(rep.Warnings, "at1_instruments"))
	assert.NotEmpty(t, flagsForField(rep.Info, "reporting_date"))
}

func TestReport_RecommendationsDeduplicated(t *testing.T) {
	flags := []Flag{
		{Severity: SeverityWarning, Message: "a", Suggestion: "fix it"},
		{Severity: SeverityWarning, Message: "b", Suggestion: "fix it"},
		{Severity: SeverityInfo, Message: "c", Suggestion: "check it"},
		{Severity: SeverityError, Message: "d"},
	}
	rep := buildReport(flags)
	assert.Equal(t, []string{"fix it", "check it"}, rep.Recommendations)
	assert.Equal(t, 4, rep.Summary.TotalFlags)
	assert.Equal(t, 1, rep.Summary.Errors)
	assert.Equal(t, 2, rep.Summary.Warnings)
	assert.Equal(t, 1, rep.Summary.Info)
	assert.Equal(t, StatusIssues, rep.Summary.Status)
}
