package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/extract"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/validation"
)

var testNow = time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)

func testRunner() Runner {
	return Runner{Now: func() time.Time { return testNow }}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRun_PassScenario(t *testing.T) {
	res, err := testRunner().Run(extract.RawGuess{
		"ordinary_share_capital": 120000000,
		"retained_earnings":      30000000,
		"at1_instruments":        10000000,
		"intangible_assets":      8000000,
		"reporting_date":         "2026-01-31",
	}, nil)
	require.NoError(t, err)

	assert.True(t, res.Summary.TotalCET1.Equal(dec("142000000")))
	assert.True(t, res.Summary.TotalTier1.Equal(dec("152000000")))
	assert.True(t, res.Summary.TotalOwnFunds.Equal(dec("152000000")))
	assert.Len(t, res.Rows, 10)
	assert.Equal(t, validation.StatusPass, res.Report.Summary.Status)
	assert.Empty(t, res.Report.Errors)
}

func TestRun_ExtractionFailureAbortsRun(t *testing.T) {
	res, err := testRunner().Run(extract.RawGuess{"weather": "sunny"}, nil)

	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, extract.CodeNoCapitalData, exErr.Code)
	assert.Empty(t, res.Rows, "no partial result on extraction failure")
}

func TestRun_IssuesStillProduceFullReport(t *testing.T) {
	res, err := testRunner().Run(extract.RawGuess{"intangible_assets": 10}, nil)
	require.NoError(t, err)

	assert.Equal(t, validation.StatusIssues, res.Report.Summary.Status)
	assert.Len(t, res.Rows, 10, "mapping completes even when validation flags errors")
	assert.NotEmpty(t, res.Report.Recommendations)
}

func TestRun_PassagesPassThrough(t *testing.T) {
	passages := []model.Passage{
		{Source: "PRA_Own_Funds.txt", Text: "CET1 capital includes ordinary share capital.", Score: 0.91},
	}
	res, err := testRunner().Run(extract.RawGuess{"cet1": 1}, passages)
	require.NoError(t, err)
	assert.Equal(t, passages, res.Passages)
}

func TestRun_Idempotent(t *testing.T) {
	raw := extract.RawGuess{
		"share_capital":     "£120m",
		"retained_earnings": "£30m",
		"tier2_instruments": "5m",
	}
	first, err := testRunner().Run(raw, nil)
	require.NoError(t, err)
	second, err := testRunner().Run(raw, nil)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same input must produce byte-identical output")
}

func TestRun_ConfiguredCurrency(t *testing.T) {
	r := Runner{Now: func() time.Time { return testNow }, Currency: "EUR"}
	res, err := r.Run(extract.RawGuess{"cet1": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "EUR", res.Record.Currency)
	assert.Equal(t, "€1.00", res.Rows[0].FormattedAmount)
}

func TestRun_WallClockDefault(t *testing.T) {
	res, err := Runner{}.Run(extract.RawGuess{"cet1": 1}, nil)
	require.NoError(t, err)
	assert.True(t, res.Record.DateDefaulted)
	assert.WithinDuration(t, time.Now(), res.Record.ReportingDate, time.Minute)
}
