// Package template projects a CapitalRecord onto the fixed rows of the Own
// Funds template (C 01.00). The row numbering, ordering and labels are the
// external contract and never vary with the input.
package template

import (
	"github.com/shopspring/decimal"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// rowSpec is one fixed template line: a stable number, a label, and the
// record field (or derived total) it reports.
type rowSpec struct {
	number      string
	description string
	amount      func(model.CapitalRecord) decimal.Decimal
}

// rowTable is the Own Funds template in reporting order. Deduction rows
// (040, 050) report negated amounts.
var rowTable = [...]rowSpec{
	{"010", "Ordinary share capital", func(r model.CapitalRecord) decimal.Decimal { return r.OrdinaryShareCapital }},
	{"020", "Retained earnings", func(r model.CapitalRecord) decimal.Decimal { return r.RetainedEarnings }},
	{"030", "Other CET1 adjustments", func(r model.CapitalRecord) decimal.Decimal { return r.OtherCET1Adjustments }},
	{"040", "(-) Intangible assets", func(r model.CapitalRecord) decimal.Decimal { return r.IntangibleAssets.Neg() }},
	{"050", "(-) Other deductions", func(r model.CapitalRecord) decimal.Decimal { return r.OtherDeductions.Neg() }},
	{"060", "Total CET1 capital", model.CapitalRecord.TotalCET1},
	{"070", "AT1 instruments", func(r model.CapitalRecord) decimal.Decimal { return r.AT1Instruments }},
	{"080", "Total Tier 1 capital", model.CapitalRecord.TotalTier1},
	{"090", "Tier 2 instruments", func(r model.CapitalRecord) decimal.Decimal { return r.Tier2Instruments }},
	{"100", "Total own funds", model.CapitalRecord.TotalOwnFunds},
}

// NumRows is the fixed row count of the mapped template.
const NumRows = len(rowTable)

// Map projects a record onto the template. Total: always returns exactly
// NumRows rows in table order.
func Map(rec model.CapitalRecord) []model.ReportRow {
	rows := make([]model.ReportRow, 0, NumRows)
	for _, spec := range rowTable {
		amount := spec.amount(rec)
		rows = append(rows, model.ReportRow{
			RowNumber:       spec.number,
			Description:     spec.description,
			Amount:          &amount,
			FormattedAmount: FormatAmount(&amount, rec.Currency),
			Currency:        rec.Currency,
		})
	}
	return rows
}
