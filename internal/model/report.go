package model

import "github.com/shopspring/decimal"

// TemplateID identifies the Own Funds reporting template.
const TemplateID = "C 01.00"

// ReportRow is one line of the mapped Own Funds template. Rows are produced
// fresh on each mapping call and are read-only downstream.
type ReportRow struct {
	RowNumber       string           `json:"row_number"`
	Description     string           `json:"description"`
	Amount          *decimal.Decimal `json:"amount"` // nil = not applicable
	FormattedAmount string           `json:"formatted_amount"`
	Currency        string           `json:"currency"`
}
