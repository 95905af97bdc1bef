package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the input does not name a currency.
const DefaultCurrency = "GBP"

// CapitalRecord is a bank's capital position for one reporting date.
// All amounts are in a single currency unit. Records are built once by the
// extractor and treated as read-only by the mapper and validator.
type CapitalRecord struct {
	OrdinaryShareCapital decimal.Decimal `json:"ordinary_share_capital"`
	RetainedEarnings     decimal.Decimal `json:"retained_earnings"`
	OtherCET1Adjustments decimal.Decimal `json:"other_cet1_adjustments"` // signed; may reduce CET1
	AT1Instruments       decimal.Decimal `json:"at1_instruments"`
	Tier2Instruments     decimal.Decimal `json:"tier2_instruments"`
	IntangibleAssets     decimal.Decimal `json:"intangible_assets"` // deduction, stored positive
	OtherDeductions      decimal.Decimal `json:"other_deductions"`  // deduction, stored positive

	ReportingDate time.Time `json:"reporting_date"`
	DateDefaulted bool      `json:"date_defaulted"` // true when no reporting date was supplied
	Currency      string    `json:"currency"`
}

// TotalCET1 returns core capital: share capital + retained earnings +
// adjustments, net of deductions. Recomputed on every call.
func (r CapitalRecord) TotalCET1() decimal.Decimal {
	return r.OrdinaryShareCapital.
		Add(r.RetainedEarnings).
		Add(r.OtherCET1Adjustments).
		Sub(r.IntangibleAssets).
		Sub(r.OtherDeductions)
}

// TotalAT1 returns additional tier 1 capital.
func (r CapitalRecord) TotalAT1() decimal.Decimal {
	return r.AT1Instruments
}

// TotalTier1 returns CET1 + AT1.
func (r CapitalRecord) TotalTier1() decimal.Decimal {
	return r.TotalCET1().Add(r.TotalAT1())
}

// TotalTier2 returns tier 2 capital.
func (r CapitalRecord) TotalTier2() decimal.Decimal {
	return r.Tier2Instruments
}

// TotalOwnFunds returns total regulatory capital: Tier 1 + Tier 2.
func (r CapitalRecord) TotalOwnFunds() decimal.Decimal {
	return r.TotalTier1().Add(r.TotalTier2())
}

// AllZero reports whether every monetary input field is exactly zero.
func (r CapitalRecord) AllZero() bool {
	return r.OrdinaryShareCapital.IsZero() &&
		r.RetainedEarnings.IsZero() &&
		r.OtherCET1Adjustments.IsZero() &&
		r.AT1Instruments.IsZero() &&
		r.Tier2Instruments.IsZero() &&
		r.IntangibleAssets.IsZero() &&
		r.OtherDeductions.IsZero()
}

// Summary holds the derived totals in a transport-friendly shape.
type Summary struct {
	TotalCET1     decimal.Decimal `json:"total_cet1"`
	TotalAT1      decimal.Decimal `json:"total_at1"`
	TotalTier1    decimal.Decimal `json:"total_tier1"`
	TotalTier2    decimal.Decimal `json:"total_tier2"`
	TotalOwnFunds decimal.Decimal `json:"total_own_funds"`
}

// Summarize computes all derived totals at once.
func (r CapitalRecord) Summarize() Summary {
	return Summary{
		TotalCET1:     r.TotalCET1(),
		TotalAT1:      r.TotalAT1(),
		TotalTier1:    r.TotalTier1(),
		TotalTier2:    r.TotalTier2(),
		TotalOwnFunds: r.TotalOwnFunds(),
	}
}
