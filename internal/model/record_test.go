package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalCET1_NetsDeductions(t *testing.T) {
	r := CapitalRecord{
		OrdinaryShareCapital: dec("120000000"),
		RetainedEarnings:     dec("30000000"),
		IntangibleAssets:     dec("8000000"),
	}
	assert.True(t, r.TotalCET1().Equal(dec("142000000")), "got %s", r.TotalCET1())
}

func TestTotalCET1_SignedAdjustments(t *testing.T) {
	r := CapitalRecord{
		OrdinaryShareCapital: dec("100"),
		OtherCET1Adjustments: dec("-30"),
	}
	assert.True(t, r.TotalCET1().Equal(dec("70")))
}

func TestConservation(t *testing.T) {
	r := CapitalRecord{
		OrdinaryShareCapital: dec("120000000"),
		RetainedEarnings:     dec("30000000"),
		OtherCET1Adjustments: dec("-1500000"),
		AT1Instruments:       dec("10000000"),
		Tier2Instruments:     dec("5000000"),
		IntangibleAssets:     dec("8000000"),
		OtherDeductions:      dec("250000"),
	}
	assert.True(t, r.TotalTier1().Equal(r.TotalCET1().Add(r.TotalAT1())))
	assert.True(t, r.TotalOwnFunds().Equal(r.TotalTier1().Add(r.TotalTier2())))

	s := r.Summarize()
	assert.True(t, s.TotalOwnFunds.Equal(s.TotalTier1.Add(s.TotalTier2)))
}

func TestAllZero(t *testing.T) {
	assert.True(t, CapitalRecord{}.AllZero())

	r := CapitalRecord{RetainedEarnings: dec("1")}
	assert.False(t, r.AllZero())

	// A signed adjustment alone still counts as data.
	r = CapitalRecord{OtherCET1Adjustments: dec("-1")}
	assert.False(t, r.AllZero())
}

func TestTotalsNeverCached(t *testing.T) {
	r := CapitalRecord{OrdinaryShareCapital: dec("10")}
	first := r.TotalCET1()
	r.IntangibleAssets = dec("4")
	assert.True(t, first.Equal(dec("10")))
	assert.True(t, r.TotalCET1().Equal(dec("6")))
}
