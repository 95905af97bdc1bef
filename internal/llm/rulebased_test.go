package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleBased_ExtractsComponents(t *testing.T) {
	g := NewRuleBased()
	guess, err := g.Generate(context.Background(),
		"The bank has £120m ordinary share capital, £30m retained earnings, "+
			"£10m AT1 instruments, and £8m intangible assets.", nil)
	require.NoError(t, err)

	assert.Equal(t, "120m", guess["ordinary_share_capital"])
	assert.Equal(t, "30m", guess["retained_earnings"])
	assert.Equal(t, "10m", guess["at1_instruments"])
	assert.Equal(t, "8m", guess["intangible_assets"])
	assert.Equal(t, "GBP", guess["currency"])
}

func TestRuleBased_KeywordBeforeAmount(t *testing.T) {
	g := NewRuleBased()
	guess, err := g.Generate(context.Background(),
		"Retained earnings of £2.5bn and subordinated debt of 400,000,000.", nil)
	require.NoError(t, err)

	assert.Equal(t, "2.5bn", guess["retained_earnings"])
	assert.Equal(t, "400,000,000", guess["tier2_instruments"])
}

func TestRuleBased_ReportingDate(t *testing.T) {
	g := NewRuleBased()
	guess, err := g.Generate(context.Background(),
		"Share capital of £50m as at 2026-01-31.", nil)
	require.NoError(t, err)

	assert.Equal(t, "50m", guess["ordinary_share_capital"])
	assert.Equal(t, "2026-01-31", guess["reporting_date"])
}

func TestRuleBased_NoFiguresYieldsEmptyGuess(t *testing.T) {
	g := NewRuleBased()
	guess, err := g.Generate(context.Background(), "Tell me about own funds reporting.", nil)
	require.NoError(t, err)
	assert.Empty(t, guess)
}

func TestRuleBased_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRuleBased().Generate(ctx, "£50m share capital", nil)
	assert.Error(t, err)
}

func TestRuleBased_EuroAndDollar(t *testing.T) {
	g := NewRuleBased()
	guess, err := g.Generate(context.Background(), "Share capital of €75m.", nil)
	require.NoError(t, err)
	assert.Equal(t, "EUR", guess["currency"])

	guess, err = g.Generate(context.Background(), "Share capital of $75m.", nil)
	require.NoError(t, err)
	assert.Equal(t, "USD", guess["currency"])
}
