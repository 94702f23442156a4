package calculation

import (
	"testing"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveRepaymentAmount_NoInterestFallsBackToClosedForm(t *testing.T) {
	engine := NewEngine()
	today := domain.MustDate("2024-03-25")

	got, err := engine.SolveRepaymentAmount(dec(900), today, domain.MustDate("2024-06-25"),
		specificDate(25), decimal.Zero, today, SolveOptions{})

	require.NoError(t, err)
	assert.Equal(t, "300.00", got.StringFixed(2))
}

func TestSolveRepaymentAmount_WithInterest(t *testing.T) {
	engine := NewEngine()
	today := domain.MustDate("2024-03-25")
	cfg := specificDate(25)
	target := domain.MustDate("2025-03-25") // 12 cycles out

	got, err := engine.SolveRepaymentAmount(dec(1000), today, target, cfg, dec(12), today, SolveOptions{})
	require.NoError(t, err)

	// The solved amount must actually clear the balance within the target
	// cycle count, and shaving the tolerance off must not.
	rate := perCycleRate(dec(12), cfg.Type)
	assert.True(t, clearsWithin(dec(1000), got, rate, 12), "solved amount %s must clear in 12 cycles", got)
	lower := got.Sub(dec(0.05))
	assert.False(t, clearsWithin(dec(1000), lower, rate, 12), "%s should be too little", lower)

	// Interest makes the required amount exceed the even split.
	assert.True(t, got.GreaterThan(dec(83.33)), "amount %s must exceed the no-interest split", got)
}

func TestSolveRepaymentAmount_SingleCycle(t *testing.T) {
	engine := NewEngine()
	today := domain.MustDate("2024-03-25")

	// Clearing within one cycle means paying the whole balance plus one
	// cycle of interest (1% here).
	got, err := engine.SolveRepaymentAmount(dec(1000), today, domain.MustDate("2024-04-10"),
		specificDate(25), dec(12), today, SolveOptions{})

	require.NoError(t, err)
	assert.True(t, got.GreaterThanOrEqual(dec(1009.99)), "got %s", got)
	assert.True(t, got.LessThanOrEqual(dec(1010.01)), "got %s", got)
}

func TestSolveRepaymentAmount_ZeroBalance(t *testing.T) {
	engine := NewEngine()
	today := domain.MustDate("2024-03-25")

	got, err := engine.SolveRepaymentAmount(decimal.Zero, today, domain.MustDate("2024-06-25"),
		specificDate(25), dec(12), today, SolveOptions{})

	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestClearsWithin(t *testing.T) {
	assert.True(t, clearsWithin(dec(300), dec(100), decimal.Zero, 3))
	assert.False(t, clearsWithin(dec(300), dec(100), decimal.Zero, 2))
	assert.False(t, clearsWithin(dec(300), decimal.Zero, decimal.Zero, 100))

	// 1% per cycle: 300*1.01 = 303, -100 = 203; 205.03-100 = 105.03;
	// 106.08-100 = 6.08; still positive after 3 cycles.
	rate := dec(0.01)
	assert.False(t, clearsWithin(dec(300), dec(100), rate, 3))
	assert.True(t, clearsWithin(dec(300), dec(100), rate, 4))
}
