package calculation

import (
	"testing"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestProjectSavingsOverTime_ReachesTarget(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(300), dec(1000), dec(250),
		domain.MustDate("2024-01-25"), specificDate(25), 0)

	require.Len(t, points, 3)
	assert.Equal(t, "550", points[0].Balance.String())
	assert.Equal(t, "800", points[1].Balance.String())
	assert.Equal(t, "1000", points[2].Balance.String(), "Final cycle caps at the target")
	assert.Equal(t, 2, points[2].CycleIndex)
}

func TestProjectSavingsOverTime_Monotone(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(0), dec(5000), dec(123.45),
		domain.MustDate("2024-01-15"), every4Weeks("2024-01-15"), 0)

	target := dec(5000)
	prev := decimal.Zero
	for i, p := range points {
		assert.True(t, p.Balance.GreaterThanOrEqual(prev), "cycle %d: balance must not decrease", i)
		assert.True(t, p.Balance.LessThanOrEqual(target), "cycle %d: balance must not exceed target", i)
		prev = p.Balance
	}
	assert.True(t, domain.FinalBalance(points).Equal(target))
}

func TestProjectSavingsOverTime_AlreadyMet(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(1200), dec(1000), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), 0)

	require.Len(t, points, 1, "Already-met target returns a single flat point")
	assert.Equal(t, 0, points[0].CycleIndex)
	assert.True(t, points[0].Balance.Equal(dec(1200)), "Balance is unchanged")
}

func TestProjectSavingsOverTime_ZeroAmount(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(300), dec(1000), decimal.Zero,
		domain.MustDate("2024-01-25"), specificDate(25), 0)

	require.Len(t, points, 1)
	assert.True(t, points[0].Balance.Equal(dec(300)))
}

func TestProjectSavingsOverTime_StopsAtMaxCycles(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(0), dec(1000000), dec(1),
		domain.MustDate("2024-01-25"), specificDate(25), 0)

	assert.Len(t, points, DefaultMaxCycles, "Unreachable target stops at the cap; the caller reads the partial walk")
	assert.True(t, domain.FinalBalance(points).LessThan(dec(1000000)))
}

func TestProjectSavingsOverTime_CycleBoundaries(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsOverTime(dec(0), dec(300), dec(100),
		domain.MustDate("2024-03-25"), specificDate(25), 0)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-03-25", points[0].CycleStart.String())
	assert.Equal(t, "2024-04-24", points[0].CycleEnd.String())
	assert.Equal(t, "2024-04-24", points[0].Date.String(), "Point date is the cycle end")
	assert.Equal(t, "2024-04-25", points[1].CycleStart.String())
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].CycleEnd.AddDays(1).String(), points[i].CycleStart.String(),
			"cycle %d must start the day after the previous end", i)
	}
}

func TestProjectSavingsFixedCycles(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectSavingsFixedCycles(dec(100), dec(50),
		domain.MustDate("2024-01-15"), every4Weeks("2024-01-15"), 6)

	require.Len(t, points, 6)
	assert.Equal(t, "400", domain.FinalBalance(points).String(), "No ceiling applies")
}

func TestProjectSavingsFixedCycles_Clamps(t *testing.T) {
	engine := NewEngine()

	points := engine.ProjectSavingsFixedCycles(dec(0), dec(10),
		domain.MustDate("2024-01-25"), specificDate(25), 0)
	assert.Len(t, points, 1, "numCycles clamps up to 1")

	points = engine.ProjectSavingsFixedCycles(dec(0), dec(10),
		domain.MustDate("2024-01-25"), specificDate(25), 500)
	assert.Len(t, points, MaxFixedCycles, "numCycles clamps down to the cap")
}

func TestProjectRepaymentOverTime_NoInterest(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectRepaymentOverTime(dec(300), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{})

	require.Len(t, points, 3)
	assert.Equal(t, "200", points[0].Balance.String())
	assert.Equal(t, "100", points[1].Balance.String())
	assert.Equal(t, "0", points[2].Balance.String())
}

func TestProjectRepaymentOverTime_StrictlyDecreasing(t *testing.T) {
	engine := NewEngine()
	balance := dec(1234.56)
	amount := dec(150)
	points := engine.ProjectRepaymentOverTime(balance, amount,
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{})

	prev := balance
	for i, p := range points {
		assert.True(t, p.Balance.LessThan(prev), "cycle %d: balance must strictly decrease", i)
		prev = p.Balance
	}
	assert.True(t, domain.FinalBalance(points).IsZero())

	// The simulated cycle count matches the closed form.
	cycles, ok := CyclesToClear(balance, amount)
	require.True(t, ok)
	assert.Equal(t, cycles, len(points))
}

func TestProjectRepaymentOverTime_InterestBeforePayment(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectRepaymentOverTime(dec(1000), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{
			IncludeInterest:   true,
			AnnualRatePercent: dec(12),
		})

	// 12% annual on a monthly cycle is 1% per cycle, applied before the
	// payment: 1000 * 1.01 - 100 = 910.
	require.NotEmpty(t, points)
	assert.Equal(t, "910", points[0].Balance.String())

	noInterest := engine.ProjectRepaymentOverTime(dec(1000), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{})
	assert.Greater(t, len(points), len(noInterest), "Interest must lengthen the payoff")
}

func TestProjectRepaymentOverTime_FourWeeklyRate(t *testing.T) {
	engine := NewEngine()
	points := engine.ProjectRepaymentOverTime(dec(1300), dec(100),
		domain.MustDate("2024-01-15"), every4Weeks("2024-01-15"), RepaymentOptions{
			IncludeInterest:   true,
			AnnualRatePercent: dec(13),
		})

	// 13% over 13 four-weekly cycles is 1% per cycle: 1300 * 1.01 - 100 = 1213.
	require.NotEmpty(t, points)
	assert.Equal(t, "1213", points[0].Balance.String())
}

func TestProjectRepaymentOverTime_Degenerate(t *testing.T) {
	engine := NewEngine()

	points := engine.ProjectRepaymentOverTime(decimal.Zero, dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{})
	require.Len(t, points, 1)
	assert.True(t, points[0].Balance.IsZero())

	points = engine.ProjectRepaymentOverTime(dec(500), decimal.Zero,
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{})
	require.Len(t, points, 1)
	assert.True(t, points[0].Balance.Equal(dec(500)), "Zero payment leaves the balance untouched")
}

func TestProjectRepaymentOverTime_NeverClears(t *testing.T) {
	engine := NewEngine()

	// Interest outruns the payment; the walk must still terminate at the cap.
	points := engine.ProjectRepaymentOverTime(dec(10000), dec(5),
		domain.MustDate("2024-01-25"), specificDate(25), RepaymentOptions{
			IncludeInterest:   true,
			AnnualRatePercent: dec(30),
		})

	assert.Len(t, points, DefaultMaxCycles)
	assert.True(t, domain.FinalBalance(points).GreaterThan(dec(10000)), "Balance grows when interest exceeds the payment")
}

func TestTotalRepaymentCost_NoInterest(t *testing.T) {
	engine := NewEngine()
	cost := engine.TotalRepaymentCost(dec(300), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), CostOptions{})

	assert.Equal(t, 3, cost.Cycles)
	assert.Equal(t, "300", cost.TotalPaid.String())
}

func TestTotalRepaymentCost_InterestIncreasesCost(t *testing.T) {
	engine := NewEngine()
	start := domain.MustDate("2024-01-25")
	cfg := specificDate(25)
	opts := CostOptions{AnnualRatePercent: dec(12)}

	at100 := engine.TotalRepaymentCost(dec(1000), dec(100), start, cfg, opts)
	assert.True(t, at100.TotalPaid.GreaterThan(dec(1000)), "Interest must add to the principal, paid %s", at100.TotalPaid)

	at200 := engine.TotalRepaymentCost(dec(1000), dec(200), start, cfg, opts)
	assert.True(t, at200.TotalPaid.LessThan(at100.TotalPaid), "Paying more per cycle must cost less overall")
	assert.Less(t, at200.Cycles, at100.Cycles)
}

func TestTotalRepaymentCost_NeverOverpays(t *testing.T) {
	engine := NewEngine()
	cost := engine.TotalRepaymentCost(dec(250), dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), CostOptions{})

	assert.Equal(t, 3, cost.Cycles)
	assert.Equal(t, "250", cost.TotalPaid.String(), "Final payment is only the remaining balance")
}

func TestTotalRepaymentCost_ShortCircuits(t *testing.T) {
	engine := NewEngine()

	cost := engine.TotalRepaymentCost(decimal.Zero, dec(100),
		domain.MustDate("2024-01-25"), specificDate(25), CostOptions{})
	assert.Equal(t, domain.RepaymentCost{TotalPaid: decimal.Zero}, cost)

	cost = engine.TotalRepaymentCost(dec(500), decimal.Zero,
		domain.MustDate("2024-01-25"), specificDate(25), CostOptions{})
	assert.Equal(t, 0, cost.Cycles)
	assert.True(t, cost.TotalPaid.IsZero())
}
