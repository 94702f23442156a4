package calculation

import (
	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
)

// RepaymentOptions tunes the repayment walk. A zero MaxCycles means
// DefaultMaxCycles.
type RepaymentOptions struct {
	IncludeInterest   bool
	AnnualRatePercent decimal.Decimal
	MaxCycles         int
}

// CostOptions tunes the total-cost walk. Interest is applied whenever the
// rate is positive.
type CostOptions struct {
	AnnualRatePercent decimal.Decimal
	MaxCycles         int
}

// cycleWalker hands out consecutive cycle ranges starting at start.
type cycleWalker struct {
	cfg     domain.CycleConfig
	current domain.CycleRange
}

func newCycleWalker(cfg domain.CycleConfig, start domain.Date) *cycleWalker {
	return &cycleWalker{
		cfg:     cfg,
		current: domain.CycleRange{Start: start, End: CycleEndDate(cfg, start)},
	}
}

// next returns the current range and advances to the following cycle.
func (w *cycleWalker) next() domain.CycleRange {
	r := w.current
	w.current = NextCycleDates(w.cfg, r.End)
	return r
}

func point(index int, r domain.CycleRange, balance decimal.Decimal) domain.ProjectionPoint {
	return domain.ProjectionPoint{
		Date:       r.End,
		CycleIndex: index,
		Balance:    balance,
		CycleStart: r.Start,
		CycleEnd:   r.End,
	}
}

// singlePoint is the no-op projection returned for out-of-domain inputs:
// one flat point at cycle 0.
func singlePoint(cfg domain.CycleConfig, start domain.Date, balance decimal.Decimal) []domain.ProjectionPoint {
	r := domain.CycleRange{Start: start, End: CycleEndDate(cfg, start)}
	return []domain.ProjectionPoint{point(0, r, round2(balance))}
}

// ProjectSavingsOverTime walks a savings balance forward one cycle at a
// time, adding amountPerCycle and capping at target, until the target is
// reached (the reaching cycle included) or maxCycles is exhausted.
// An already-met target or a non-positive contribution yields a single
// unchanged point; there is no growth to simulate.
func (e *Engine) ProjectSavingsOverTime(current, target, amountPerCycle decimal.Decimal, cycleStart domain.Date, cfg domain.CycleConfig, maxCycles int) []domain.ProjectionPoint {
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if current.GreaterThanOrEqual(target) || amountPerCycle.LessThanOrEqual(decimalZero) {
		return singlePoint(cfg, cycleStart, current)
	}

	walker := newCycleWalker(cfg, cycleStart)
	balance := round2(current)
	points := make([]domain.ProjectionPoint, 0, maxCycles)
	for i := 0; i < maxCycles; i++ {
		balance = round2(balance.Add(amountPerCycle))
		if balance.GreaterThan(target) {
			balance = round2(target)
		}
		points = append(points, point(i, walker.next(), balance))
		if balance.GreaterThanOrEqual(target) {
			break
		}
	}
	return points
}

// ProjectSavingsFixedCycles walks a savings balance for exactly numCycles
// cycles with no target ceiling: "what would I have after N cycles".
// numCycles is clamped to [1, MaxFixedCycles]; a negative contribution is
// treated as zero.
func (e *Engine) ProjectSavingsFixedCycles(current, amountPerCycle decimal.Decimal, cycleStart domain.Date, cfg domain.CycleConfig, numCycles int) []domain.ProjectionPoint {
	if numCycles < 1 {
		numCycles = 1
	}
	if numCycles > MaxFixedCycles {
		numCycles = MaxFixedCycles
	}
	if amountPerCycle.IsNegative() {
		amountPerCycle = decimalZero
	}

	walker := newCycleWalker(cfg, cycleStart)
	balance := round2(current)
	points := make([]domain.ProjectionPoint, 0, numCycles)
	for i := 0; i < numCycles; i++ {
		balance = round2(balance.Add(amountPerCycle))
		points = append(points, point(i, walker.next(), balance))
	}
	return points
}

// perCycleRate converts an annual percentage to a per-cycle fraction:
// rate/100 divided by the cycle type's cycles per year.
func perCycleRate(annualPercent decimal.Decimal, ct domain.CycleType) decimal.Decimal {
	if annualPercent.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	return annualPercent.Div(decimalHundred).Div(decimal.NewFromInt(int64(ct.CyclesPerYear())))
}

// ProjectRepaymentOverTime walks a debt balance down one cycle at a time.
// When interest is enabled the balance grows by the per-cycle rate before
// the payment is subtracted. The balance floors at zero and the walk stops
// there, or at the cycle cap for debts that cannot clear (interest
// outrunning the payment, for instance); the partial walk is the result.
func (e *Engine) ProjectRepaymentOverTime(balance, amountPerCycle decimal.Decimal, cycleStart domain.Date, cfg domain.CycleConfig, opts RepaymentOptions) []domain.ProjectionPoint {
	maxCycles := opts.MaxCycles
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if balance.LessThanOrEqual(decimalZero) || amountPerCycle.LessThanOrEqual(decimalZero) {
		return singlePoint(cfg, cycleStart, balance)
	}

	rate := decimalZero
	if opts.IncludeInterest {
		rate = perCycleRate(opts.AnnualRatePercent, cfg.Type)
	}

	walker := newCycleWalker(cfg, cycleStart)
	remaining := round2(balance)
	points := make([]domain.ProjectionPoint, 0, maxCycles)
	for i := 0; i < maxCycles; i++ {
		if rate.IsPositive() {
			remaining = round2(remaining.Mul(decimalOne.Add(rate)))
		}
		remaining = round2(remaining.Sub(amountPerCycle))
		if remaining.IsNegative() {
			remaining = decimalZero
		}
		points = append(points, point(i, walker.next(), remaining))
		if remaining.IsZero() {
			break
		}
	}
	return points
}

// TotalRepaymentCost runs the repayment walk accumulating what is actually
// paid: each cycle pays min(amountPerCycle, balance after interest), never
// overpaying past zero. A zero balance or zero amount short-circuits to
// {0, 0}.
func (e *Engine) TotalRepaymentCost(balance, amountPerCycle decimal.Decimal, cycleStart domain.Date, cfg domain.CycleConfig, opts CostOptions) domain.RepaymentCost {
	maxCycles := opts.MaxCycles
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if balance.LessThanOrEqual(decimalZero) || amountPerCycle.LessThanOrEqual(decimalZero) {
		return domain.RepaymentCost{TotalPaid: decimalZero}
	}

	rate := perCycleRate(opts.AnnualRatePercent, cfg.Type)
	remaining := round2(balance)
	totalPaid := decimalZero
	cycles := 0
	for cycles < maxCycles {
		if rate.IsPositive() {
			remaining = round2(remaining.Mul(decimalOne.Add(rate)))
		}
		payment := amountPerCycle
		if remaining.LessThan(payment) {
			payment = remaining
		}
		totalPaid = round2(totalPaid.Add(payment))
		remaining = round2(remaining.Sub(payment))
		cycles++
		if remaining.LessThanOrEqual(decimalZero) {
			break
		}
	}

	if cycles == maxCycles && remaining.IsPositive() {
		e.Logger.Warnf("repayment did not clear within %d cycles (remaining %s)", maxCycles, remaining)
	}
	return domain.RepaymentCost{TotalPaid: totalPaid, Cycles: cycles}
}
