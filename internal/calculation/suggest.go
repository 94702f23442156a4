package calculation

import (
	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
)

// CyclesToGoal is the closed-form count of cycles needed to grow current
// to target: ceil(remaining / amountPerCycle). Fast path for the
// no-interest case only; with interest the closed form is invalid and the
// simulated walk must be used instead.
//
// Returns (0, true) when the goal is already met and (0, false) when a
// non-positive contribution means the goal is never reached.
func CyclesToGoal(current, target, amountPerCycle decimal.Decimal) (int, bool) {
	remaining := target.Sub(current)
	if remaining.LessThanOrEqual(decimalZero) {
		return 0, true
	}
	if amountPerCycle.LessThanOrEqual(decimalZero) {
		return 0, false
	}
	return int(remaining.Div(amountPerCycle).Ceil().IntPart()), true
}

// CyclesToClear is the symmetric closed form for debt with no interest:
// ceil(balance / amountPerCycle).
func CyclesToClear(balance, amountPerCycle decimal.Decimal) (int, bool) {
	return CyclesToGoal(decimalZero, balance, amountPerCycle)
}

// CountPayCyclesUntil counts pay cycles between start and target: zero if
// the target is not after start, otherwise ceil(days/28) for 4-weekly
// cycles and the calendar-month difference for monthly ones, each floored
// at 1.
//
// This is a coarse month-count, deliberately not a walk through actual
// cycle boundaries; near month boundaries it can disagree with
// EndDateFromCycles by one cycle. Callers that need exact boundaries use
// the walk.
func CountPayCyclesUntil(start, target domain.Date, ct domain.CycleType) int {
	if !target.After(start) {
		return 0
	}
	var cycles int
	if ct == domain.CycleEvery4Weeks {
		days := start.DaysUntil(target)
		cycles = (days + cycleLengthDays - 1) / cycleLengthDays
	} else {
		cycles = start.MonthsUntil(target)
	}
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

// SuggestedSavingsAmount returns the per-cycle contribution that reaches
// target by targetDate. Nil when no target date is set (so callers can
// render "set a target date" rather than "you're done"); zero when the
// target is already met. The result rounds up to 2 decimal places so the
// suggestion never undershoots the goal by a rounding error.
func (e *Engine) SuggestedSavingsAmount(current, target decimal.Decimal, cycleStart domain.Date, targetDate *domain.Date, ct domain.CycleType, today domain.Date) *decimal.Decimal {
	if targetDate == nil {
		return nil
	}
	remaining := target.Sub(current)
	return e.suggestAmount(remaining, cycleStart, *targetDate, ct, today)
}

// SuggestedRepaymentAmount is the symmetric suggestion for clearing a debt
// balance by targetDate.
func (e *Engine) SuggestedRepaymentAmount(balance decimal.Decimal, cycleStart domain.Date, targetDate *domain.Date, ct domain.CycleType, today domain.Date) *decimal.Decimal {
	if targetDate == nil {
		return nil
	}
	return e.suggestAmount(balance, cycleStart, *targetDate, ct, today)
}

func (e *Engine) suggestAmount(remaining decimal.Decimal, cycleStart, targetDate domain.Date, ct domain.CycleType, today domain.Date) *decimal.Decimal {
	if remaining.LessThanOrEqual(decimalZero) {
		zero := decimalZero
		return &zero
	}
	start := cycleStart
	if start.Before(today) {
		start = today
	}
	cycles := CountPayCyclesUntil(start, targetDate, ct)
	if cycles < 1 {
		cycles = 1
	}
	amount := remaining.Div(decimal.NewFromInt(int64(cycles))).RoundCeil(2)
	return &amount
}

// effectiveStart guards forward walks against stale cycle starts: a
// nominal start already in the past is replaced by today, so projections
// begin from the cycle the household is actually in.
func effectiveStart(cycleStart, today domain.Date) domain.Date {
	if cycleStart.Before(today) {
		return today
	}
	return cycleStart
}

// EndDateFromCycles returns the end date of the cycleIndex-th cycle
// (0-based) counting forward from the effective start via repeated
// NextCycleDates calls.
func EndDateFromCycles(cfg domain.CycleConfig, cycleStart domain.Date, cycleIndex int, today domain.Date) domain.Date {
	if cycleIndex < 0 {
		cycleIndex = 0
	}
	walker := newCycleWalker(cfg, effectiveStart(cycleStart, today))
	r := walker.next()
	for i := 0; i < cycleIndex; i++ {
		r = walker.next()
	}
	return r.End
}

// CycleEndDateForTarget resolves which cycle's end boundary targetDate
// falls into, walking forward from the effective start. Used for drawing a
// target marker on a projection chart. The walk is capped at
// MaxFixedCycles; a target beyond the cap gets the cap's boundary.
func CycleEndDateForTarget(cfg domain.CycleConfig, cycleStart, targetDate, today domain.Date) domain.Date {
	walker := newCycleWalker(cfg, effectiveStart(cycleStart, today))
	r := walker.next()
	for i := 1; i < MaxFixedCycles && r.End.Before(targetDate); i++ {
		r = walker.next()
	}
	return r.End
}
