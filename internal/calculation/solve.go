package calculation

import (
	"fmt"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveOptions tunes the interest-aware amount search.
type SolveOptions struct {
	MaxIterations int
	Tolerance     decimal.Decimal
}

// DefaultSolveOptions returns the search defaults: converge to within a
// penny in at most 100 bisections.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		MaxIterations: 100,
		Tolerance:     decimal.NewFromFloat(0.01),
	}
}

// SolveError describes a failed amount search.
type SolveError struct {
	Operation string
	Message   string
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// SolveRepaymentAmount finds the smallest per-cycle amount that clears
// balance by targetDate when interest accrues. The closed-form suggestion
// divides the balance evenly and is only valid without interest; here the
// simulated walk is inverted by binary search instead.
//
// The returned amount rounds up to 2 decimal places so it never undershoots
// the target cycle count.
func (e *Engine) SolveRepaymentAmount(balance decimal.Decimal, cycleStart, targetDate domain.Date, cfg domain.CycleConfig, annualRatePercent decimal.Decimal, today domain.Date, opts SolveOptions) (decimal.Decimal, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolveOptions().MaxIterations
	}
	if opts.Tolerance.LessThanOrEqual(decimalZero) {
		opts.Tolerance = DefaultSolveOptions().Tolerance
	}

	if balance.LessThanOrEqual(decimalZero) {
		return decimalZero, nil
	}

	rate := perCycleRate(annualRatePercent, cfg.Type)
	if rate.IsZero() {
		// No interest: the closed-form division is exact, no search needed.
		suggested := e.SuggestedRepaymentAmount(balance, cycleStart, &targetDate, cfg.Type, today)
		return *suggested, nil
	}

	targetCycles := CountPayCyclesUntil(effectiveStart(cycleStart, today), targetDate, cfg.Type)
	if targetCycles < 1 {
		targetCycles = 1
	}

	// Paying the whole first-cycle balance (interest included) always
	// clears in one cycle, so it bounds the search from above.
	lo := decimalZero
	hi := round2(balance.Mul(decimalOne.Add(rate)))

	for i := 0; i < opts.MaxIterations; i++ {
		if hi.Sub(lo).LessThanOrEqual(opts.Tolerance) {
			amount := hi.RoundCeil(2)
			e.Logger.Debugf("repayment amount converged to %s after %d iterations", amount, i)
			return amount, nil
		}
		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		if clearsWithin(balance, mid, rate, targetCycles) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return decimalZero, &SolveError{
		Operation: "solve_repayment_amount",
		Message:   fmt.Sprintf("did not converge after %d iterations", opts.MaxIterations),
	}
}

// clearsWithin simulates the interest-then-payment walk and reports
// whether the balance reaches zero within the given number of cycles.
func clearsWithin(balance, amountPerCycle, rate decimal.Decimal, cycles int) bool {
	if amountPerCycle.LessThanOrEqual(decimalZero) {
		return false
	}
	remaining := round2(balance)
	for i := 0; i < cycles; i++ {
		if rate.IsPositive() {
			remaining = round2(remaining.Mul(decimalOne.Add(rate)))
		}
		remaining = round2(remaining.Sub(amountPerCycle))
		if remaining.LessThanOrEqual(decimalZero) {
			return true
		}
	}
	return false
}
