package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/domain"
)

// CompareEngine runs the same projection for a set of candidate per-cycle
// amounts and collects the outcomes.
type CompareEngine struct {
	Engine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine.
func NewCompareEngine(engine *calculation.Engine) *CompareEngine {
	return &CompareEngine{Engine: engine}
}

// ComparePot compares candidate contribution amounts for a savings pot.
// The pot's locked-in amount is the base; each candidate is projected from
// the current cycle start.
func (ce *CompareEngine) ComparePot(pot domain.Pot, cfg domain.CycleConfig, today domain.Date, candidates []decimal.Decimal) (*ComparisonSet, error) {
	if pot.LockedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("pot %s has no per-cycle amount to compare against", pot.Name)
	}

	cycleStart := calculation.CycleStartDate(cfg, today)
	base := ce.potCandidate(pot, cfg, cycleStart, pot.LockedAmount)

	alternatives := make([]CandidateResult, 0, len(candidates))
	for _, amount := range candidates {
		alt := ce.potCandidate(pot, cfg, cycleStart, amount)
		alternatives = append(alternatives, CalculateComparison(alt, base))
	}

	compSet := &ComparisonSet{
		TargetName:         pot.Name,
		Kind:               KindPot,
		BaseAmount:         pot.LockedAmount,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareRepayment compares candidate payment amounts for a repayment. The
// repayment's locked-in amount is the base; interest is applied when the
// repayment is configured to accrue it.
func (ce *CompareEngine) CompareRepayment(rp domain.Repayment, cfg domain.CycleConfig, today domain.Date, candidates []decimal.Decimal) (*ComparisonSet, error) {
	if rp.LockedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("repayment %s has no per-cycle amount to compare against", rp.Name)
	}

	cycleStart := calculation.CycleStartDate(cfg, today)
	base := ce.repaymentCandidate(rp, cfg, cycleStart, rp.LockedAmount)

	alternatives := make([]CandidateResult, 0, len(candidates))
	for _, amount := range candidates {
		alt := ce.repaymentCandidate(rp, cfg, cycleStart, amount)
		alternatives = append(alternatives, CalculateComparison(alt, base))
	}

	compSet := &ComparisonSet{
		TargetName:         rp.Name,
		Kind:               KindRepayment,
		BaseAmount:         rp.LockedAmount,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

func (ce *CompareEngine) potCandidate(pot domain.Pot, cfg domain.CycleConfig, cycleStart domain.Date, amount decimal.Decimal) CandidateResult {
	result := CandidateResult{Amount: amount}

	cycles, reachable := calculation.CyclesToGoal(pot.CurrentAmount, pot.TargetAmount, amount)
	result.Reachable = reachable
	if !reachable {
		result.Cycles = calculation.DefaultMaxCycles
		result.TotalPaid = amount.Mul(decimal.NewFromInt(int64(result.Cycles))).Round(2)
		return result
	}

	result.Cycles = cycles
	result.TotalPaid = amount.Mul(decimal.NewFromInt(int64(cycles))).Round(2)

	points := ce.Engine.ProjectSavingsOverTime(pot.CurrentAmount, pot.TargetAmount, amount, cycleStart, cfg, cycles)
	if len(points) > 0 {
		finish := points[len(points)-1].CycleEnd
		result.FinishDate = &finish
	}
	return result
}

func (ce *CompareEngine) repaymentCandidate(rp domain.Repayment, cfg domain.CycleConfig, cycleStart domain.Date, amount decimal.Decimal) CandidateResult {
	result := CandidateResult{Amount: amount}

	costOpts := calculation.CostOptions{}
	projOpts := calculation.RepaymentOptions{}
	if rp.IncludeInterest && rp.InterestRate.IsPositive() {
		costOpts.AnnualRatePercent = rp.InterestRate
		projOpts.IncludeInterest = true
		projOpts.AnnualRatePercent = rp.InterestRate
	}

	cost := ce.Engine.TotalRepaymentCost(rp.CurrentBalance, amount, cycleStart, cfg, costOpts)
	result.Cycles = cost.Cycles
	result.TotalPaid = cost.TotalPaid
	result.InterestPaid = cost.InterestPaid(rp.CurrentBalance)

	points := ce.Engine.ProjectRepaymentOverTime(rp.CurrentBalance, amount, cycleStart, cfg, projOpts)
	if len(points) > 0 {
		last := points[len(points)-1]
		if last.Balance.IsZero() {
			result.Reachable = true
			finish := last.CycleEnd
			result.FinishDate = &finish
		}
	}
	return result
}
