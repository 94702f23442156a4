package calculation

import (
	"github.com/mfarrow/cyclecast/internal/domain"
)

// RunForecast projects every pot and repayment in the plan across the
// household's pay cycles, starting from the cycle containing today. The
// report is computed fresh on every call; nothing is persisted.
func (e *Engine) RunForecast(plan *domain.Plan, today domain.Date) *domain.ForecastReport {
	cfg := plan.Household.Cycle
	cycle := CurrentCycle(cfg, today)

	report := &domain.ForecastReport{
		Today:        today,
		Currency:     plan.Household.Currency,
		CurrentCycle: cycle,
		NextCycle:    NextCycleDates(cfg, cycle.End),
		Income:       e.ProjectIncomeForCycle(cycle, plan.IncomeSources, plan.Household.JointRatio),
		IncomeEvents: e.IncomeEventsForRange(plan.IncomeSources, cycle.Start, cycle.End),
	}

	for _, pot := range plan.Pots {
		report.Pots = append(report.Pots, e.forecastPot(pot, cfg, cycle.Start, today))
	}
	for _, rp := range plan.Repayments {
		report.Repayments = append(report.Repayments, e.forecastRepayment(rp, cfg, cycle.Start, today))
	}

	e.Logger.Infof("forecast for cycle %s: %d pots, %d repayments", cycle, len(report.Pots), len(report.Repayments))
	return report
}

func (e *Engine) forecastPot(pot domain.Pot, cfg domain.CycleConfig, cycleStart, today domain.Date) domain.PotForecast {
	projection := e.ProjectSavingsOverTime(pot.CurrentAmount, pot.TargetAmount, pot.LockedAmount, cycleStart, cfg, DefaultMaxCycles)
	cycles, reachable := CyclesToGoal(pot.CurrentAmount, pot.TargetAmount, pot.LockedAmount)

	fc := domain.PotForecast{
		Name:            pot.Name,
		CurrentAmount:   pot.CurrentAmount,
		TargetAmount:    pot.TargetAmount,
		AmountPerCycle:  pot.LockedAmount,
		Projection:      projection,
		CyclesToGoal:    cycles,
		Reachable:       reachable,
		SuggestedAmount: e.SuggestedSavingsAmount(pot.CurrentAmount, pot.TargetAmount, cycleStart, pot.TargetDate, cfg.Type, today),
	}
	if reachable && domain.FinalBalance(projection).GreaterThanOrEqual(pot.TargetAmount) {
		goal := projection[len(projection)-1].Date
		fc.GoalDate = &goal
	}
	return fc
}

func (e *Engine) forecastRepayment(rp domain.Repayment, cfg domain.CycleConfig, cycleStart, today domain.Date) domain.RepaymentForecast {
	projection := e.ProjectRepaymentOverTime(rp.CurrentBalance, rp.LockedAmount, cycleStart, cfg, RepaymentOptions{
		IncludeInterest:   rp.IncludeInterest,
		AnnualRatePercent: rp.InterestRate,
	})

	costRate := rp.InterestRate
	if !rp.IncludeInterest {
		costRate = decimalZero
	}
	fc := domain.RepaymentForecast{
		Name:           rp.Name,
		CurrentBalance: rp.CurrentBalance,
		AmountPerCycle: rp.LockedAmount,
		Projection:     projection,
		Cost:           e.TotalRepaymentCost(rp.CurrentBalance, rp.LockedAmount, cycleStart, cfg, CostOptions{AnnualRatePercent: costRate}),
	}

	if rp.CurrentBalance.IsPositive() && domain.FinalBalance(projection).IsZero() {
		cleared := projection[len(projection)-1].Date
		fc.ClearedDate = &cleared
	}

	if rp.TargetDate != nil && rp.IncludeInterest && rp.InterestRate.IsPositive() {
		if amount, err := e.SolveRepaymentAmount(rp.CurrentBalance, cycleStart, *rp.TargetDate, cfg, rp.InterestRate, today, DefaultSolveOptions()); err == nil {
			fc.SuggestedAmount = &amount
		} else {
			e.Logger.Warnf("repayment %s: %v", rp.Name, err)
		}
	} else {
		fc.SuggestedAmount = e.SuggestedRepaymentAmount(rp.CurrentBalance, cycleStart, rp.TargetDate, cfg.Type, today)
	}
	return fc
}
