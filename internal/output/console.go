package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// ConsoleFormatter renders a forecast report as a plain-text table for the
// terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "table" }

func (c ConsoleFormatter) Format(report *domain.ForecastReport) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("PAY CYCLE FORECAST\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Today:         %s\n", report.Today))
	sb.WriteString(fmt.Sprintf("Current cycle: %s\n", report.CurrentCycle))
	sb.WriteString(fmt.Sprintf("Next cycle:    %s\n", report.NextCycle))
	sb.WriteString("\n")

	sb.WriteString("INCOME THIS CYCLE\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-30s %12s %12s %12s\n", "", "Total", "Me", "Partner"))
	sb.WriteString(fmt.Sprintf("%-30s %12s %12s %12s\n", "Projected income",
		report.Income.Total.StringFixed(2),
		report.Income.Me.StringFixed(2),
		report.Income.Partner.StringFixed(2)))
	for _, ev := range report.IncomeEvents {
		sb.WriteString(fmt.Sprintf("  %s  %-20s %10s (%s)\n", ev.Date, ev.SourceName, ev.Amount.StringFixed(2), ev.Source))
	}

	if len(report.Pots) > 0 {
		sb.WriteString("\nSAVINGS POTS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(fmt.Sprintf("%-20s %10s %10s %10s %8s %12s\n",
			"Pot", "Current", "Target", "Per cycle", "Cycles", "Goal date"))
		for _, pot := range report.Pots {
			sb.WriteString(fmt.Sprintf("%-20s %10s %10s %10s %8s %12s\n",
				pot.Name,
				pot.CurrentAmount.StringFixed(2),
				pot.TargetAmount.StringFixed(2),
				pot.AmountPerCycle.StringFixed(2),
				cyclesLabel(pot.CyclesToGoal, pot.Reachable),
				dateLabel(pot.GoalDate)))
			if pot.SuggestedAmount != nil && !pot.SuggestedAmount.IsZero() {
				sb.WriteString(fmt.Sprintf("%-20s suggested per cycle: %s\n", "", pot.SuggestedAmount.StringFixed(2)))
			}
		}
	}

	if len(report.Repayments) > 0 {
		sb.WriteString("\nREPAYMENTS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(fmt.Sprintf("%-20s %10s %10s %10s %12s %12s\n",
			"Debt", "Balance", "Per cycle", "Total paid", "Cycles", "Cleared"))
		for _, rp := range report.Repayments {
			sb.WriteString(fmt.Sprintf("%-20s %10s %10s %10s %12d %12s\n",
				rp.Name,
				rp.CurrentBalance.StringFixed(2),
				rp.AmountPerCycle.StringFixed(2),
				rp.Cost.TotalPaid.StringFixed(2),
				rp.Cost.Cycles,
				dateLabel(rp.ClearedDate)))
			if rp.SuggestedAmount != nil && !rp.SuggestedAmount.IsZero() {
				sb.WriteString(fmt.Sprintf("%-20s suggested per cycle: %s\n", "", rp.SuggestedAmount.StringFixed(2)))
			}
		}
	}

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	return []byte(sb.String()), nil
}

func cyclesLabel(cycles int, reachable bool) string {
	if !reachable {
		return "never"
	}
	return fmt.Sprintf("%d", cycles)
}

func dateLabel(d *domain.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func amountLabel(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(2)
}
