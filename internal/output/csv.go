package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// CSVFormatter writes a forecast report as flat CSV sections suitable for
// import into a spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ForecastReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Section", "Field", "Value"},
		{"Summary", "Today", report.Today.String()},
		{"Summary", "Current Cycle Start", report.CurrentCycle.Start.String()},
		{"Summary", "Current Cycle End", report.CurrentCycle.End.String()},
		{"Summary", "Next Cycle Start", report.NextCycle.Start.String()},
		{"Summary", "Next Cycle End", report.NextCycle.End.String()},
		{"Income", "Total", report.Income.Total.StringFixed(2)},
		{"Income", "Me", report.Income.Me.StringFixed(2)},
		{"Income", "Partner", report.Income.Partner.StringFixed(2)},
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("writing csv record: %w", err)
		}
	}

	if len(report.IncomeEvents) > 0 {
		w.Write([]string{})
		w.Write([]string{"Income Events", "Date", "Source", "Amount", "Paid To"})
		for _, ev := range report.IncomeEvents {
			w.Write([]string{"Income Events", ev.Date.String(), ev.SourceName, ev.Amount.StringFixed(2), string(ev.Source)})
		}
	}

	if len(report.Pots) > 0 {
		w.Write([]string{})
		w.Write([]string{"Pots", "Name", "Current", "Target", "Per Cycle", "Cycles To Goal", "Goal Date", "Suggested"})
		for _, pot := range report.Pots {
			w.Write([]string{
				"Pots",
				pot.Name,
				pot.CurrentAmount.StringFixed(2),
				pot.TargetAmount.StringFixed(2),
				pot.AmountPerCycle.StringFixed(2),
				cyclesLabel(pot.CyclesToGoal, pot.Reachable),
				dateLabel(pot.GoalDate),
				amountLabel(pot.SuggestedAmount),
			})
		}
	}

	if len(report.Repayments) > 0 {
		w.Write([]string{})
		w.Write([]string{"Repayments", "Name", "Balance", "Per Cycle", "Total Paid", "Interest Paid", "Cycles", "Cleared", "Suggested"})
		for _, rp := range report.Repayments {
			w.Write([]string{
				"Repayments",
				rp.Name,
				rp.CurrentBalance.StringFixed(2),
				rp.AmountPerCycle.StringFixed(2),
				rp.Cost.TotalPaid.StringFixed(2),
				rp.Cost.InterestPaid(rp.CurrentBalance).StringFixed(2),
				fmt.Sprintf("%d", rp.Cost.Cycles),
				dateLabel(rp.ClearedDate),
				amountLabel(rp.SuggestedAmount),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}
