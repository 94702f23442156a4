package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing candidate amounts
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("PER-CYCLE AMOUNT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target: %s (%s)\n", compSet.TargetName, compSet.Kind))
	sb.WriteString(fmt.Sprintf("Current amount: %s\n", compSet.BaseAmount.StringFixed(2)))
	sb.WriteString("\n")

	// Column widths
	amountWidth := 14
	numWidth := 14

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		amountWidth, "Amount",
		numWidth, "Cycles",
		numWidth, "Finishes",
		numWidth, "Total Paid",
		numWidth, "Interest"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base row
	sb.WriteString(tf.formatRow(compSet.BaseResult, amountWidth, numWidth, true))

	// Candidate rows
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], amountWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO CURRENT AMOUNT\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s per cycle:\n", alt.Amount.StringFixed(2)))

			if alt.CyclesDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Cycles:      %s%d\n",
					intSymbol(alt.CyclesDiff), alt.CyclesDiff))
			}
			if alt.FinishDiffDays != 0 {
				sb.WriteString(fmt.Sprintf("  Finish date: %s%d days\n",
					intSymbol(alt.FinishDiffDays), alt.FinishDiffDays))
			}
			if !alt.TotalPaidDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  Total paid:  %s%s\n",
					tf.deltaSymbol(alt.TotalPaidDiff), alt.TotalPaidDiff.Abs().StringFixed(2)))
			}
			if !alt.InterestDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  Interest:    %s%s\n",
					tf.deltaSymbol(alt.InterestDiff), alt.InterestDiff.Abs().StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single candidate row
func (tf *TableFormatter) formatRow(result *CandidateResult, amountWidth, numWidth int, isBase bool) string {
	amount := result.Amount.StringFixed(2)
	if isBase {
		amount += " (now)"
	}

	cyclesStr := fmt.Sprintf("%d", result.Cycles)
	finishStr := "never"
	if result.Reachable {
		if result.FinishDate != nil {
			finishStr = result.FinishDate.String()
		}
	} else {
		cyclesStr = "60+"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		amountWidth, amount,
		numWidth, cyclesStr,
		numWidth, finishStr,
		numWidth, result.TotalPaid.StringFixed(2),
		numWidth, result.InterestPaid.StringFixed(2))
}

// deltaSymbol returns a + prefix for positive deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func intSymbol(i int) string {
	if i > 0 {
		return "+"
	}
	return ""
}
