package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Amount",
		"Type",
		"Cycles",
		"Reachable",
		"Finish Date",
		"Total Paid",
		"Interest Paid",
		"Cycles Diff",
		"Finish Diff (Days)",
		"Total Paid Diff",
		"Interest Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a candidate result as a CSV row
func (cf *CSVFormatter) formatRow(result *CandidateResult, rowType string) []string {
	finish := ""
	if result.FinishDate != nil {
		finish = result.FinishDate.String()
	}
	return []string{
		result.Amount.StringFixed(2),
		rowType,
		formatInt(result.Cycles),
		fmt.Sprintf("%t", result.Reachable),
		finish,
		result.TotalPaid.StringFixed(2),
		result.InterestPaid.StringFixed(2),
		formatInt(result.CyclesDiff),
		formatInt(result.FinishDiffDays),
		result.TotalPaidDiff.StringFixed(2),
		result.InterestDiff.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
