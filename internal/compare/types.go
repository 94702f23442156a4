package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// TargetKind identifies what a comparison is run against.
type TargetKind string

const (
	KindPot       TargetKind = "pot"
	KindRepayment TargetKind = "repayment"
)

// CandidateResult represents a single candidate per-cycle amount with its
// projected outcome.
type CandidateResult struct {
	Amount decimal.Decimal `json:"amount"`

	// Key metrics
	Cycles       int             `json:"cycles"`
	Reachable    bool            `json:"reachable"`
	FinishDate   *domain.Date    `json:"finishDate,omitempty"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	InterestPaid decimal.Decimal `json:"interestPaid"`

	// Comparison to base
	CyclesDiff     int             `json:"cyclesDiff"`
	FinishDiffDays int             `json:"finishDiffDays"`
	TotalPaidDiff  decimal.Decimal `json:"totalPaidDiff"`
	InterestDiff   decimal.Decimal `json:"interestDiff"`
}

// ComparisonSet represents a collection of candidate amounts compared
// against the locked-in base amount.
type ComparisonSet struct {
	TargetName         string            `json:"targetName"`
	Kind               TargetKind        `json:"kind"`
	BaseAmount         decimal.Decimal   `json:"baseAmount"`
	BaseResult         *CandidateResult  `json:"baseResult"`
	AlternativeResults []CandidateResult `json:"alternativeResults"`
	Recommendations    []string          `json:"recommendations"`
}

// CalculateComparison fills in a candidate's deltas against the base.
func CalculateComparison(candidate, base CandidateResult) CandidateResult {
	candidate.CyclesDiff = candidate.Cycles - base.Cycles
	candidate.TotalPaidDiff = candidate.TotalPaid.Sub(base.TotalPaid)
	candidate.InterestDiff = candidate.InterestPaid.Sub(base.InterestPaid)
	if candidate.FinishDate != nil && base.FinishDate != nil {
		candidate.FinishDiffDays = base.FinishDate.DaysUntil(*candidate.FinishDate)
	}
	return candidate
}

// GenerateRecommendations creates recommendations based on comparison results.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	// Fastest finish
	fastest := compSet.BaseResult
	fastestAmount := compSet.BaseAmount
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Reachable && (!fastest.Reachable || alt.Cycles < fastest.Cycles) {
			fastest = alt
			fastestAmount = alt.Amount
		}
	}

	if fastest != compSet.BaseResult {
		if compSet.BaseResult.Reachable {
			cyclesSaved := compSet.BaseResult.Cycles - fastest.Cycles
			recommendations = append(recommendations,
				fmt.Sprintf("Fastest: %s per cycle finishes %d cycle(s) sooner than the current amount",
					fastestAmount.StringFixed(2), cyclesSaved))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Fastest: %s per cycle finishes in %d cycle(s); the current amount never finishes",
					fastestAmount.StringFixed(2), fastest.Cycles))
		}
	}

	// Lowest interest (repayments only)
	if compSet.Kind == KindRepayment {
		cheapest := compSet.BaseResult
		cheapestAmount := compSet.BaseAmount
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if alt.Reachable && alt.InterestPaid.LessThan(cheapest.InterestPaid) {
				cheapest = alt
				cheapestAmount = alt.Amount
			}
		}

		if cheapest != compSet.BaseResult {
			saved := compSet.BaseResult.InterestPaid.Sub(cheapest.InterestPaid)
			recommendations = append(recommendations,
				fmt.Sprintf("Lowest interest: %s per cycle saves %s in interest",
					cheapestAmount.StringFixed(2), saved.StringFixed(2)))
		}
	}

	return recommendations
}
