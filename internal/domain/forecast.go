package domain

import "github.com/shopspring/decimal"

// PotForecast is one pot's projected walk plus the derived planning
// numbers the dashboard renders next to it.
type PotForecast struct {
	Name            string            `json:"name"`
	CurrentAmount   decimal.Decimal   `json:"currentAmount"`
	TargetAmount    decimal.Decimal   `json:"targetAmount"`
	AmountPerCycle  decimal.Decimal   `json:"amountPerCycle"`
	Projection      []ProjectionPoint `json:"projection"`
	CyclesToGoal    int               `json:"cyclesToGoal"`
	Reachable       bool              `json:"reachable"`
	GoalDate        *Date             `json:"goalDate,omitempty"`
	SuggestedAmount *decimal.Decimal  `json:"suggestedAmount,omitempty"`
}

// RepaymentForecast is one repayment's projected walk plus its total cost.
type RepaymentForecast struct {
	Name            string            `json:"name"`
	CurrentBalance  decimal.Decimal   `json:"currentBalance"`
	AmountPerCycle  decimal.Decimal   `json:"amountPerCycle"`
	Projection      []ProjectionPoint `json:"projection"`
	Cost            RepaymentCost     `json:"cost"`
	ClearedDate     *Date             `json:"clearedDate,omitempty"`
	SuggestedAmount *decimal.Decimal  `json:"suggestedAmount,omitempty"`
}

// ForecastReport is the full output of a forecast run over a plan: the
// current cycle, its projected income, and a walk for every pot and
// repayment.
type ForecastReport struct {
	Today        Date                `json:"today"`
	Currency     string              `json:"currency,omitempty"`
	CurrentCycle CycleRange          `json:"currentCycle"`
	NextCycle    CycleRange          `json:"nextCycle"`
	Income       IncomeSummary       `json:"income"`
	IncomeEvents []IncomeEvent       `json:"incomeEvents,omitempty"`
	Pots         []PotForecast       `json:"pots,omitempty"`
	Repayments   []RepaymentForecast `json:"repayments,omitempty"`
}
