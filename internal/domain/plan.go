package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Household carries the cycle configuration and joint-income split shared
// by everything in a plan. Currency is display-only; it never affects a
// calculation.
type Household struct {
	Cycle      CycleConfig     `yaml:",inline" json:"cycle"`
	JointRatio decimal.Decimal `yaml:"joint_ratio" json:"jointRatio"`
	Currency   string          `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// Validate checks the household's internal consistency.
func (h Household) Validate() error {
	if err := h.Cycle.Validate(); err != nil {
		return err
	}
	if h.JointRatio.IsNegative() || h.JointRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("joint ratio must be between 0 and 1, got %s", h.JointRatio)
	}
	return nil
}

// Pot is a savings goal: a balance being built toward a target amount,
// optionally by a target date. LockedAmount is the per-cycle contribution
// the user has committed to; persisting it is the caller's concern.
type Pot struct {
	Name          string          `yaml:"name" json:"name"`
	CurrentAmount decimal.Decimal `yaml:"current_amount" json:"currentAmount"`
	TargetAmount  decimal.Decimal `yaml:"target_amount" json:"targetAmount"`
	LockedAmount  decimal.Decimal `yaml:"amount_per_cycle,omitempty" json:"amountPerCycle,omitempty"`
	TargetDate    *Date           `yaml:"target_date,omitempty" json:"targetDate,omitempty"`
}

// Repayment is a debt being paid down, optionally accruing interest.
type Repayment struct {
	Name            string          `yaml:"name" json:"name"`
	StartingBalance decimal.Decimal `yaml:"starting_balance" json:"startingBalance"`
	CurrentBalance  decimal.Decimal `yaml:"current_balance" json:"currentBalance"`
	LockedAmount    decimal.Decimal `yaml:"amount_per_cycle,omitempty" json:"amountPerCycle,omitempty"`
	InterestRate    decimal.Decimal `yaml:"interest_rate,omitempty" json:"interestRate,omitempty"`
	IncludeInterest bool            `yaml:"include_interest,omitempty" json:"includeInterest,omitempty"`
	TargetDate      *Date           `yaml:"target_date,omitempty" json:"targetDate,omitempty"`
}

// Plan is a household's full planning input: one cycle configuration plus
// the income sources, savings pots and repayments read from the external
// store. The engine only ever reads it.
type Plan struct {
	Household     Household      `yaml:"household" json:"household"`
	IncomeSources []IncomeSource `yaml:"income_sources,omitempty" json:"incomeSources,omitempty"`
	Pots          []Pot          `yaml:"pots,omitempty" json:"pots,omitempty"`
	Repayments    []Repayment    `yaml:"repayments,omitempty" json:"repayments,omitempty"`
}
