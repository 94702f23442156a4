package config

import (
	"fmt"
	"os"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Parser handles parsing of plan files.
type Parser struct{}

// NewParser creates a new plan parser.
func NewParser() *Parser {
	return &Parser{}
}

// LoadFromFile loads a plan from a YAML file and validates it.
func (p *Parser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return p.Load(data)
}

// Load parses and validates plan YAML.
func (p *Parser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates the loaded plan.
func (p *Parser) ValidatePlan(plan *domain.Plan) error {
	if err := plan.Household.Validate(); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}
	for i, src := range plan.IncomeSources {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("income source %d validation failed: %w", i, err)
		}
	}
	for i, pot := range plan.Pots {
		if err := p.validatePot(&pot); err != nil {
			return fmt.Errorf("pot %d (%s) validation failed: %w", i, pot.Name, err)
		}
	}
	for i, rp := range plan.Repayments {
		if err := p.validateRepayment(&rp); err != nil {
			return fmt.Errorf("repayment %d (%s) validation failed: %w", i, rp.Name, err)
		}
	}
	return nil
}

func (p *Parser) validatePot(pot *domain.Pot) error {
	if pot.Name == "" {
		return fmt.Errorf("name is required")
	}
	if pot.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount cannot be negative")
	}
	if pot.TargetAmount.IsNegative() {
		return fmt.Errorf("target amount cannot be negative")
	}
	if pot.LockedAmount.IsNegative() {
		return fmt.Errorf("amount per cycle cannot be negative")
	}
	return nil
}

func (p *Parser) validateRepayment(rp *domain.Repayment) error {
	if rp.Name == "" {
		return fmt.Errorf("name is required")
	}
	if rp.CurrentBalance.IsNegative() {
		return fmt.Errorf("current balance cannot be negative")
	}
	if rp.StartingBalance.LessThan(rp.CurrentBalance) {
		return fmt.Errorf("starting balance cannot be less than current balance")
	}
	if rp.LockedAmount.IsNegative() {
		return fmt.Errorf("amount per cycle cannot be negative")
	}
	if rp.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	if rp.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("interest rate must be an annual percentage between 0 and 100")
	}
	if rp.IncludeInterest && rp.InterestRate.IsZero() {
		return fmt.Errorf("include_interest requires a non-zero interest rate")
	}
	return nil
}
