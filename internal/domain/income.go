package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentSource identifies who in the household an income belongs to.
type PaymentSource string

const (
	SourceMe      PaymentSource = "me"
	SourcePartner PaymentSource = "partner"
	SourceJoint   PaymentSource = "joint"
)

// Valid reports whether ps is one of the known payment sources.
func (ps PaymentSource) Valid() bool {
	switch ps {
	case SourceMe, SourcePartner, SourceJoint:
		return true
	}
	return false
}

// IncomeSource is a recurring income the engine enumerates payment dates
// for. It is read-only to the engine; the household owner maintains these
// records elsewhere.
type IncomeSource struct {
	Name       string          `yaml:"name" json:"name"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency  CycleType       `yaml:"frequency" json:"frequency"`
	DayOfMonth int             `yaml:"day_of_month,omitempty" json:"dayOfMonth,omitempty"`
	AnchorDate Date            `yaml:"anchor_date,omitempty" json:"anchorDate,omitempty"`
	Source     PaymentSource   `yaml:"payment_source" json:"paymentSource"`
}

// Validate checks the source's internal consistency.
func (s IncomeSource) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("income source name is required")
	}
	if s.Amount.IsNegative() {
		return fmt.Errorf("income source %s: amount cannot be negative", s.Name)
	}
	if !s.Frequency.Valid() {
		return fmt.Errorf("income source %s: unknown frequency %q", s.Name, s.Frequency)
	}
	switch s.Frequency {
	case CycleSpecificDate:
		if s.DayOfMonth < 1 || s.DayOfMonth > 31 {
			return fmt.Errorf("income source %s: day of month must be between 1 and 31, got %d", s.Name, s.DayOfMonth)
		}
	case CycleEvery4Weeks:
		if s.AnchorDate.IsZero() {
			return fmt.Errorf("income source %s: anchor date is required for %s frequency", s.Name, CycleEvery4Weeks)
		}
	}
	if !s.Source.Valid() {
		return fmt.Errorf("income source %s: unknown payment source %q", s.Name, s.Source)
	}
	return nil
}

// IncomeEvent is one concrete payment of one source on one date.
type IncomeEvent struct {
	SourceName string          `json:"sourceName"`
	Amount     decimal.Decimal `json:"amount"`
	Date       Date            `json:"date"`
	Source     PaymentSource   `json:"paymentSource"`
}

// IncomeSummary is the aggregated income for one cycle window, split
// between the household owner and their partner. Joint sources are split
// by the household's joint ratio.
type IncomeSummary struct {
	Total   decimal.Decimal `json:"total"`
	Me      decimal.Decimal `json:"meTotal"`
	Partner decimal.Decimal `json:"partnerTotal"`
}
