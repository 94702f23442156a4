package domain

import "fmt"

// CycleType selects the scheduling rule a household's pay cycle follows.
type CycleType string

const (
	// CycleSpecificDate pays on a fixed day of the month (1-31), shifted
	// back to the preceding Friday when it lands on a weekend.
	CycleSpecificDate CycleType = "specific_date"
	// CycleLastWorkingDay pays on the last working day of each month.
	CycleLastWorkingDay CycleType = "last_working_day"
	// CycleEvery4Weeks pays every 28 days from an anchor date, with no
	// weekend adjustment.
	CycleEvery4Weeks CycleType = "every_4_weeks"
)

// Valid reports whether ct is one of the known cycle types.
func (ct CycleType) Valid() bool {
	switch ct {
	case CycleSpecificDate, CycleLastWorkingDay, CycleEvery4Weeks:
		return true
	}
	return false
}

func (ct CycleType) String() string { return string(ct) }

// CyclesPerYear returns how many pay cycles occur in a year: 13 for
// 4-weekly (52/4), 12 for the monthly types. Used to derive per-cycle
// interest rates from annual percentages.
func (ct CycleType) CyclesPerYear() int {
	if ct == CycleEvery4Weeks {
		return 13
	}
	return 12
}

// CycleConfig is a household's pay-cycle configuration. PayDay is only
// meaningful for CycleSpecificDate; AnchorDate only for CycleEvery4Weeks.
type CycleConfig struct {
	Type       CycleType `yaml:"cycle_type" json:"cycleType"`
	PayDay     int       `yaml:"pay_day,omitempty" json:"payDay,omitempty"`
	AnchorDate Date      `yaml:"anchor_date,omitempty" json:"anchorDate,omitempty"`
}

// Validate checks the config's internal consistency.
func (c CycleConfig) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown cycle type %q", c.Type)
	}
	switch c.Type {
	case CycleSpecificDate:
		if c.PayDay < 1 || c.PayDay > 31 {
			return fmt.Errorf("pay day must be between 1 and 31, got %d", c.PayDay)
		}
	case CycleEvery4Weeks:
		if c.AnchorDate.IsZero() {
			return fmt.Errorf("anchor date is required for %s cycles", CycleEvery4Weeks)
		}
	}
	return nil
}

// CycleRange is one pay cycle's inclusive date boundaries. Start <= End;
// End is a working day for the weekend-adjusted cycle types.
type CycleRange struct {
	Start Date `yaml:"start" json:"start"`
	End   Date `yaml:"end" json:"end"`
}

// Contains reports whether d falls within the range, boundaries included.
func (r CycleRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the cycle length in days, boundaries included.
func (r CycleRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

func (r CycleRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}
