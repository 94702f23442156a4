package domain

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ISODateLayout is the only wire format dates cross the engine boundary in.
// No time-of-day, no timezone; string comparison orders correctly.
const ISODateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone. The engine
// standardizes on this type internally and only converts to/from ISO
// YYYY-MM-DD strings at the boundary.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day. Out-of-range values are
// normalized the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current wall-clock date. Engine functions never call
// this themselves; callers pass a reference date in so tests can freeze it.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustDate parses an ISO date string and panics on failure. Test helper.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1 ordering d against other.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other. Negative
// when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// MonthsUntil returns the calendar-month difference from d to other,
// ignoring the day component.
func (d Date) MonthsUntil(other Date) int {
	return (other.Year()-d.Year())*12 + int(other.Month()) - int(d.Month())
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(ISODateLayout) }

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
