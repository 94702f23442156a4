package calculation

import (
	"time"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// cycleLengthDays is the inclusive length of an every-4-weeks cycle.
const cycleLengthDays = 28

// ToWorkingDay shifts a weekend date back to the preceding Friday:
// Saturday moves back one day, Sunday two. The adjustment always moves
// backward, never forward; that determines which month's pay cycle a
// boundary belongs to.
func ToWorkingDay(d domain.Date) domain.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(-2)
	}
	return d
}

// LastWorkingDayOfMonth returns the month's last calendar day, pulled back
// off a weekend if needed.
func LastWorkingDayOfMonth(year int, month time.Month) domain.Date {
	return ToWorkingDay(domain.NewDate(year, month, domain.DaysInMonth(year, month)))
}

// dayOfMonthClamped builds a date in the given month, clamping days past
// the month's length to its last day (day 31 in February becomes the last
// day of February).
func dayOfMonthClamped(year int, month time.Month, day int) domain.Date {
	if max := domain.DaysInMonth(year, month); day > max {
		day = max
	}
	return domain.NewDate(year, month, day)
}

// addMonth steps a year/month pair forward or backward, wrapping the year.
func addMonth(year int, month time.Month, n int) (int, time.Month) {
	m := int(month) - 1 + n
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}

// CycleStartDate returns the start of the cycle that contains today.
//
// Every4Weeks returns the configured anchor verbatim; the caller supplies
// the most recent known anchor. SpecificDate starts on this month's
// working-day-adjusted pay day unless that is still in the future, in
// which case the current cycle started on last month's pay day.
// LastWorkingDay cycles start the day after last month's last working day.
func CycleStartDate(cfg domain.CycleConfig, today domain.Date) domain.Date {
	switch cfg.Type {
	case domain.CycleEvery4Weeks:
		return cfg.AnchorDate
	case domain.CycleLastWorkingDay:
		prevYear, prevMonth := addMonth(today.Year(), today.Month(), -1)
		return LastWorkingDayOfMonth(prevYear, prevMonth).AddDays(1)
	default: // specific date
		thisMonth := ToWorkingDay(dayOfMonthClamped(today.Year(), today.Month(), cfg.PayDay))
		if thisMonth.After(today) {
			prevYear, prevMonth := addMonth(today.Year(), today.Month(), -1)
			return ToWorkingDay(dayOfMonthClamped(prevYear, prevMonth, cfg.PayDay))
		}
		return thisMonth
	}
}

// CycleEndDate returns the inclusive end of the cycle beginning at start.
//
// Every4Weeks cycles are a fixed 28 days. LastWorkingDay cycles end on the
// last working day of the start's month. SpecificDate cycles end on the
// working-day-adjusted day immediately before the next month's pay day,
// itself working-day-adjusted.
func CycleEndDate(cfg domain.CycleConfig, start domain.Date) domain.Date {
	switch cfg.Type {
	case domain.CycleEvery4Weeks:
		return start.AddDays(cycleLengthDays - 1)
	case domain.CycleLastWorkingDay:
		end := LastWorkingDayOfMonth(start.Year(), start.Month())
		if end.Before(start) {
			// Start fell after the adjusted last working day (month ends
			// on a weekend), so this cycle runs to the next month's.
			y, m := addMonth(start.Year(), start.Month(), 1)
			end = LastWorkingDayOfMonth(y, m)
		}
		return end
	default: // specific date
		y, m := addMonth(start.Year(), start.Month(), 1)
		nextPay := ToWorkingDay(dayOfMonthClamped(y, m, cfg.PayDay))
		return ToWorkingDay(nextPay.AddDays(-1))
	}
}

// NextCycleDates returns the cycle following one that ended on prevEnd.
// The new cycle starts the day after prevEnd and its end is computed from
// the new start's month, not walked forward from prevEnd's month, so
// last-working-day cycles cannot drift after long months.
func NextCycleDates(cfg domain.CycleConfig, prevEnd domain.Date) domain.CycleRange {
	start := prevEnd.AddDays(1)
	return domain.CycleRange{Start: start, End: CycleEndDate(cfg, start)}
}

// CurrentCycle resolves the full cycle range containing today.
func CurrentCycle(cfg domain.CycleConfig, today domain.Date) domain.CycleRange {
	start := CycleStartDate(cfg, today)
	return domain.CycleRange{Start: start, End: CycleEndDate(cfg, start)}
}
