package calculation

import (
	"sort"
	"time"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// PaymentDatesInRange returns every concrete date the source is paid
// within the inclusive range [from, to], sorted ascending and deduplicated
// by ISO date string.
//
// Specific-date and last-working-day sources land at most once per
// calendar month. Every-4-weeks sources step in fixed 28-day increments
// from their anchor with no weekend adjustment, so they can land twice in
// one monthly budget cycle; the count must not be collapsed, callers rely
// on it.
func PaymentDatesInRange(src domain.IncomeSource, from, to domain.Date) []domain.Date {
	if to.Before(from) {
		return nil
	}

	var dates []domain.Date
	switch src.Frequency {
	case domain.CycleEvery4Weeks:
		if src.AnchorDate.IsZero() {
			return nil
		}
		for d := src.AnchorDate; !d.After(to); d = d.AddDays(cycleLengthDays) {
			if !d.Before(from) {
				dates = append(dates, d)
			}
		}
	case domain.CycleLastWorkingDay:
		forEachMonth(from, to, func(year int, month time.Month) {
			d := LastWorkingDayOfMonth(year, month)
			if !d.Before(from) && !d.After(to) {
				dates = append(dates, d)
			}
		})
	default: // specific day of month
		forEachMonth(from, to, func(year int, month time.Month) {
			candidate := dayOfMonthClamped(year, month, src.DayOfMonth)
			// Range membership is tested on the nominal pay day; the
			// weekend shift is applied after.
			if !candidate.Before(from) && !candidate.After(to) {
				dates = append(dates, ToWorkingDay(candidate))
			}
		})
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dedupeDates(dates)
}

// forEachMonth visits every calendar month overlapping [from, to].
func forEachMonth(from, to domain.Date, fn func(year int, month time.Month)) {
	year, month := from.Year(), from.Month()
	for year < to.Year() || (year == to.Year() && month <= to.Month()) {
		fn(year, month)
		year, month = addMonth(year, month, 1)
	}
}

// dedupeDates removes adjacent duplicates from a sorted slice. Distinct
// months can map to the same post-adjustment date only in pathological
// configurations, but the contract is one event per output date.
func dedupeDates(dates []domain.Date) []domain.Date {
	if len(dates) < 2 {
		return dates
	}
	out := dates[:1]
	for _, d := range dates[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
