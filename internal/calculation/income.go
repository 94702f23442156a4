package calculation

import (
	"sort"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectIncomeForCycle aggregates every source's payments within the
// cycle window into a household total and the owner/partner split. Joint
// sources split by jointRatio: the owner takes amount*ratio, the partner
// the remainder. All three totals are rounded to 2 decimal places at the
// end.
func (e *Engine) ProjectIncomeForCycle(cycle domain.CycleRange, sources []domain.IncomeSource, jointRatio decimal.Decimal) domain.IncomeSummary {
	jointRatio = clampRatio(jointRatio)

	total, me, partner := decimalZero, decimalZero, decimalZero
	for _, src := range sources {
		count := len(PaymentDatesInRange(src, cycle.Start, cycle.End))
		if count == 0 {
			continue
		}
		amount := src.Amount.Mul(decimal.NewFromInt(int64(count)))
		total = total.Add(amount)

		switch src.Source {
		case domain.SourcePartner:
			partner = partner.Add(amount)
		case domain.SourceJoint:
			me = me.Add(amount.Mul(jointRatio))
			partner = partner.Add(amount.Mul(decimalOne.Sub(jointRatio)))
		default:
			me = me.Add(amount)
		}

		if count > 1 {
			e.Logger.Debugf("income source %s pays %d times in cycle %s", src.Name, count, cycle)
		}
	}

	return domain.IncomeSummary{
		Total:   round2(total),
		Me:      round2(me),
		Partner: round2(partner),
	}
}

// IncomeEventsForRange flattens every source's payment dates within
// [from, to] into a single list of events ordered by date, for display.
func (e *Engine) IncomeEventsForRange(sources []domain.IncomeSource, from, to domain.Date) []domain.IncomeEvent {
	var events []domain.IncomeEvent
	for _, src := range sources {
		for _, d := range PaymentDatesInRange(src, from, to) {
			events = append(events, domain.IncomeEvent{
				SourceName: src.Name,
				Amount:     round2(src.Amount),
				Date:       d,
				Source:     src.Source,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].SourceName < events[j].SourceName
	})
	return events
}

// clampRatio normalizes a joint ratio into [0, 1].
func clampRatio(r decimal.Decimal) decimal.Decimal {
	if r.IsNegative() {
		return decimalZero
	}
	if r.GreaterThan(decimalOne) {
		return decimalOne
	}
	return r
}
