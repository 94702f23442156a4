package calculation

import (
	"testing"

	"github.com/mfarrow/cyclecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func febCycle() domain.CycleRange {
	return domain.CycleRange{Start: domain.MustDate("2024-02-01"), End: domain.MustDate("2024-02-29")}
}

func TestProjectIncomeForCycle_JointSplit(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{{
		Name:       "joint salary",
		Amount:     decimal.NewFromInt(1000),
		Frequency:  domain.CycleSpecificDate,
		DayOfMonth: 15,
		Source:     domain.SourceJoint,
	}}

	summary := engine.ProjectIncomeForCycle(febCycle(), sources, decimal.NewFromFloat(0.6))

	assert.True(t, summary.Total.Equal(decimal.NewFromInt(1000)), "total %s", summary.Total)
	assert.True(t, summary.Me.Equal(decimal.NewFromInt(600)), "me %s", summary.Me)
	assert.True(t, summary.Partner.Equal(decimal.NewFromInt(400)), "partner %s", summary.Partner)
}

func TestProjectIncomeForCycle_MixedSources(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{
		{Name: "mine", Amount: decimal.NewFromInt(2000), Frequency: domain.CycleSpecificDate, DayOfMonth: 15, Source: domain.SourceMe},
		{Name: "theirs", Amount: decimal.NewFromInt(1800), Frequency: domain.CycleLastWorkingDay, Source: domain.SourcePartner},
		{Name: "rental", Amount: decimal.NewFromInt(500), Frequency: domain.CycleSpecificDate, DayOfMonth: 1, Source: domain.SourceJoint},
	}

	summary := engine.ProjectIncomeForCycle(febCycle(), sources, decimal.NewFromFloat(0.5))

	assert.True(t, summary.Total.Equal(decimal.NewFromInt(4300)), "total %s", summary.Total)
	assert.True(t, summary.Me.Equal(decimal.NewFromInt(2250)), "me %s", summary.Me)
	assert.True(t, summary.Partner.Equal(decimal.NewFromInt(2050)), "partner %s", summary.Partner)
}

func TestProjectIncomeForCycle_DoubleDipCountsTwice(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{{
		Name:       "four weekly",
		Amount:     decimal.NewFromInt(1000),
		Frequency:  domain.CycleEvery4Weeks,
		AnchorDate: domain.MustDate("2024-01-15"),
		Source:     domain.SourceMe,
	}}

	window := domain.CycleRange{Start: domain.MustDate("2024-01-01"), End: domain.MustDate("2024-02-29")}
	summary := engine.ProjectIncomeForCycle(window, sources, decimal.Zero)

	assert.True(t, summary.Total.Equal(decimal.NewFromInt(2000)), "double-dip month must count both payments, got %s", summary.Total)
}

func TestProjectIncomeForCycle_NoPaymentsInWindow(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{{
		Name:       "late payer",
		Amount:     decimal.NewFromInt(1000),
		Frequency:  domain.CycleSpecificDate,
		DayOfMonth: 28,
		Source:     domain.SourceMe,
	}}

	window := domain.CycleRange{Start: domain.MustDate("2024-02-01"), End: domain.MustDate("2024-02-20")}
	summary := engine.ProjectIncomeForCycle(window, sources, decimal.Zero)

	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.Me.IsZero())
	assert.True(t, summary.Partner.IsZero())
}

func TestProjectIncomeForCycle_RoundsToTwoPlaces(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{{
		Name:       "joint",
		Amount:     decimal.NewFromFloat(1000.01),
		Frequency:  domain.CycleSpecificDate,
		DayOfMonth: 15,
		Source:     domain.SourceJoint,
	}}

	summary := engine.ProjectIncomeForCycle(febCycle(), sources, decimal.NewFromFloat(1).Div(decimal.NewFromInt(3)))

	assert.Equal(t, "333.34", summary.Me.StringFixed(2))
	assert.Equal(t, "666.67", summary.Partner.StringFixed(2))
	assert.Equal(t, "1000.01", summary.Total.StringFixed(2))
}

func TestIncomeEventsForRange_SortedByDate(t *testing.T) {
	engine := NewEngine()
	sources := []domain.IncomeSource{
		{Name: "mine", Amount: decimal.NewFromInt(2000), Frequency: domain.CycleSpecificDate, DayOfMonth: 25, Source: domain.SourceMe},
		{Name: "four weekly", Amount: decimal.NewFromInt(1500), Frequency: domain.CycleEvery4Weeks, AnchorDate: domain.MustDate("2024-01-15"), Source: domain.SourcePartner},
	}

	events := engine.IncomeEventsForRange(sources, domain.MustDate("2024-01-01"), domain.MustDate("2024-02-29"))

	require.Len(t, events, 4)
	var got []string
	for _, ev := range events {
		got = append(got, ev.Date.String()+" "+ev.SourceName)
	}
	assert.Equal(t, []string{
		"2024-01-15 four weekly",
		"2024-01-25 mine",
		"2024-02-12 four weekly",
		"2024-02-23 mine", // the 25th is a Sunday
	}, got)
}

func TestClampRatio(t *testing.T) {
	assert.True(t, clampRatio(decimal.NewFromFloat(-0.5)).IsZero())
	assert.True(t, clampRatio(decimal.NewFromFloat(1.5)).Equal(decimalOne))
	half := decimal.NewFromFloat(0.5)
	assert.True(t, clampRatio(half).Equal(half))
}
