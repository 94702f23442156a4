package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarrow/cyclecast/internal/domain"
)

func sampleChartPoints() []float64 {
	return []float64{200, 275, 350, 425, 500}
}

func TestBalanceChartRender(t *testing.T) {
	chart := NewBalanceChart("Holiday").
		WithPoints(sampleChartPoints()).
		WithLabels([]string{"Apr", "May", "Jun", "Jul", "Aug"}).
		WithTarget(500)

	out := chart.Render()
	assert.Contains(t, out, "Holiday")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "Apr")
}

func TestBalanceChartEmpty(t *testing.T) {
	out := NewBalanceChart("Empty").Render()
	assert.Contains(t, out, "No data")
}

func TestBalanceChartFlatSeries(t *testing.T) {
	// A flat walk must not divide by a zero value range.
	out := NewBalanceChart("Flat").WithPoints([]float64{100, 100, 100}).Render()
	assert.Contains(t, out, "●")
}

func testReport() *domain.ForecastReport {
	points := []domain.ProjectionPoint{
		{
			CycleIndex: 1,
			Balance:    decimal.NewFromInt(350),
			CycleStart: domain.MustDate("2024-03-25"),
			CycleEnd:   domain.MustDate("2024-04-24"),
		},
		{
			CycleIndex: 2,
			Balance:    decimal.NewFromInt(500),
			CycleStart: domain.MustDate("2024-04-25"),
			CycleEnd:   domain.MustDate("2024-05-23"),
		},
	}
	return &domain.ForecastReport{
		Today: domain.MustDate("2024-03-26"),
		CurrentCycle: domain.CycleRange{
			Start: domain.MustDate("2024-03-25"),
			End:   domain.MustDate("2024-04-24"),
		},
		Pots: []domain.PotForecast{
			{
				Name:           "Holiday",
				CurrentAmount:  decimal.NewFromInt(200),
				TargetAmount:   decimal.NewFromInt(500),
				AmountPerCycle: decimal.NewFromInt(150),
				Projection:     points,
				CyclesToGoal:   2,
				Reachable:      true,
			},
		},
		Repayments: []domain.RepaymentForecast{
			{
				Name:           "Card",
				CurrentBalance: decimal.NewFromInt(300),
				AmountPerCycle: decimal.NewFromInt(100),
				Projection:     points,
				Cost: domain.RepaymentCost{
					TotalPaid: decimal.NewFromInt(300),
					Cycles:    3,
				},
			},
		},
	}
}

func TestBuildItems(t *testing.T) {
	items := buildItems(testReport())
	require.Len(t, items, 2)
	assert.Equal(t, "pot", items[0].kind)
	assert.Equal(t, "Holiday", items[0].name)
	assert.Equal(t, float64(500), items[0].target)
	assert.Equal(t, "repayment", items[1].kind)
	assert.Equal(t, "Card", items[1].name)
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel("plan.yaml", domain.MustDate("2024-03-26"))
	updated, _ := m.Update(forecastMsg{report: testReport()})
	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded
}

func TestModelForecastLoaded(t *testing.T) {
	m := loadedModel(t)
	assert.False(t, m.loading)
	assert.Len(t, m.items, 2)

	view := m.View()
	assert.Contains(t, view, "Holiday")
	assert.Contains(t, view, "1 of 2")
	assert.Contains(t, view, "2024-03-25..2024-04-24")
}

func TestModelSwitchesItems(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, 1, m.index)
	assert.Contains(t, m.View(), "Card")

	// Wraps around.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, 0, m.index)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, 1, m.index)
}

func TestModelQuits(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelShowsError(t *testing.T) {
	m := NewModel("plan.yaml", domain.MustDate("2024-03-26"))
	updated, _ := m.Update(errMsg{err: assert.AnError})
	m = updated.(Model)

	view := m.View()
	assert.True(t, strings.Contains(view, "Error"))
}
