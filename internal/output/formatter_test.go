package output

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarrow/cyclecast/internal/domain"
)

func sampleReport() *domain.ForecastReport {
	goalDate := domain.MustDate("2024-07-24")
	suggested := decimal.NewFromFloat(83.34)
	return &domain.ForecastReport{
		Today:    domain.MustDate("2024-03-26"),
		Currency: "GBP",
		CurrentCycle: domain.CycleRange{
			Start: domain.MustDate("2024-03-25"),
			End:   domain.MustDate("2024-04-24"),
		},
		NextCycle: domain.CycleRange{
			Start: domain.MustDate("2024-04-25"),
			End:   domain.MustDate("2024-05-23"),
		},
		Income: domain.IncomeSummary{
			Total:   decimal.NewFromInt(3400),
			Me:      decimal.NewFromInt(3000),
			Partner: decimal.NewFromInt(400),
		},
		IncomeEvents: []domain.IncomeEvent{
			{
				SourceName: "Salary",
				Amount:     decimal.NewFromInt(3000),
				Date:       domain.MustDate("2024-03-25"),
				Source:     domain.SourceMe,
			},
		},
		Pots: []domain.PotForecast{
			{
				Name:            "Holiday",
				CurrentAmount:   decimal.NewFromInt(200),
				TargetAmount:    decimal.NewFromInt(500),
				AmountPerCycle:  decimal.NewFromInt(75),
				CyclesToGoal:    4,
				Reachable:       true,
				GoalDate:        &goalDate,
				SuggestedAmount: &suggested,
			},
		},
		Repayments: []domain.RepaymentForecast{
			{
				Name:           "Card",
				CurrentBalance: decimal.NewFromInt(300),
				AmountPerCycle: decimal.NewFromInt(100),
				Cost: domain.RepaymentCost{
					TotalPaid: decimal.NewFromInt(300),
					Cycles:    3,
				},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("table"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"table", "csv", "json"}, FormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "PAY CYCLE FORECAST")
	assert.Contains(t, text, "2024-03-25..2024-04-24")
	assert.Contains(t, text, "Holiday")
	assert.Contains(t, text, "500.00")
	assert.Contains(t, text, "2024-07-24")
	assert.Contains(t, text, "suggested per cycle: 83.34")
	assert.Contains(t, text, "Card")
}

func TestConsoleFormatterUnreachableGoal(t *testing.T) {
	report := sampleReport()
	report.Pots[0].Reachable = false
	report.Pots[0].GoalDate = nil
	report.Pots[0].SuggestedAmount = nil

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "never")
	assert.NotContains(t, text, "suggested per cycle")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(t, "Section,Field,Value", lines[0])
	assert.Contains(t, text, "Summary,Today,2024-03-26")
	assert.Contains(t, text, "Income,Total,3400.00")
	assert.Contains(t, text, "Pots,Holiday,200.00,500.00,75.00,4,2024-07-24,83.34")
	assert.Contains(t, text, "Repayments,Card,300.00,100.00,300.00,0.00,3,-,-")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded domain.ForecastReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "2024-03-26", decoded.Today.String())
	assert.Len(t, decoded.Pots, 1)
	assert.True(t, decoded.Income.Total.Equal(decimal.NewFromInt(3400)))
}
