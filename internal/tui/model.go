package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/config"
	"github.com/mfarrow/cyclecast/internal/domain"
)

// item is one browsable pot or repayment with its projected walk.
type item struct {
	kind    string // "pot" or "repayment"
	name    string
	points  []domain.ProjectionPoint
	target  float64
	summary []string
}

// forecastMsg carries a completed forecast into the model.
type forecastMsg struct {
	report *domain.ForecastReport
}

// errMsg carries a load or parse failure.
type errMsg struct {
	err error
}

// Model is the forecast browser: one pot or repayment on screen at a
// time, switched with the arrow keys.
type Model struct {
	planPath string
	today    domain.Date
	engine   *calculation.Engine

	spinner spinner.Model
	table   table.Model

	report  *domain.ForecastReport
	items   []item
	index   int
	loading bool
	err     error

	width  int
	height int
}

// NewModel creates the browser model for a plan file. A zero today means
// the system clock.
func NewModel(planPath string, today domain.Date) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TitleStyle

	if today.IsZero() {
		today = domain.Today()
	}

	return Model{
		planPath: planPath,
		today:    today,
		engine:   calculation.NewEngine(),
		spinner:  sp,
		loading:  true,
		width:    80,
		height:   24,
	}
}

// Init kicks off the spinner and the forecast load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadForecastCmd(m.planPath, m.today, m.engine))
}

// loadForecastCmd parses the plan and runs the forecast off the UI loop.
func loadForecastCmd(path string, today domain.Date, engine *calculation.Engine) tea.Cmd {
	return func() tea.Msg {
		plan, err := config.NewParser().LoadFromFile(path)
		if err != nil {
			return errMsg{err: err}
		}
		return forecastMsg{report: engine.RunForecast(plan, today)}
	}
}

func buildItems(report *domain.ForecastReport) []item {
	items := make([]item, 0, len(report.Pots)+len(report.Repayments))
	for _, pot := range report.Pots {
		it := item{
			kind:   "pot",
			name:   pot.Name,
			points: pot.Projection,
			target: pot.TargetAmount.InexactFloat64(),
			summary: []string{
				fmt.Sprintf("Current %s", pot.CurrentAmount.StringFixed(2)),
				fmt.Sprintf("Target %s", pot.TargetAmount.StringFixed(2)),
				fmt.Sprintf("Per cycle %s", pot.AmountPerCycle.StringFixed(2)),
			},
		}
		if pot.Reachable {
			it.summary = append(it.summary, fmt.Sprintf("Cycles to goal %d", pot.CyclesToGoal))
		} else {
			it.summary = append(it.summary, "Goal not reachable at this rate")
		}
		if pot.GoalDate != nil {
			it.summary = append(it.summary, fmt.Sprintf("Goal date %s", pot.GoalDate))
		}
		items = append(items, it)
	}
	for _, rp := range report.Repayments {
		it := item{
			kind:   "repayment",
			name:   rp.Name,
			points: rp.Projection,
			summary: []string{
				fmt.Sprintf("Balance %s", rp.CurrentBalance.StringFixed(2)),
				fmt.Sprintf("Per cycle %s", rp.AmountPerCycle.StringFixed(2)),
				fmt.Sprintf("Total to pay %s over %d cycle(s)", rp.Cost.TotalPaid.StringFixed(2), rp.Cost.Cycles),
			},
		}
		if rp.ClearedDate != nil {
			it.summary = append(it.summary, fmt.Sprintf("Cleared %s", rp.ClearedDate))
		}
		items = append(items, it)
	}
	return items
}

func projectionTable(points []domain.ProjectionPoint, height int) table.Model {
	columns := []table.Column{
		{Title: "Cycle", Width: 6},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Balance", Width: 12},
	}
	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", p.CycleIndex),
			p.CycleStart.String(),
			p.CycleEnd.String(),
			p.Balance.StringFixed(2),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Selected = TableCellStyle
	t.SetStyles(styles)
	return t
}
