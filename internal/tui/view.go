package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// View renders the current screen.
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s Calculating forecast...\n", m.spinner.View())
	}
	if m.err != nil {
		return "\n  " + ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n  " +
			HelpStyle.Render("r reload · q quit") + "\n"
	}
	if len(m.items) == 0 {
		return "\n  " + SubtitleStyle.Render("Plan has no pots or repayments to browse.") + "\n\n  " +
			HelpStyle.Render("q quit") + "\n"
	}

	it := m.items[m.index]

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + TitleStyle.Render(fmt.Sprintf("%s (%s)", it.name, it.kind)))
	sb.WriteString("   " + SubtitleStyle.Render(fmt.Sprintf("%d of %d", m.index+1, len(m.items))))
	sb.WriteString("\n")
	if m.report != nil {
		sb.WriteString("  " + SubtitleStyle.Render("Cycle "+m.report.CurrentCycle.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, line := range it.summary {
		sb.WriteString("  " + MetricLabelStyle.Render(line) + "\n")
	}
	sb.WriteString("\n")

	chart := NewBalanceChart("").
		WithPoints(balances(it.points)).
		WithLabels(endDates(it.points)).
		WithSize(min(m.width-6, 70), 12)
	if it.target > 0 {
		chart = chart.WithTarget(it.target)
	}
	sb.WriteString(indent(chart.Render(), 2))
	sb.WriteString("\n")

	sb.WriteString(indent(m.table.View(), 2))
	sb.WriteString("\n\n")
	sb.WriteString("  " + HelpStyle.Render("←/→ switch item · ↑/↓ scroll · r reload · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func balances(points []domain.ProjectionPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Balance.InexactFloat64()
	}
	return out
}

func endDates(points []domain.ProjectionPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.CycleEnd.String()
	}
	return out
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run launches the browser for a plan file and blocks until the user
// quits.
func Run(planPath string, today domain.Date) error {
	p := tea.NewProgram(NewModel(planPath, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
