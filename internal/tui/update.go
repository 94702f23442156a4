package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const tableHeight = 8

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case forecastMsg:
		m.loading = false
		m.err = nil
		m.report = msg.report
		m.items = buildItems(msg.report)
		m.index = 0
		m.refreshTable()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if len(m.items) > 0 {
			m.index = (m.index - 1 + len(m.items)) % len(m.items)
			m.refreshTable()
		}
		return m, nil

	case "right", "l":
		if len(m.items) > 0 {
			m.index = (m.index + 1) % len(m.items)
			m.refreshTable()
		}
		return m, nil

	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, loadForecastCmd(m.planPath, m.today, m.engine))

	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshTable() {
	if m.index < len(m.items) {
		m.table = projectionTable(m.items[m.index].points, tableHeight)
	}
}
