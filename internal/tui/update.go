package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "right":
			m.currentView = (m.currentView + 1) % 3
			return m, nil
		case "shift+tab", "left":
			m.currentView = (m.currentView + 2) % 3
			return m, nil
		case "1":
			m.currentView = viewProjection
			return m, nil
		case "2":
			m.currentView = viewScore
			return m, nil
		case "3":
			m.currentView = viewStress
			return m, nil

		case "i":
			if m.currentView == viewProjection {
				m.opts.ApplyInflation = !m.opts.ApplyInflation
				m.projection = m.engine.ProjectPlan(m.plan, m.opts)
			}
			return m, nil
		case "t":
			if m.currentView == viewProjection {
				m.opts.ApplyTax = !m.opts.ApplyTax
				m.projection = m.engine.ProjectPlan(m.plan, m.opts)
			}
			return m, nil

		case "n":
			if m.currentView == viewStress {
				m.scenarioIdx = (m.scenarioIdx + 1) % len(m.stress)
				m.stressTable = newStressTable(m.stress[m.scenarioIdx])
			}
			return m, nil
		case "p":
			if m.currentView == viewStress {
				m.scenarioIdx = (m.scenarioIdx + len(m.stress) - 1) % len(m.stress)
				m.stressTable = newStressTable(m.stress[m.scenarioIdx])
			}
			return m, nil
		}
	}

	if m.currentView == viewStress {
		var cmd tea.Cmd
		m.stressTable, cmd = m.stressTable.Update(msg)
		return m, cmd
	}
	return m, nil
}
