package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesoham2203/FinWise-Teen/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FinWise Dashboard"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.currentView {
	case viewProjection:
		b.WriteString(m.renderProjection())
	case viewScore:
		b.WriteString(m.renderScore())
	case viewStress:
		b.WriteString(m.renderStress())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return appStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	for v := viewProjection; v <= viewStress; v++ {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.currentView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderProjection() string {
	points := make([]float64, 0, len(m.projection.Series))
	labels := make([]string, 0, len(m.projection.Series))
	for _, p := range m.projection.Series {
		points = append(points, p.Corpus.InexactFloat64())
		labels = append(labels, p.Label)
	}

	chart := NewChart("Wealth Projection").
		WithData(points, labels).
		WithSize(m.width-8, 12).
		Render()

	metrics := lipgloss.JoinVertical(lipgloss.Left,
		metricLine("Monthly Investment", output.FormatCurrency(m.projection.MonthlyInvestment)),
		metricLine("Weighted Return", output.FormatRate(m.projection.WeightedReturn)),
		metricLine("Total Invested", output.FormatCurrency(m.projection.TotalInvested)),
		metricLine("Projected Corpus", output.FormatCurrency(m.projection.ProjectedCorpus)),
		"",
		toggle("Inflation-adjusted", m.opts.ApplyInflation)+"  "+toggle("After LTCG tax", m.opts.ApplyTax),
	)

	return lipgloss.JoinVertical(lipgloss.Left, chart, "", cardStyle.Render(metrics))
}

func (m Model) renderScore() string {
	header := fmt.Sprintf("%d / 100", m.score.Total)
	label := severityStyle(m.score.Severity).Render(m.score.Label)

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Financial Fitness")+"  "+metricValueStyle.Render(header)+"  "+label,
		"",
		scoreBar("Diversification", m.score.Breakdown.Diversification, 40),
		scoreBar("Safety Net", m.score.Breakdown.SafetyNet, 25),
		scoreBar("Discipline", m.score.Breakdown.Discipline, 20),
		scoreBar("Risk Alignment", m.score.Breakdown.RiskAlignment, 15),
	)
	return cardStyle.Render(body)
}

func (m Model) renderStress() string {
	res := m.stress[m.scenarioIdx]

	header := fmt.Sprintf("%s  (market drop %s)",
		res.Scenario.Name, output.FormatPercent(res.Scenario.DropPercent))
	total := fmt.Sprintf("Portfolio drawdown: %s",
		output.FormatPercent(res.TotalDrawdownPercent))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		subtitleStyle.Render(res.Scenario.Description),
		"",
		m.stressTable.View(),
		"",
		errorStyle.Render(total),
	)
}

func (m Model) renderHelp() string {
	keys := "tab: switch  q: quit"
	switch m.currentView {
	case viewProjection:
		keys = "i: inflation  t: tax  " + keys
	case viewStress:
		keys = "n/p: scenario  " + keys
	}
	return helpStyle.Render(keys)
}

func metricLine(label, value string) string {
	return metricLabelStyle.Render(fmt.Sprintf("%-20s", label)) + metricValueStyle.Render(value)
}

func toggle(label string, on bool) string {
	if on {
		return toggleOnStyle.Render("[x] " + label)
	}
	return toggleOffStyle.Render("[ ] " + label)
}

// scoreBar renders one breakdown component as a filled bar out of its cap.
func scoreBar(label string, score, max int) string {
	const barWidth = 20
	filled := 0
	if max > 0 {
		filled = score * barWidth / max
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s %s %2d/%d",
		metricLabelStyle.Render(fmt.Sprintf("%-16s", label)), bar, score, max)
}
