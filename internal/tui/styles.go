package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSuccess = lipgloss.Color("#04B575")
	colorWarning = lipgloss.Color("#FFB454")
	colorDanger  = lipgloss.Color("#FF5F87")
	colorMuted   = lipgloss.Color("#6C6C6C")
	colorBorder  = lipgloss.Color("#444444")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Underline(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// severityStyle maps a score severity class to its display style.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "good":
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	case "warning":
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	}
}
