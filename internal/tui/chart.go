package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chart renders a single-series ASCII line chart of the projection series.
type Chart struct {
	Title  string
	Points []float64
	Labels []string
	Width  int
	Height int
}

// NewChart creates a chart with default dimensions.
func NewChart(title string) *Chart {
	return &Chart{Title: title, Width: 64, Height: 12}
}

// WithData sets the series and its x-axis labels.
func (c *Chart) WithData(points []float64, labels []string) *Chart {
	c.Points = points
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *Chart) WithSize(width, height int) *Chart {
	if width > 20 {
		c.Width = width
	}
	if height > 4 {
		c.Height = height
	}
	return c
}

// Render returns the styled chart.
func (c *Chart) Render() string {
	if len(c.Points) == 0 {
		return subtitleStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if len(c.Labels) > 0 {
		content.WriteString(subtitleStyle.Render(
			fmt.Sprintf("%s … %s", c.Labels[0], c.Labels[len(c.Labels)-1])))
	}
	return content.String()
}

func (c *Chart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, p := range c.Points {
		minVal = math.Min(minVal, p)
		maxVal = math.Max(maxVal, p)
	}

	// Pad 10% so the extremes do not sit on the frame
	padding := (maxVal - minVal) * 0.1
	minVal -= padding
	maxVal += padding
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

func (c *Chart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth - 3

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	span := float64(len(c.Points) - 1)
	if span == 0 {
		span = 1
	}
	for i, point := range c.Points {
		x := int(float64(i) / span * float64(chartWidth-1))
		y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
		if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
			grid[y][x] = '●'
		}
	}

	yAxisStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var out strings.Builder
	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		out.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth+1))
	out.WriteString("└")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")
	return out.String()
}

// formatChartValue abbreviates rupee magnitudes for the y axis using Indian
// units (K, L for lakh, Cr for crore).
func formatChartValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%.1fCr", v/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%.1fL", v/1e5)
	case abs >= 1e3:
		return fmt.Sprintf("%.0fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
