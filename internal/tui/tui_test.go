package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

func testModel() Model {
	profile := &domain.UserProfile{
		UserID:          "teen-1",
		MonthlyIncome:   decimal.NewFromInt(25000),
		MonthlyExpenses: decimal.NewFromInt(12000),
		CurrentSavings:  decimal.NewFromInt(72000),
		RiskAppetite:    "moderate",
	}
	plan := &domain.Plan{
		MonthlyInvestment: decimal.NewFromInt(7000),
		Allocation: []domain.AllocationItem{
			{Name: "Index Funds", Percentage: decimal.NewFromInt(60), RiskLevel: "Medium", ExpectedReturn: "12%"},
			{Name: "Gold", Percentage: decimal.NewFromInt(40), RiskLevel: "Low", ExpectedReturn: "8%"},
		},
		RetirementProjection: domain.RetirementProjection{YearsToRetire: 10},
	}
	return NewModel(profile, plan)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelPrecomputesResults(t *testing.T) {
	m := testModel()

	require.NotNil(t, m.projection)
	assert.True(t, m.projection.ProjectedCorpus.IsPositive())
	assert.Len(t, m.projection.Series, 10)
	assert.Positive(t, m.score.Total)
	assert.Len(t, m.stress, 4)
}

func TestInflationToggleRecomputes(t *testing.T) {
	m := testModel()
	nominal := m.projection.ProjectedCorpus

	updated, _ := m.Update(key("i"))
	m = updated.(Model)

	assert.True(t, m.opts.ApplyInflation)
	assert.True(t, m.projection.ProjectedCorpus.LessThan(nominal))

	updated, _ = m.Update(key("i"))
	m = updated.(Model)
	assert.False(t, m.opts.ApplyInflation)
	assert.True(t, m.projection.ProjectedCorpus.Equal(nominal))
}

func TestTabCyclesViews(t *testing.T) {
	m := testModel()
	assert.Equal(t, viewProjection, m.currentView)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, viewScore, m.currentView)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, viewStress, m.currentView)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, viewProjection, m.currentView)
}

func TestStressScenarioCycling(t *testing.T) {
	m := testModel()
	m.currentView = viewStress

	updated, _ := m.Update(key("n"))
	m = updated.(Model)
	assert.Equal(t, 1, m.scenarioIdx)

	updated, _ = m.Update(key("p"))
	m = updated.(Model)
	assert.Equal(t, 0, m.scenarioIdx)
}

func TestViewRendersEachScreen(t *testing.T) {
	m := testModel()

	out := m.View()
	assert.Contains(t, out, "Wealth Projection")

	m.currentView = viewScore
	out = m.View()
	assert.Contains(t, out, "Financial Fitness")

	m.currentView = viewStress
	out = m.View()
	assert.Contains(t, out, "2008-Style Financial Crisis")
}

func TestQuitKey(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChartRender(t *testing.T) {
	chart := NewChart("Growth").WithData([]float64{100000, 250000, 1250000}, []string{"Year 1", "Year 2", "Year 3"})
	out := chart.Render()
	assert.Contains(t, out, "Growth")
	assert.True(t, strings.Contains(out, "●"))
	assert.Contains(t, out, "Year 1")
}

func TestFormatChartValue(t *testing.T) {
	assert.Equal(t, "500", formatChartValue(500))
	assert.Equal(t, "45K", formatChartValue(45000))
	assert.Equal(t, "2.5L", formatChartValue(250000))
	assert.Equal(t, "4.5Cr", formatChartValue(45000000))
}
