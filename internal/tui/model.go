// Package tui is the interactive dashboard: a wealth projection chart with
// inflation and tax toggles, the fitness score card and a stress-scenario
// table.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesoham2203/FinWise-Teen/internal/calculation"
	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

type view int

const (
	viewProjection view = iota
	viewScore
	viewStress
)

func (v view) String() string {
	switch v {
	case viewProjection:
		return "Projection"
	case viewScore:
		return "Score"
	case viewStress:
		return "Stress Test"
	default:
		return "Unknown"
	}
}

// Model is the dashboard state.
type Model struct {
	profile *domain.UserProfile
	plan    *domain.Plan
	engine  *calculation.Engine

	currentView view
	width       int
	height      int

	// Projection view
	opts       domain.ProjectionOptions
	projection *domain.ProjectionResult

	// Score view
	score domain.FitnessScore

	// Stress view
	stress      []domain.StressResult
	scenarioIdx int
	stressTable table.Model
}

// NewModel builds the dashboard for a profile and its plan. All engine
// results are precomputed; toggles recompute the projection only.
func NewModel(profile *domain.UserProfile, plan *domain.Plan) Model {
	engine := calculation.NewEngine()

	m := Model{
		profile: profile,
		plan:    plan,
		engine:  engine,
		width:   80,
		height:  24,
	}

	m.projection = engine.ProjectPlan(plan, m.opts)
	m.score = engine.FitnessScore(calculation.FitnessInput{
		Allocation:        plan.Allocation,
		RunwayMonths:      profile.RunwayMonths(),
		RiskAppetite:      profile.RiskAppetite,
		MonthlyInvestment: plan.MonthlyInvestment,
		MonthlyIncome:     profile.MonthlyIncome,
	})

	for _, sc := range calculation.StressScenarios {
		m.stress = append(m.stress, engine.EvaluateStress(plan.Allocation, sc))
	}
	m.stressTable = newStressTable(m.stress[m.scenarioIdx])

	return m
}

func newStressTable(result domain.StressResult) table.Model {
	columns := []table.Column{
		{Title: "Bucket", Width: 28},
		{Title: "Share", Width: 8},
		{Title: "Risk", Width: 12},
		{Title: "Drop", Width: 8},
		{Title: "Impact", Width: 8},
	}

	rows := make([]table.Row, 0, len(result.Buckets))
	for _, b := range result.Buckets {
		rows = append(rows, table.Row{
			b.Name,
			b.Percentage.StringFixed(0) + "%",
			b.RiskLevel,
			b.ReportedDropPercent.StringFixed(1) + "%",
			b.ContributionPercent.StringFixed(1) + "%",
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorPrimary)
	styles.Selected = styles.Selected.Foreground(colorSuccess)
	t.SetStyles(styles)
	return t
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
