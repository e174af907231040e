package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpectedReturnFraction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain percent", "12%", "0.12"},
		{"range takes leading number", "12-15%", "0.12"},
		{"decimal percent", "7.1%", "0.071"},
		{"no percent sign", "8", "0.08"},
		{"with whitespace", " 10% ", "0.1"},
		{"empty defaults to 12", "", "0.12"},
		{"garbage defaults to 12", "Highly variable", "0.12"},
		{"zero is honoured", "0%", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := AllocationItem{ExpectedReturn: tt.input}
			assert.True(t, item.ExpectedReturnFraction().Equal(decimal.RequireFromString(tt.expected)),
				"got %s", item.ExpectedReturnFraction())
		})
	}
}

func TestIsHighRisk(t *testing.T) {
	assert.True(t, AllocationItem{RiskLevel: "High"}.IsHighRisk())
	assert.True(t, AllocationItem{RiskLevel: "Very High"}.IsHighRisk())
	assert.False(t, AllocationItem{RiskLevel: "Medium-High"}.IsHighRisk())
	assert.False(t, AllocationItem{RiskLevel: "Low"}.IsHighRisk())
	assert.False(t, AllocationItem{RiskLevel: ""}.IsHighRisk())
}

func TestDistinctBuckets(t *testing.T) {
	plan := Plan{Allocation: []AllocationItem{
		{Name: "NIFTY 50 Index Funds"},
		{Name: "nifty 50 index funds"}, // duplicate, different case
		{Name: "Sovereign Gold Bonds (SGB)"},
		{Name: "Emergency Fund (Liquid)"},
	}}
	assert.Equal(t, 3, plan.DistinctBuckets())
}

func TestFindBucket(t *testing.T) {
	plan := Plan{Allocation: []AllocationItem{
		{Name: "NIFTY 50 Index Funds"},
		{Name: "Emergency Fund (Liquid)"},
	}}

	got, ok := plan.FindBucket("emergency")
	assert.True(t, ok)
	assert.Equal(t, "Emergency Fund (Liquid)", got.Name)

	_, ok = plan.FindBucket("crypto")
	assert.False(t, ok)
}

func TestProfileDisposableIncome(t *testing.T) {
	p := UserProfile{
		MonthlyIncome:   decimal.NewFromInt(25000),
		MonthlyExpenses: decimal.NewFromInt(15000),
		MonthlyEMIs:     decimal.NewFromInt(3000),
	}
	assert.True(t, p.DisposableIncome().Equal(decimal.NewFromInt(7000)))

	// Over-spending never yields a negative surplus.
	p.MonthlyExpenses = decimal.NewFromInt(30000)
	assert.True(t, p.DisposableIncome().IsZero())
}

func TestProfileYearsToRetire(t *testing.T) {
	p := UserProfile{Age: 20, RetirementAge: 55}
	assert.Equal(t, 35, p.YearsToRetire())

	// Defaults mirror the generation service.
	assert.Equal(t, 35, (&UserProfile{}).YearsToRetire())

	// Floor at one year.
	p = UserProfile{Age: 60, RetirementAge: 55}
	assert.Equal(t, 1, p.YearsToRetire())
}

func TestProfileRunwayMonths(t *testing.T) {
	p := UserProfile{
		CurrentSavings:  decimal.NewFromInt(90000),
		MonthlyExpenses: decimal.NewFromInt(15000),
	}
	assert.True(t, p.RunwayMonths().Equal(decimal.NewFromInt(6)))

	// Zero expenses must not divide by zero.
	p.MonthlyExpenses = decimal.Zero
	assert.True(t, p.RunwayMonths().Equal(decimal.NewFromInt(90000)))
}

func TestNormalizedAppetite(t *testing.T) {
	assert.Equal(t, AppetiteConservative, (&UserProfile{RiskAppetite: "Conservative"}).NormalizedAppetite())
	assert.Equal(t, AppetiteAggressive, (&UserProfile{RiskAppetite: "aggressive"}).NormalizedAppetite())
	assert.Equal(t, AppetiteModerate, (&UserProfile{RiskAppetite: "yolo"}).NormalizedAppetite())
	assert.Equal(t, AppetiteModerate, (&UserProfile{}).NormalizedAppetite())
}

func TestScoreLabelTiers(t *testing.T) {
	assert.Equal(t, LabelExcellent, ScoreLabel(92))
	assert.Equal(t, LabelExcellent, ScoreLabel(81))
	assert.Equal(t, LabelHealthy, ScoreLabel(80))
	assert.Equal(t, LabelHealthy, ScoreLabel(61))
	// The boundary at 60 maps to the lower tier.
	assert.Equal(t, LabelNeedsAction, ScoreLabel(60))
	assert.Equal(t, LabelNeedsAction, ScoreLabel(0))
}

func TestScoreSeverityMatchesLabelTiers(t *testing.T) {
	assert.Equal(t, SeverityGood, ScoreSeverity(85))
	assert.Equal(t, SeverityWarning, ScoreSeverity(70))
	assert.Equal(t, SeverityDanger, ScoreSeverity(60))
}
