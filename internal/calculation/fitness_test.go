package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

func fiveBucketAllocation() []domain.AllocationItem {
	return []domain.AllocationItem{
		{Name: "NIFTY 50 Index Funds", Percentage: decimal.NewFromInt(30), RiskLevel: "Medium"},
		{Name: "Sovereign Gold Bonds", Percentage: decimal.NewFromInt(20), RiskLevel: "Low"},
		{Name: "Gilt Fund", Percentage: decimal.NewFromInt(20), RiskLevel: "Very Low"},
		{Name: "REITs", Percentage: decimal.NewFromInt(15), RiskLevel: "Medium"},
		{Name: "Emergency Fund", Percentage: decimal.NewFromInt(15), RiskLevel: "Very Low"},
	}
}

func TestFitnessScoreConcrete(t *testing.T) {
	engine := NewEngine()

	// Five distinct buckets (40, capped), six months runway (24), savings
	// rate 20% (13.3 -> 13), moderate appetite with no high-risk bucket
	// (15): total 92, Excellent.
	score := engine.FitnessScore(FitnessInput{
		Allocation:        fiveBucketAllocation(),
		RunwayMonths:      decimal.NewFromInt(6),
		RiskAppetite:      "moderate",
		MonthlyInvestment: decimal.NewFromInt(5000),
		MonthlyIncome:     decimal.NewFromInt(25000),
	})

	assert.Equal(t, 40, score.Breakdown.Diversification)
	assert.Equal(t, 24, score.Breakdown.SafetyNet)
	assert.Equal(t, 13, score.Breakdown.Discipline)
	assert.Equal(t, 15, score.Breakdown.RiskAlignment)
	assert.Equal(t, 92, score.Total)
	assert.Equal(t, domain.LabelExcellent, score.Label)
	assert.Equal(t, domain.SeverityGood, score.Severity)
}

func TestFitnessScoreConservativePenalty(t *testing.T) {
	engine := NewEngine()

	allocation := append(fiveBucketAllocation(), domain.AllocationItem{
		Name: "Small Cap Stocks", Percentage: decimal.NewFromInt(10), RiskLevel: "High",
	})

	score := engine.FitnessScore(FitnessInput{
		Allocation:        allocation,
		RunwayMonths:      decimal.NewFromInt(6),
		RiskAppetite:      "conservative",
		MonthlyInvestment: decimal.NewFromInt(5000),
		MonthlyIncome:     decimal.NewFromInt(25000),
	})

	// A conservative appetite holding any High bucket takes the hard
	// penalty, never the full 15.
	assert.Equal(t, 5, score.Breakdown.RiskAlignment)

	// Same allocation under a moderate appetite keeps the full 15.
	score = engine.FitnessScore(FitnessInput{
		Allocation:   allocation,
		RiskAppetite: "moderate",
	})
	assert.Equal(t, 15, score.Breakdown.RiskAlignment)
}

func TestFitnessScoreBounds(t *testing.T) {
	engine := NewEngine()

	inputs := []FitnessInput{
		{}, // everything empty or zero
		{
			Allocation:        fiveBucketAllocation(),
			RunwayMonths:      decimal.NewFromInt(120),
			RiskAppetite:      "aggressive",
			MonthlyInvestment: decimal.NewFromInt(90000),
			MonthlyIncome:     decimal.NewFromInt(100000),
		},
		{
			MonthlyInvestment: decimal.NewFromInt(5000),
			// Zero income is floored at 1, producing an absurd savings
			// rate that the discipline cap still bounds.
		},
	}

	for i, in := range inputs {
		score := engine.FitnessScore(in)
		assert.GreaterOrEqual(t, score.Total, 0, "case %d", i)
		assert.LessOrEqual(t, score.Total, 100, "case %d", i)
	}
}

func TestFitnessScoreEmptyAllocation(t *testing.T) {
	engine := NewEngine()

	score := engine.FitnessScore(FitnessInput{
		RunwayMonths:      decimal.NewFromInt(2),
		RiskAppetite:      "conservative",
		MonthlyInvestment: decimal.NewFromInt(1000),
		MonthlyIncome:     decimal.NewFromInt(20000),
	})

	// Diversification naturally scores zero on an empty allocation; a
	// conservative appetite with no high-risk bucket keeps full alignment.
	assert.Equal(t, 0, score.Breakdown.Diversification)
	assert.Equal(t, 8, score.Breakdown.SafetyNet)
	assert.Equal(t, 3, score.Breakdown.Discipline)
	assert.Equal(t, 15, score.Breakdown.RiskAlignment)
	assert.Equal(t, domain.LabelNeedsAction, score.Label)
}

func TestDiversificationCap(t *testing.T) {
	engine := NewEngine()

	var allocation []domain.AllocationItem
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	for _, n := range names {
		allocation = append(allocation, domain.AllocationItem{Name: n})
	}

	score := engine.FitnessScore(FitnessInput{Allocation: allocation})
	assert.Equal(t, 40, score.Breakdown.Diversification)
}

func TestSafetyNetCap(t *testing.T) {
	engine := NewEngine()

	score := engine.FitnessScore(FitnessInput{RunwayMonths: decimal.NewFromInt(12)})
	assert.Equal(t, 25, score.Breakdown.SafetyNet)

	score = engine.FitnessScore(FitnessInput{RunwayMonths: decimal.NewFromFloat(2.5)})
	assert.Equal(t, 10, score.Breakdown.SafetyNet)
}
