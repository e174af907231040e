package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// Component caps and tuning constants for the fitness score. Product-tuned
// values, kept as named constants rather than derived.
var (
	diversificationCap   = 40
	pointsPerBucket      = 8
	safetyNetCap         = 25
	pointsPerRunwayMonth = decimal.NewFromInt(4)
	disciplineCap        = 20
	savingsRateDivisor   = decimal.NewFromFloat(1.5)
	riskAlignmentFull    = 15
	riskAlignmentPenalty = 5
)

// FitnessInput carries the profile scalars the scorer consumes alongside the
// allocation. The scorer does not own these values; the caller supplies them.
type FitnessInput struct {
	Allocation        []domain.AllocationItem
	RunwayMonths      decimal.Decimal
	RiskAppetite      string
	MonthlyInvestment decimal.Decimal
	MonthlyIncome     decimal.Decimal
}

// FitnessScore produces the composite financial fitness score in [0,100]
// with its labeled breakdown. The per-component caps already bound the total
// so no final clamp is applied.
func (e *Engine) FitnessScore(in FitnessInput) domain.FitnessScore {
	breakdown := domain.ScoreBreakdown{
		Diversification: e.diversificationScore(in.Allocation),
		SafetyNet:       e.safetyNetScore(in.RunwayMonths),
		Discipline:      e.disciplineScore(in.MonthlyInvestment, in.MonthlyIncome),
		RiskAlignment:   e.riskAlignmentScore(in.RiskAppetite, in.Allocation),
	}

	total := breakdown.Diversification + breakdown.SafetyNet + breakdown.Discipline + breakdown.RiskAlignment

	return domain.FitnessScore{
		Total:     total,
		Label:     domain.ScoreLabel(total),
		Severity:  domain.ScoreSeverity(total),
		Breakdown: breakdown,
	}
}

// diversificationScore awards 8 points per distinct bucket, capped at 40.
func (e *Engine) diversificationScore(items []domain.AllocationItem) int {
	plan := domain.Plan{Allocation: items}
	score := plan.DistinctBuckets() * pointsPerBucket
	if score > diversificationCap {
		return diversificationCap
	}
	return score
}

// safetyNetScore awards 4 points per month of expense runway, capped at 25.
func (e *Engine) safetyNetScore(runwayMonths decimal.Decimal) int {
	score := runwayMonths.Mul(pointsPerRunwayMonth)
	if score.GreaterThan(decimal.NewFromInt(int64(safetyNetCap))) {
		return safetyNetCap
	}
	return int(score.Round(0).IntPart())
}

// disciplineScore converts the savings rate (investment over income, income
// floored at 1) to a score out of 20, rounded to the nearest integer.
func (e *Engine) disciplineScore(investment, income decimal.Decimal) int {
	if income.LessThan(one) {
		income = one
	}
	savingsRate := investment.Div(income).Mul(hundred)
	score := savingsRate.Div(savingsRateDivisor)
	if score.GreaterThan(decimal.NewFromInt(int64(disciplineCap))) {
		return disciplineCap
	}
	return int(score.Round(0).IntPart())
}

// riskAlignmentScore is 15 unless a conservative appetite holds any High or
// Very High bucket, in which case it drops to a hard 5. The penalty is not
// graduated.
func (e *Engine) riskAlignmentScore(appetite string, items []domain.AllocationItem) int {
	p := domain.UserProfile{RiskAppetite: appetite}
	if p.NormalizedAppetite() != domain.AppetiteConservative {
		return riskAlignmentFull
	}
	for _, item := range items {
		if item.IsHighRisk() {
			return riskAlignmentPenalty
		}
	}
	return riskAlignmentFull
}
