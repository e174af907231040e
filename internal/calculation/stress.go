package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// Shock multipliers per risk tier. Unrecognized or missing tiers get the
// Medium multiplier rather than failing.
var riskMultipliers = map[domain.RiskLevel]decimal.Decimal{
	domain.RiskVeryLow:    decimal.NewFromFloat(0.05),
	domain.RiskLow:        decimal.NewFromFloat(0.2),
	domain.RiskMedium:     decimal.NewFromFloat(0.5),
	domain.RiskMediumHigh: decimal.NewFromFloat(0.8),
	domain.RiskHigh:       decimal.NewFromFloat(1.0),
	domain.RiskVeryHigh:   decimal.NewFromFloat(1.4),
}

var defaultRiskMultiplier = decimal.NewFromFloat(0.5)

// RiskMultiplier returns the shock multiplier for a risk tier string.
func RiskMultiplier(level string) decimal.Decimal {
	if m, ok := riskMultipliers[domain.RiskLevel(strings.TrimSpace(level))]; ok {
		return m
	}
	return defaultRiskMultiplier
}

// StressScenarios is the built-in market-crash catalogue. Drop percentages
// are headline figures for the scenario cards, not calibrated forecasts.
var StressScenarios = []domain.StressScenario{
	{
		ID:          "crash_2008",
		Name:        "2008-Style Financial Crisis",
		Description: "A global credit crunch drags equity markets down roughly half from their peak.",
		DropPercent: decimal.NewFromInt(50),
	},
	{
		ID:          "covid_2020",
		Name:        "Pandemic Flash Crash",
		Description: "A sudden shock on the scale of March 2020, fast and indiscriminate.",
		DropPercent: decimal.NewFromInt(38),
	},
	{
		ID:          "rate_shock",
		Name:        "Rate Hike Shock",
		Description: "Central banks tighten hard; rate-sensitive assets reprice sharply.",
		DropPercent: decimal.NewFromInt(25),
	},
	{
		ID:          "tech_winter",
		Name:        "Tech Winter",
		Description: "A prolonged drawdown concentrated in growth and small-cap names.",
		DropPercent: decimal.NewFromInt(30),
	},
}

// FindStressScenario looks up a built-in scenario by ID.
func FindStressScenario(id string) (domain.StressScenario, bool) {
	for _, sc := range StressScenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return domain.StressScenario{}, false
}

// EvaluateStress computes the portfolio drawdown for one scenario.
//
// Each bucket contributes (percentage/100) * (drop/100) * multiplier to the
// total, which is reported as a percentage at one decimal place. The
// per-bucket reported drop (drop * multiplier) omits the bucket's portfolio
// weight; it is the figure the breakdown table shows next to each bucket and
// is deliberately a different quantity from the contribution.
func (e *Engine) EvaluateStress(items []domain.AllocationItem, scenario domain.StressScenario) domain.StressResult {
	dropFraction := scenario.DropPercent.Div(hundred)

	total := decimal.Zero
	buckets := make([]domain.BucketImpact, 0, len(items))
	for _, item := range items {
		mult := RiskMultiplier(item.RiskLevel)
		contribution := item.Percentage.Div(hundred).Mul(dropFraction).Mul(mult)
		total = total.Add(contribution)

		buckets = append(buckets, domain.BucketImpact{
			Name:                item.Name,
			Percentage:          item.Percentage,
			RiskLevel:           item.RiskLevel,
			Multiplier:          mult,
			ReportedDropPercent: scenario.DropPercent.Mul(mult).Round(1),
			ContributionPercent: contribution.Mul(hundred).Round(1),
		})
	}

	return domain.StressResult{
		Scenario:             scenario,
		TotalDrawdownPercent: total.Mul(hundred).Round(1),
		Buckets:              buckets,
	}
}
