package domain

import "github.com/shopspring/decimal"

// StressScenario is a named market-crash scenario with a headline drop.
type StressScenario struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	DropPercent decimal.Decimal `json:"drop_percent" yaml:"drop_percent"`
}

// BucketImpact is the per-bucket row of a stress-test breakdown.
//
// ReportedDropPercent is the headline drop scaled by the bucket's risk
// multiplier only; ContributionPercent additionally weights it by the
// bucket's share of the portfolio. Dashboards show both, so both are
// exposed even though they are different quantities.
type BucketImpact struct {
	Name                string          `json:"name"`
	Percentage          decimal.Decimal `json:"percentage"`
	RiskLevel           string          `json:"risk_level"`
	Multiplier          decimal.Decimal `json:"multiplier"`
	ReportedDropPercent decimal.Decimal `json:"reported_drop_percent"`
	ContributionPercent decimal.Decimal `json:"contribution_percent"`
}

// StressResult is the outcome of evaluating one scenario against an
// allocation.
type StressResult struct {
	Scenario             StressScenario  `json:"scenario"`
	TotalDrawdownPercent decimal.Decimal `json:"total_drawdown_percent"`
	Buckets              []BucketImpact  `json:"buckets"`
}
