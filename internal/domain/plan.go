// Package domain holds the data model shared by the planning engine,
// the HTTP API and the CLI surfaces.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel is the categorical volatility class of an allocation bucket.
type RiskLevel string

const (
	RiskVeryLow    RiskLevel = "Very Low"
	RiskLow        RiskLevel = "Low"
	RiskMedium     RiskLevel = "Medium"
	RiskMediumHigh RiskLevel = "Medium-High"
	RiskHigh       RiskLevel = "High"
	RiskVeryHigh   RiskLevel = "Very High"
)

// DefaultExpectedReturn is the annual return substituted when a bucket's
// expected-return string is absent or unparsable (12%).
var DefaultExpectedReturn = decimal.NewFromFloat(0.12)

// AllocationItem is one asset-class bucket within a plan. Field names and
// JSON tags match the plan document emitted by the generation service.
type AllocationItem struct {
	Name           string          `json:"name" yaml:"name"`
	Percentage     decimal.Decimal `json:"percentage" yaml:"percentage"`
	MonthlyAmount  decimal.Decimal `json:"monthlyAmount" yaml:"monthly_amount"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	Instruments    []string        `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	RiskLevel      string          `json:"riskLevel" yaml:"risk_level"`
	ExpectedReturn string          `json:"expectedReturn" yaml:"expected_return"`
}

// ExpectedReturnFraction parses the bucket's expected-return string into an
// annual fractional rate. The generation service emits values like "12%" or
// "12-15%"; the leading numeric token is used. Absent or unparsable values
// fall back to DefaultExpectedReturn rather than erroring, since this sits
// directly in a render path.
func (a AllocationItem) ExpectedReturnFraction() decimal.Decimal {
	s := strings.TrimSpace(a.ExpectedReturn)
	if s == "" {
		return DefaultExpectedReturn
	}

	// Take characters up to the first non-numeric separator ("-", "%", space).
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return DefaultExpectedReturn
	}

	pct, err := decimal.NewFromString(s[:end])
	if err != nil {
		return DefaultExpectedReturn
	}
	return pct.Div(decimal.NewFromInt(100))
}

// IsHighRisk reports whether the bucket carries a High or Very High tier.
// Used by the fitness scorer's risk-alignment penalty.
func (a AllocationItem) IsHighRisk() bool {
	switch RiskLevel(strings.TrimSpace(a.RiskLevel)) {
	case RiskHigh, RiskVeryHigh:
		return true
	}
	return false
}

// RetirementProjection carries the generation service's own corpus estimate.
type RetirementProjection struct {
	YearsToRetire   int             `json:"years_to_retire" yaml:"years_to_retire"`
	ProjectedCorpus decimal.Decimal `json:"projected_corpus" yaml:"projected_corpus"`
	MonthlyNeeded   decimal.Decimal `json:"monthly_needed" yaml:"monthly_needed"`
}

// Plan is a generated investment allocation plan. MonthlyInvestment is the
// total contribution per period; it is not required to equal the sum of the
// per-bucket monthly amounts and no normalization is performed.
type Plan struct {
	PlanID               string               `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	UserID               string               `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	GeneratedAt          time.Time            `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	MonthlyInvestment    decimal.Decimal      `json:"monthly_investment" yaml:"monthly_investment"`
	Reasoning            string               `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
	Allocation           []AllocationItem     `json:"allocation" yaml:"allocation"`
	RetirementProjection RetirementProjection `json:"retirement_projection" yaml:"retirement_projection"`
}

// DistinctBuckets counts allocation buckets with distinct names
// (case-insensitive). Feeds the diversification score component.
func (p *Plan) DistinctBuckets() int {
	seen := make(map[string]struct{}, len(p.Allocation))
	for _, a := range p.Allocation {
		seen[strings.ToLower(strings.TrimSpace(a.Name))] = struct{}{}
	}
	return len(seen)
}

// FindBucket returns the first bucket whose name contains the given
// substring (case-insensitive), e.g. "emergency".
func (p *Plan) FindBucket(substr string) (AllocationItem, bool) {
	needle := strings.ToLower(substr)
	for _, a := range p.Allocation {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return a, true
		}
	}
	return AllocationItem{}, false
}
