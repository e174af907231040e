// Package calculation implements the portfolio projection and scoring
// engine: weighted-return blending, corpus projection with optional tax and
// inflation adjustments, the financial fitness score and stress-scenario
// evaluation. Every operation is a pure function of its inputs; the package
// performs no I/O and keeps no state between calls.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// Model constants. The tax treatment models a long-term-capital-gains style
// flat tax with an exemption band; rate and threshold are fixed constants of
// the model, not configurable per call.
var (
	// DefaultInflationRate discounts projections to present value (6%).
	DefaultInflationRate = decimal.NewFromFloat(0.06)

	// LTCGExemption is the gains exemption threshold in base currency units.
	LTCGExemption = decimal.NewFromInt(125000)

	// LTCGRate is the flat tax rate applied to gains above the exemption.
	LTCGRate = decimal.NewFromFloat(0.125)
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Engine bundles the four engine operations. It carries no mutable state;
// the struct exists so callers hold a single collaborator, matching how the
// rest of the codebase wires services.
type Engine struct{}

// NewEngine creates a new projection and scoring engine.
func NewEngine() *Engine {
	return &Engine{}
}

// WeightedAnnualReturn derives a blended fractional annual return from an
// allocation. Each bucket's parsed return is weighted by percentage/100 and
// summed. An empty allocation returns the 12% default. No clamping or
// normalization is applied: an allocation whose percentages do not sum to
// 100 yields a return scaled by whatever sum is present.
func (e *Engine) WeightedAnnualReturn(items []domain.AllocationItem) decimal.Decimal {
	if len(items) == 0 {
		return domain.DefaultExpectedReturn
	}

	total := decimal.Zero
	for _, item := range items {
		weight := item.Percentage.Div(hundred)
		total = total.Add(weight.Mul(item.ExpectedReturnFraction()))
	}
	return total
}
