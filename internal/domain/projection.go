package domain

import "github.com/shopspring/decimal"

// ProjectionOptions controls the optional adjustments applied to a corpus
// projection. Both toggles are independent and composable; the caller passes
// them explicitly on every call rather than holding ambient state.
type ProjectionOptions struct {
	ApplyInflation bool `json:"apply_inflation"`
	ApplyTax       bool `json:"apply_tax"`

	// InflationRate overrides the engine default (6%) when non-zero.
	InflationRate decimal.Decimal `json:"inflation_rate,omitempty"`
}

// ProjectionPoint is one year of the wealth-projection series.
type ProjectionPoint struct {
	Year   int             `json:"year"`
	Label  string          `json:"label"`
	Corpus decimal.Decimal `json:"corpus"`
}

// ProjectionResult is the output of a full plan projection run. The weighted
// return is computed once and reused for every point in the series.
type ProjectionResult struct {
	WeightedReturn    decimal.Decimal   `json:"weighted_return"`
	MonthlyInvestment decimal.Decimal   `json:"monthly_investment"`
	Years             int               `json:"years"`
	ProjectedCorpus   decimal.Decimal   `json:"projected_corpus"`
	TotalInvested     decimal.Decimal   `json:"total_invested"`
	Series            []ProjectionPoint `json:"series"`
}
