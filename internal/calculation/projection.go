package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// maxSeriesYears caps the year-by-year series length for display purposes.
// Longer horizons are truncated in the series but not in the headline value.
const maxSeriesYears = 30

// FutureValue computes the future value of an ordinary monthly annuity:
// FV = P * ((1+r/12)^months - 1) / (r/12). With a zero rate the formula
// degenerates to principal only, FV = P * months. Intermediate math keeps
// full precision; rounding happens in ProjectCorpus.
func (e *Engine) FutureValue(payment, annualRate decimal.Decimal, years int) decimal.Decimal {
	months := decimal.NewFromInt(int64(years) * 12)
	monthlyRate := annualRate.Div(twelve)

	if monthlyRate.IsZero() {
		return payment.Mul(months)
	}

	growth := one.Add(monthlyRate).Pow(months)
	return payment.Mul(growth.Sub(one)).Div(monthlyRate)
}

// ProjectCorpus projects a monthly contribution forward over the horizon and
// applies the optional adjustments: the flat-tax model first, then inflation
// discounting of whichever value the prior step produced. All four toggle
// combinations run through the same formula bodies; nothing short-circuits.
// The result is rounded to the nearest whole currency unit.
func (e *Engine) ProjectCorpus(payment, annualRate decimal.Decimal, years int, opts domain.ProjectionOptions) decimal.Decimal {
	value := e.FutureValue(payment, annualRate, years)

	if opts.ApplyTax {
		invested := payment.Mul(decimal.NewFromInt(int64(years) * 12))
		value = value.Sub(e.taxOnGains(value, invested))
	}

	if opts.ApplyInflation {
		rate := opts.InflationRate
		if rate.IsZero() {
			rate = DefaultInflationRate
		}
		discount := one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
		value = value.Div(discount)
	}

	return value.Round(0)
}

// taxOnGains applies the flat LTCG-style tax: gains above the invested
// principal, less the exemption band, taxed at the flat rate.
func (e *Engine) taxOnGains(value, invested decimal.Decimal) decimal.Decimal {
	gains := value.Sub(invested)
	if gains.IsNegative() {
		gains = decimal.Zero
	}
	taxable := gains.Sub(LTCGExemption)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	return taxable.Mul(LTCGRate)
}

// ProjectSeries produces the year-by-year corpus series for min(years, 30)
// points. Each point is recomputed from scratch with the same formula rather
// than derived incrementally from the prior year, so rounding never
// compounds across the series.
func (e *Engine) ProjectSeries(payment, annualRate decimal.Decimal, years int, opts domain.ProjectionOptions) []domain.ProjectionPoint {
	n := years
	if n > maxSeriesYears {
		n = maxSeriesYears
	}
	if n < 0 {
		n = 0
	}

	series := make([]domain.ProjectionPoint, 0, n)
	for i := 1; i <= n; i++ {
		series = append(series, domain.ProjectionPoint{
			Year:   i,
			Label:  fmt.Sprintf("Year %d", i),
			Corpus: e.ProjectCorpus(payment, annualRate, i, opts),
		})
	}
	return series
}

// ProjectPlan runs a full projection for a plan: the weighted return is
// computed once from the allocation and reused identically for the headline
// value and every series point.
func (e *Engine) ProjectPlan(plan *domain.Plan, opts domain.ProjectionOptions) *domain.ProjectionResult {
	rate := e.WeightedAnnualReturn(plan.Allocation)
	years := plan.RetirementProjection.YearsToRetire
	payment := plan.MonthlyInvestment

	result := &domain.ProjectionResult{
		WeightedReturn:    rate,
		MonthlyInvestment: payment,
		Years:             years,
		TotalInvested:     payment.Mul(decimal.NewFromInt(int64(years) * 12)),
		Series:            e.ProjectSeries(payment, rate, years, opts),
	}
	if years > 0 {
		result.ProjectedCorpus = e.ProjectCorpus(payment, rate, years, opts)
	}
	return result
}

// MonthlyNeededFor inverts the annuity formula: the monthly contribution
// required to reach a target corpus at the given rate and horizon.
func (e *Engine) MonthlyNeededFor(target, annualRate decimal.Decimal, years int) decimal.Decimal {
	unit := e.FutureValue(one, annualRate, years)
	if unit.IsZero() {
		return decimal.Zero
	}
	return target.Div(unit).Round(0)
}
