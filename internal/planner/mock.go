package planner

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/calculation"
	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// MockGenerator builds a deterministic plan when the remote generation
// service is unavailable. The allocation mirrors the service's own fallback
// template: a diversified eight-bucket portfolio with an emergency fund.
type MockGenerator struct {
	engine *calculation.Engine
}

// NewMockGenerator creates the fallback generator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{engine: calculation.NewEngine()}
}

var minMonthlyInvestment = decimal.NewFromInt(500)

type mockBucket struct {
	name        string
	percentage  int64
	description string
	instruments []string
	riskLevel   string
	expReturn   string
}

// Bucket percentages sum to exactly 100.
var mockBuckets = []mockBucket{
	{"NIFTY 50 Index Funds", 30,
		"Core equity exposure via low-cost index funds tracking India's top 50 companies.",
		[]string{"Zerodha Nifty 50 ETF", "HDFC Index Fund Nifty 50", "SBI Nifty Index Fund"},
		"Medium", "12-14%"},
	{"Sovereign Gold Bonds (SGB)", 15,
		"Government-backed gold bonds giving 2.5% interest plus gold price appreciation.",
		[]string{"RBI Sovereign Gold Bond", "Gold ETF (Nippon)", "Digital Gold via Zerodha"},
		"Low", "8-12%"},
	{"Mutual Funds (Flexi Cap)", 15,
		"Actively managed funds that can invest across large, mid, and small cap companies.",
		[]string{"Parag Parikh Flexi Cap", "Mirae Asset Flexi Cap", "HDFC Flexi Cap"},
		"Medium", "13-16%"},
	{"Government Bonds/Gilt", 10,
		"Safe, long-term government securities with guaranteed returns.",
		[]string{"Nippon India Gilt Fund", "HDFC Gilt Fund", "RBI Direct Bonds"},
		"Very Low", "7-8%"},
	{"Small Cap Stocks", 10,
		"Higher risk, higher reward. Small companies with large growth potential.",
		[]string{"Axis Small Cap Fund", "Kotak Small Cap Fund"},
		"High", "15-20%"},
	{"REITs (Real Estate)", 8,
		"Real estate investment trusts: own commercial real estate without buying property.",
		[]string{"Embassy REIT", "Mindspace REIT", "Brookfield REIT"},
		"Medium", "8-11%"},
	{"P2P Lending", 7,
		"Lend directly to vetted borrowers on regulated platforms.",
		[]string{"LenDenClub", "Faircent", "RupeeCircle"},
		"Medium-High", "10-14%"},
	{"Emergency Fund (Liquid)", 5,
		"Keep 3-6 months of expenses liquid at all times.",
		[]string{"Liquid Bees", "High-interest savings"},
		"Very Low", "4-6%"},
}

// GeneratePlan builds the fallback plan. The monthly investment is 70% of
// the disposable surplus floored at 500; the retirement projection reuses
// the calculation engine so the mock and the dashboards agree on the math.
func (m *MockGenerator) GeneratePlan(_ context.Context, profile *domain.UserProfile) (*domain.Plan, error) {
	monthly := profile.DisposableIncome().Mul(decimal.NewFromFloat(0.7)).Round(0)
	if monthly.LessThan(minMonthlyInvestment) {
		monthly = minMonthlyInvestment
	}

	allocation := make([]domain.AllocationItem, 0, len(mockBuckets))
	for _, b := range mockBuckets {
		pct := decimal.NewFromInt(b.percentage)
		allocation = append(allocation, domain.AllocationItem{
			Name:           b.name,
			Percentage:     pct,
			MonthlyAmount:  monthly.Mul(pct).Div(decimal.NewFromInt(100)).Round(0),
			Description:    b.description,
			Instruments:    b.instruments,
			RiskLevel:      b.riskLevel,
			ExpectedReturn: b.expReturn,
		})
	}

	years := profile.YearsToRetire()
	rate := m.engine.WeightedAnnualReturn(allocation)
	corpus := m.engine.ProjectCorpus(monthly, rate, years, domain.ProjectionOptions{})

	target := profile.TargetCorpus
	if !target.IsPositive() {
		target = corpus
	}

	plan := &domain.Plan{
		MonthlyInvestment: monthly,
		Reasoning: fmt.Sprintf(
			"Based on your %s/month surplus and %s risk appetite, this plan spreads %s/month across %d asset classes. With %d years to retirement there is ample time to compound.",
			profile.DisposableIncome().Round(0), profile.NormalizedAppetite(), monthly, len(allocation), years,
		),
		Allocation: allocation,
		RetirementProjection: domain.RetirementProjection{
			YearsToRetire:   years,
			ProjectedCorpus: corpus,
			MonthlyNeeded:   m.engine.MonthlyNeededFor(target, rate, years),
		},
	}
	return plan, nil
}
