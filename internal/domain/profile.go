package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskAppetite categories accepted from the onboarding flow.
const (
	AppetiteConservative = "conservative"
	AppetiteModerate     = "moderate"
	AppetiteAggressive   = "aggressive"
)

// UserProfile is the financial profile collected during onboarding. The JSON
// tags match the profile document exchanged with the frontend and the
// generation service.
type UserProfile struct {
	UserID            string          `json:"user_id" yaml:"user_id"`
	FullName          string          `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Age               int             `json:"age,omitempty" yaml:"age,omitempty"`
	City              string          `json:"city,omitempty" yaml:"city,omitempty"`
	Occupation        string          `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses   decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
	MonthlyEMIs       decimal.Decimal `json:"monthly_emis" yaml:"monthly_emis"`
	CurrentSavings    decimal.Decimal `json:"current_savings" yaml:"current_savings"`
	DreamJob          string          `json:"dream_job,omitempty" yaml:"dream_job,omitempty"`
	TargetIncome5Yr   decimal.Decimal `json:"target_income_5yr" yaml:"target_income_5yr"`
	RiskAppetite      string          `json:"risk_appetite" yaml:"risk_appetite"`
	InvestmentHorizon int             `json:"investment_horizon_years,omitempty" yaml:"investment_horizon_years,omitempty"`
	RetirementAge     int             `json:"retirement_age,omitempty" yaml:"retirement_age,omitempty"`
	TargetCorpus      decimal.Decimal `json:"target_corpus" yaml:"target_corpus"`
	AdvisorType       string          `json:"ai_advisor_type,omitempty" yaml:"ai_advisor_type,omitempty"`
	PreferredCurrency string          `json:"preferred_currency,omitempty" yaml:"preferred_currency,omitempty"`
}

// DisposableIncome is the monthly investable surplus, floored at zero.
func (p *UserProfile) DisposableIncome() decimal.Decimal {
	d := p.MonthlyIncome.Sub(p.MonthlyExpenses).Sub(p.MonthlyEMIs)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// YearsToRetire is the planning horizon in whole years, never less than one.
// Missing ages default the same way the generation service does (retire at
// 55, current age 20).
func (p *UserProfile) YearsToRetire() int {
	retireAt := p.RetirementAge
	if retireAt == 0 {
		retireAt = 55
	}
	age := p.Age
	if age == 0 {
		age = 20
	}
	years := retireAt - age
	if years < 1 {
		years = 1
	}
	return years
}

// RunwayMonths is how many months of expenses the current savings cover.
// Expenses are floored at one currency unit to avoid a zero division.
func (p *UserProfile) RunwayMonths() decimal.Decimal {
	expenses := p.MonthlyExpenses
	if expenses.LessThan(decimal.NewFromInt(1)) {
		expenses = decimal.NewFromInt(1)
	}
	return p.CurrentSavings.Div(expenses)
}

// NormalizedAppetite lowercases the risk appetite and maps anything
// unrecognized to moderate.
func (p *UserProfile) NormalizedAppetite() string {
	switch strings.ToLower(strings.TrimSpace(p.RiskAppetite)) {
	case AppetiteConservative:
		return AppetiteConservative
	case AppetiteAggressive:
		return AppetiteAggressive
	default:
		return AppetiteModerate
	}
}
