package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
	"github.com/thesoham2203/FinWise-Teen/internal/market"
	"github.com/thesoham2203/FinWise-Teen/internal/planner"
	"github.com/thesoham2203/FinWise-Teen/internal/store"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	// Upstream failures are simulated by pointing the market client at a
	// server that always errors; the pulse then serves the fallback.
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(failing.Close)
	client := market.NewYahooClient("")
	client.BaseURL = failing.URL

	h := NewHandlers(st, planner.NewService(nil, zerolog.Nop()), market.NewService(client, zerolog.Nop()), "test", zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/health", h.handleHealth)
	r.Route("/api/v2", h.RegisterRoutes)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func testProfile() domain.UserProfile {
	return domain.UserProfile{
		UserID:          "teen-1",
		Age:             20,
		RetirementAge:   55,
		MonthlyIncome:   decimal.NewFromInt(25000),
		MonthlyExpenses: decimal.NewFromInt(12000),
		MonthlyEMIs:     decimal.NewFromInt(3000),
		CurrentSavings:  decimal.NewFromInt(72000),
		RiskAppetite:    "moderate",
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeInto(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.Equal(t, "fallback", body["planner"])
}

func TestProfileRoundtrip(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/profile", testProfile())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v2/profile/teen-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.UserProfile
	decodeInto(t, rec, &got)
	assert.Equal(t, "teen-1", got.UserID)
	assert.True(t, got.MonthlyIncome.Equal(decimal.NewFromInt(25000)))
}

func TestProfileValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/profile", domain.UserProfile{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v2/profile/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePlanAndHistory(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/plan/generate", testProfile())
	require.Equal(t, http.StatusOK, rec.Code)

	var plan domain.Plan
	decodeInto(t, rec, &plan)
	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, "teen-1", plan.UserID)
	assert.Len(t, plan.Allocation, 8)

	rec = doJSON(t, r, http.MethodGet, "/api/v2/plan/teen-1/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var latest domain.Plan
	decodeInto(t, rec, &latest)
	assert.Equal(t, plan.PlanID, latest.PlanID)

	rec = doJSON(t, r, http.MethodGet, "/api/v2/plan/teen-1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Count int `json:"count"`
	}
	decodeInto(t, rec, &history)
	assert.Equal(t, 1, history.Count)
}

func TestLatestPlanNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v2/plan/nobody/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// History is an empty list, not a 404.
	rec = doJSON(t, r, http.MethodGet, "/api/v2/plan/nobody/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Count int `json:"count"`
	}
	decodeInto(t, rec, &history)
	assert.Equal(t, 0, history.Count)
}

func TestMarketPulseServesFallback(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v2/market/pulse", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pulse market.Pulse
	decodeInto(t, rec, &pulse)
	assert.Equal(t, "Mock (fallback)", pulse.Source)
	assert.Positive(t, pulse.Nifty50.Value)
}

func TestMarketInstruments(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v2/market/instruments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Instruments []market.Instrument `json:"instruments"`
	}
	decodeInto(t, rec, &body)
	assert.Len(t, body.Instruments, 14)
}

func TestMarketHistoryFailureIsEmptyNotError(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v2/market/history/NIFTY?period=7d", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Symbol  string                `json:"symbol"`
		History []market.HistoryPoint `json:"history"`
		Count   int                   `json:"count"`
		Error   string                `json:"error"`
	}
	decodeInto(t, rec, &body)
	assert.Equal(t, "NIFTY", body.Symbol)
	assert.Empty(t, body.History)
	assert.Zero(t, body.Count)
	assert.NotEmpty(t, body.Error)
}

func TestProjectionFromScalars(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/engine/projection", map[string]any{
		"monthly_investment": 10000,
		"annual_return":      0.12,
		"years":              1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.ProjectionResult
	decodeInto(t, rec, &result)
	assert.True(t, result.ProjectedCorpus.Equal(decimal.NewFromInt(126825)), "got %s", result.ProjectedCorpus)
	assert.True(t, result.TotalInvested.Equal(decimal.NewFromInt(120000)))
	assert.Len(t, result.Series, 1)
}

func TestProjectionFromPlan(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/engine/projection", map[string]any{
		"plan": map[string]any{
			"monthly_investment": 10000,
			"allocation": []map[string]any{
				{"name": "Index", "percentage": 100, "riskLevel": "Medium", "expectedReturn": "12%"},
			},
			"retirement_projection": map[string]any{"years_to_retire": 1},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.ProjectionResult
	decodeInto(t, rec, &result)
	assert.True(t, result.WeightedReturn.Equal(decimal.NewFromFloat(0.12)), "got %s", result.WeightedReturn)
	assert.True(t, result.ProjectedCorpus.Equal(decimal.NewFromInt(126825)), "got %s", result.ProjectedCorpus)
}

func TestScoreEndpoint(t *testing.T) {
	r := newTestRouter(t)

	allocation := make([]map[string]any, 0, 5)
	for _, name := range []string{"Index", "Gold", "Gilt", "REIT", "Liquid"} {
		allocation = append(allocation, map[string]any{"name": name, "percentage": 20, "riskLevel": "Medium"})
	}

	// 5 buckets (40) + 6 months runway (24) + 19.5% savings rate (13) +
	// moderate appetite (15) = 92.
	rec := doJSON(t, r, http.MethodPost, "/api/v2/engine/score", map[string]any{
		"allocation":         allocation,
		"monthly_investment": 1950,
		"monthly_income":     10000,
		"monthly_expenses":   12000,
		"current_savings":    72000,
		"risk_appetite":      "moderate",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var score domain.FitnessScore
	decodeInto(t, rec, &score)
	assert.Equal(t, 92, score.Total)
	assert.Equal(t, domain.LabelExcellent, score.Label)
	assert.Equal(t, 40, score.Breakdown.Diversification)
}

func TestStressEndpoint(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]any{
		"allocation": []map[string]any{
			{"name": "Small Cap", "percentage": 60, "riskLevel": "High"},
			{"name": "Gold", "percentage": 40, "riskLevel": "Low"},
		},
		"drop_percent": 40,
	}
	rec := doJSON(t, r, http.MethodPost, "/api/v2/engine/stress", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.StressResult
	decodeInto(t, rec, &result)
	assert.True(t, result.TotalDrawdownPercent.Equal(decimal.NewFromFloat(27.2)), "got %s", result.TotalDrawdownPercent)
	require.Len(t, result.Buckets, 2)
	assert.True(t, result.Buckets[0].ReportedDropPercent.Equal(decimal.NewFromInt(40)))
	assert.True(t, result.Buckets[0].ContributionPercent.Equal(decimal.NewFromInt(24)))
}

func TestStressScenarioLookup(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v2/engine/stress", map[string]any{
		"scenario_id": "crash_2008",
		"allocation": []map[string]any{
			{"name": "Index", "percentage": 100, "riskLevel": "Medium"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.StressResult
	decodeInto(t, rec, &result)
	assert.Equal(t, "crash_2008", result.Scenario.ID)
	assert.True(t, result.TotalDrawdownPercent.Equal(decimal.NewFromInt(25)), "got %s", result.TotalDrawdownPercent)

	rec = doJSON(t, r, http.MethodPost, "/api/v2/engine/stress", map[string]any{"scenario_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v2/engine/stress", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStressScenariosCatalogue(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v2/engine/stress/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Scenarios []domain.StressScenario `json:"scenarios"`
	}
	decodeInto(t, rec, &body)
	require.Len(t, body.Scenarios, 4)
	assert.Equal(t, "crash_2008", body.Scenarios[0].ID)
}