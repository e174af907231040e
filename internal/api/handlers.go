package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/thesoham2203/FinWise-Teen/internal/calculation"
	"github.com/thesoham2203/FinWise-Teen/internal/domain"
	"github.com/thesoham2203/FinWise-Teen/internal/market"
	"github.com/thesoham2203/FinWise-Teen/internal/planner"
	"github.com/thesoham2203/FinWise-Teen/internal/store"
)

// Handlers holds the services the API endpoints call into.
type Handlers struct {
	store   *store.Store
	planner *planner.Service
	market  *market.Service
	engine  *calculation.Engine
	version string
	log     zerolog.Logger
}

// NewHandlers wires the API handlers.
func NewHandlers(st *store.Store, pl *planner.Service, mk *market.Service, version string, log zerolog.Logger) *Handlers {
	return &Handlers{
		store:   st,
		planner: pl,
		market:  mk,
		engine:  calculation.NewEngine(),
		version: version,
		log:     log.With().Str("component", "api").Logger(),
	}
}

// RegisterRoutes mounts all endpoints under the API base path.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/profile", h.handleSaveProfile)
	r.Get("/profile/{userID}", h.handleGetProfile)

	r.Post("/plan/generate", h.handleGeneratePlan)
	r.Get("/plan/{userID}/latest", h.handleLatestPlan)
	r.Get("/plan/{userID}/history", h.handlePlanHistory)

	r.Get("/market/pulse", h.handleMarketPulse)
	r.Get("/market/instruments", h.handleInstruments)
	r.Get("/market/history/{symbol}", h.handleMarketHistory)

	r.Post("/engine/projection", h.handleProjection)
	r.Post("/engine/score", h.handleScore)
	r.Post("/engine/stress", h.handleStress)
	r.Get("/engine/stress/scenarios", h.handleStressScenarios)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	plannerStatus := "fallback"
	if h.planner.RemoteConfigured() {
		plannerStatus = "connected"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"version":   h.version,
		"planner":   plannerStatus,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handlers) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile JSON: "+err.Error())
		return
	}
	if profile.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.store.SaveProfile(&profile); err != nil {
		h.log.Error().Err(err).Str("user_id", profile.UserID).Msg("save profile failed")
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "saved",
		"user_id": profile.UserID,
	})
}

func (h *Handlers) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.store.GetProfile(userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("get profile failed")
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// handleGeneratePlan saves the submitted profile, generates a plan for it
// and persists the result. Remote planner failures degrade to the fallback
// plan inside the planner service, so this endpoint only errors on storage
// problems.
func (h *Handlers) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile JSON: "+err.Error())
		return
	}
	if profile.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.store.SaveProfile(&profile); err != nil {
		h.log.Error().Err(err).Str("user_id", profile.UserID).Msg("save profile failed")
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 50*time.Second)
	defer cancel()

	plan, err := h.planner.Generate(ctx, &profile)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", profile.UserID).Msg("plan generation failed")
		respondError(w, http.StatusInternalServerError, "failed to generate plan")
		return
	}

	if err := h.store.SavePlan(plan); err != nil {
		h.log.Error().Err(err).Str("plan_id", plan.PlanID).Msg("save plan failed")
		respondError(w, http.StatusInternalServerError, "failed to save plan")
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (h *Handlers) handleLatestPlan(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	plan, err := h.store.LatestPlan(userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no plan found; generate one first")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("latest plan failed")
		respondError(w, http.StatusInternalServerError, "failed to load plan")
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (h *Handlers) handlePlanHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	plans, err := h.store.PlanHistory(userID, 0)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("plan history failed")
		respondError(w, http.StatusInternalServerError, "failed to load plan history")
		return
	}
	if plans == nil {
		plans = []*domain.Plan{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"plans": plans,
		"count": len(plans),
	})
}

func (h *Handlers) handleMarketPulse(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.market.Pulse())
}

func (h *Handlers) handleInstruments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"instruments": market.Instruments(),
	})
}

// handleMarketHistory returns daily closes for a symbol. Upstream failures
// answer 200 with an empty history so chart consumers degrade gracefully
// instead of breaking.
func (h *Handlers) handleMarketHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	period := r.URL.Query().Get("period")

	points, err := h.market.History(symbol, period)
	if err != nil {
		h.log.Warn().Err(err).Str("symbol", symbol).Msg("market history failed")
		respondJSON(w, http.StatusOK, map[string]any{
			"symbol":  symbol,
			"history": []market.HistoryPoint{},
			"count":   0,
			"error":   err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"symbol":  symbol,
		"history": points,
		"count":   len(points),
	})
}

type projectionRequest struct {
	Plan              *domain.Plan    `json:"plan,omitempty"`
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	AnnualReturn      decimal.Decimal `json:"annual_return"`
	Years             int             `json:"years"`
	ApplyInflation    bool            `json:"apply_inflation"`
	ApplyTax          bool            `json:"apply_tax"`
	InflationRate     decimal.Decimal `json:"inflation_rate,omitempty"`
}

// handleProjection projects a corpus either from a full plan (the weighted
// return is derived from its allocation) or from raw monthly_investment and
// annual_return scalars. Explicit request fields override plan values.
func (h *Handlers) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid projection request: "+err.Error())
		return
	}

	payment := req.MonthlyInvestment
	rate := req.AnnualReturn
	years := req.Years

	if req.Plan != nil {
		rate = h.engine.WeightedAnnualReturn(req.Plan.Allocation)
		if payment.IsZero() {
			payment = req.Plan.MonthlyInvestment
		}
		if years == 0 {
			years = req.Plan.RetirementProjection.YearsToRetire
		}
	}

	opts := domain.ProjectionOptions{
		ApplyInflation: req.ApplyInflation,
		ApplyTax:       req.ApplyTax,
		InflationRate:  req.InflationRate,
	}

	result := domain.ProjectionResult{
		WeightedReturn:    rate,
		MonthlyInvestment: payment,
		Years:             years,
		TotalInvested:     payment.Mul(decimal.NewFromInt(int64(years) * 12)),
		Series:            h.engine.ProjectSeries(payment, rate, years, opts),
	}
	if years > 0 {
		result.ProjectedCorpus = h.engine.ProjectCorpus(payment, rate, years, opts)
	}
	respondJSON(w, http.StatusOK, result)
}

type scoreRequest struct {
	Allocation        []domain.AllocationItem `json:"allocation"`
	MonthlyInvestment decimal.Decimal         `json:"monthly_investment"`
	MonthlyIncome     decimal.Decimal         `json:"monthly_income"`
	MonthlyExpenses   decimal.Decimal         `json:"monthly_expenses"`
	CurrentSavings    decimal.Decimal         `json:"current_savings"`
	RiskAppetite      string                  `json:"risk_appetite"`
}

func (h *Handlers) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid score request: "+err.Error())
		return
	}

	profile := domain.UserProfile{
		MonthlyExpenses: req.MonthlyExpenses,
		CurrentSavings:  req.CurrentSavings,
	}
	score := h.engine.FitnessScore(calculation.FitnessInput{
		Allocation:        req.Allocation,
		RunwayMonths:      profile.RunwayMonths(),
		RiskAppetite:      req.RiskAppetite,
		MonthlyInvestment: req.MonthlyInvestment,
		MonthlyIncome:     req.MonthlyIncome,
	})
	respondJSON(w, http.StatusOK, score)
}

type stressRequest struct {
	Allocation  []domain.AllocationItem `json:"allocation"`
	ScenarioID  string                  `json:"scenario_id,omitempty"`
	DropPercent decimal.Decimal         `json:"drop_percent,omitempty"`
}

// handleStress evaluates one scenario against an allocation: a built-in
// scenario by id, or an ad-hoc shock when drop_percent is given instead.
func (h *Handlers) handleStress(w http.ResponseWriter, r *http.Request) {
	var req stressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid stress request: "+err.Error())
		return
	}

	var scenario domain.StressScenario
	switch {
	case req.ScenarioID != "":
		sc, ok := calculation.FindStressScenario(req.ScenarioID)
		if !ok {
			respondError(w, http.StatusNotFound, "unknown scenario: "+req.ScenarioID)
			return
		}
		scenario = sc
	case !req.DropPercent.IsZero():
		scenario = domain.StressScenario{
			ID:          "custom",
			Name:        "Custom Shock",
			DropPercent: req.DropPercent,
		}
	default:
		respondError(w, http.StatusBadRequest, "scenario_id or drop_percent is required")
		return
	}

	respondJSON(w, http.StatusOK, h.engine.EvaluateStress(req.Allocation, scenario))
}

func (h *Handlers) handleStressScenarios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"scenarios": calculation.StressScenarios,
	})
}
