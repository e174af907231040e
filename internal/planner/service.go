package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// Service generates plans, preferring the remote generation service and
// falling back to the deterministic mock on any failure.
type Service struct {
	remote   Generator // nil when no generation service is configured
	fallback Generator
	log      zerolog.Logger
}

// NewService wires the planner. remote may be nil.
func NewService(remote Generator, log zerolog.Logger) *Service {
	return &Service{
		remote:   remote,
		fallback: NewMockGenerator(),
		log:      log.With().Str("component", "planner").Logger(),
	}
}

// RemoteConfigured reports whether a generation service is wired.
func (s *Service) RemoteConfigured() bool {
	return s.remote != nil
}

// Generate produces a plan for the profile and stamps its identity fields.
// A remote failure degrades to the fallback plan; it is never surfaced to
// the caller.
func (s *Service) Generate(ctx context.Context, profile *domain.UserProfile) (*domain.Plan, error) {
	var plan *domain.Plan

	if s.remote != nil {
		p, err := s.remote.GeneratePlan(ctx, profile)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", profile.UserID).Msg("generation service failed, using fallback plan")
		} else {
			plan = p
		}
	}

	if plan == nil {
		p, err := s.fallback.GeneratePlan(ctx, profile)
		if err != nil {
			return nil, err
		}
		plan = p
	}

	plan.PlanID = uuid.NewString()
	plan.UserID = profile.UserID
	plan.GeneratedAt = time.Now().UTC()

	s.log.Info().Str("user_id", profile.UserID).Str("plan_id", plan.PlanID).Msg("plan generated")
	return plan, nil
}
