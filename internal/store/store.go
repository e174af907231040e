// Package store persists user profiles and generated plans to SQLite.
// Documents are stored as JSON payloads keyed by user and plan IDs; the
// engine itself never touches storage.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// ErrNotFound is returned when a profile or plan does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for concurrent reads while the API writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db, log: log.With().Str("component", "store").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Info().Str("path", path).Msg("sqlite store opened")
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id    TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS plans (
			plan_id      TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			payload      TEXT NOT NULL,
			generated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_user ON plans(user_id, generated_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProfile upserts a user profile.
func (s *Store) SaveProfile(p *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (user_id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		p.UserID, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.UserID, err)
	}
	return nil
}

// GetProfile loads a user profile, or ErrNotFound.
func (s *Store) GetProfile(userID string) (*domain.UserProfile, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM profiles WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile %s: %w", userID, err)
	}
	return &p, nil
}

// SavePlan stores a generated plan.
func (s *Store) SavePlan(plan *domain.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	generatedAt := plan.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	_, err = s.db.Exec(
		`INSERT INTO plans (plan_id, user_id, payload, generated_at) VALUES (?, ?, ?, ?)`,
		plan.PlanID, plan.UserID, string(payload), generatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save plan %s: %w", plan.PlanID, err)
	}
	return nil
}

// LatestPlan returns the most recently generated plan for a user, or
// ErrNotFound.
func (s *Store) LatestPlan(userID string) (*domain.Plan, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM plans WHERE user_id = ? ORDER BY generated_at DESC, plan_id DESC LIMIT 1`,
		userID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest plan for %s: %w", userID, err)
	}

	var plan domain.Plan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}

// PlanHistory returns a user's plans, newest first, up to limit.
func (s *Store) PlanHistory(userID string, limit int) ([]*domain.Plan, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT payload FROM plans WHERE user_id = ? ORDER BY generated_at DESC, plan_id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("plan history for %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		var plan domain.Plan
		if err := json.Unmarshal([]byte(payload), &plan); err != nil {
			return nil, fmt.Errorf("unmarshal plan: %w", err)
		}
		plans = append(plans, &plan)
	}
	return plans, rows.Err()
}
