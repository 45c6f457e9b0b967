// Package reputation implements the reputation ledger and rule table using PostgreSQL.
package reputation

import (
	"context"
	"fmt"
	"sort"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// Repo provides reputation event and rule persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new reputation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

const insertEventSQL = `
INSERT INTO reputation_events (user_id, delta, reason, translation_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, translation_id, reason) WHERE translation_id IS NOT NULL DO NOTHING`

// InsertEvent appends an event to the ledger. It reports false when an event with
// the same (user, translation, reason) already exists; events without a
// translation are always inserted.
func (r *Repo) InsertEvent(ctx context.Context, ev domain.ReputationEvent) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertEventSQL,
		ev.UserID, ev.Delta, ev.Reason, ev.TranslationID,
	)
	if err != nil {
		return false, postgres.MapError(err, "reputation_event", ev.UserID)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns a user's most recent events, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error) {
	events := []domain.ReputationEvent{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &events,
		`SELECT id, user_id, delta, reason, translation_id, created_at
		 FROM reputation_events WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reputation events: %w", err)
	}
	return events, nil
}

// ListRecent returns the newest events across all users.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ReputationEvent, error) {
	events := []domain.ReputationEvent{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &events,
		`SELECT id, user_id, delta, reason, translation_id, created_at
		 FROM reputation_events ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent reputation events: %w", err)
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

// ListRules returns every persisted rule ordered by name.
func (r *Repo) ListRules(ctx context.Context) ([]domain.ReputationRule, error) {
	rules := []domain.ReputationRule{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rules,
		`SELECT name, value, updated_at, updated_by FROM reputation_rules ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list reputation rules: %w", err)
	}
	return rules, nil
}

// UpsertRules writes the given rule values in one batch.
func (r *Repo) UpsertRules(ctx context.Context, values map[string]int, updatedBy uuid.UUID) error {
	return r.writeRules(ctx, values, &updatedBy,
		`INSERT INTO reputation_rules (name, value, updated_by) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = now()`)
}

// InsertMissingRules writes only the rules that have no row yet.
func (r *Repo) InsertMissingRules(ctx context.Context, values map[string]int) error {
	return r.writeRules(ctx, values, nil,
		`INSERT INTO reputation_rules (name, value, updated_by) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO NOTHING`)
}

func (r *Repo) writeRules(ctx context.Context, values map[string]int, updatedBy *uuid.UUID, sql string) error {
	if len(values) == 0 {
		return nil
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	q := postgres.QuerierFromCtx(ctx, r.db)
	for _, name := range names {
		if _, err := q.Exec(ctx, sql, name, values[name], updatedBy); err != nil {
			return fmt.Errorf("write reputation rule %s: %w", name, err)
		}
	}
	return nil
}
