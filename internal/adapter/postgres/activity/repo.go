// Package activity implements the user activity trail using PostgreSQL.
// It provides append-only operations for activity records.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity record and returns the persisted domain.Activity.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	extra := a.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity marshal extra: %w", err)
	}

	var row activityRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO user_activity (user_id, action, translation_id, extra)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, action, translation_id, extra, created_at`,
		a.UserID, a.Action, a.TranslationID, extraJSON,
	)
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.UserID)
	}

	return row.toDomain()
}

// Log creates an activity record without returning it (fire-and-forget).
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	_, err := r.Create(ctx, a)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns a user's activity, newest first, with pagination.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	var rows []activityRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, user_id, action, translation_id, extra, created_at
		 FROM user_activity WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity by user: %w", err)
	}

	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// ListStatusChanges returns the recorded status changes of a translation into
// newStatus, oldest first.
func (r *Repo) ListStatusChanges(ctx context.Context, translationID uuid.UUID, newStatus domain.TranslationStatus) ([]domain.StatusChange, error) {
	changes := []domain.StatusChange{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &changes,
		`SELECT user_id,
		        coalesce(extra->>'old_status', '') AS old_status,
		        extra->>'new_status' AS new_status,
		        created_at
		 FROM user_activity
		 WHERE translation_id = $1 AND action = $2 AND extra->>'new_status' = $3
		 ORDER BY created_at`,
		translationID, domain.ActivityTranslationStatusChanged, string(newStatus),
	)
	if err != nil {
		return nil, fmt.Errorf("list status changes: %w", err)
	}
	return changes, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type activityRow struct {
	ID            uuid.UUID             `db:"id"`
	UserID        uuid.UUID             `db:"user_id"`
	Action        domain.ActivityAction `db:"action"`
	TranslationID *uuid.UUID            `db:"translation_id"`
	Extra         []byte                `db:"extra"`
	CreatedAt     time.Time             `db:"created_at"`
}

func (row activityRow) toDomain() (domain.Activity, error) {
	a := domain.Activity{
		ID:            row.ID,
		UserID:        row.UserID,
		Action:        row.Action,
		TranslationID: row.TranslationID,
		CreatedAt:     row.CreatedAt,
	}
	if len(row.Extra) > 0 {
		extra := make(map[string]any)
		if err := json.Unmarshal(row.Extra, &extra); err != nil {
			return domain.Activity{}, fmt.Errorf("activity %s unmarshal extra: %w", row.ID, err)
		}
		a.Extra = extra
	}
	return a, nil
}
