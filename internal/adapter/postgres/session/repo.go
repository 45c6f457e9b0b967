// Package session implements the login session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const sessionColumns = `id, user_id, expires_at, created_at, revoked_at`

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new session repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a session for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, expiresAt time.Time) (*domain.Session, error) {
	var s domain.Session
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s,
		`INSERT INTO sessions (user_id, expires_at) VALUES ($1, $2) RETURNING `+sessionColumns,
		userID, expiresAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "session", userID)
	}
	return &s, nil
}

// GetActive returns a session that is neither revoked nor expired.
// Anything else yields domain.ErrNotFound.
func (r *Repo) GetActive(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var s domain.Session
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = $1 AND revoked_at IS NULL AND expires_at > now()`,
		id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return &s, nil
}

// Revoke revokes one session. Revoking twice is not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE sessions SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("session.Revoke: %w", err)
	}
	return nil
}

// RevokeAllByUser revokes every active session of the user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE sessions SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		return 0, fmt.Errorf("session.RevokeAllByUser: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteExpired removes expired and revoked sessions.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM sessions WHERE expires_at <= now() OR revoked_at IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("session.DeleteExpired: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
