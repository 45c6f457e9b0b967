// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

var userColumns = []string{
	"id", "username", "orcid", "name", "reputation",
	"is_admin", "is_superadmin", "is_banned", "ban_reason",
	"created_at", "updated_at",
}

const returningUser = `RETURNING id, username, orcid, name, reputation,
	is_admin, is_superadmin, is_banned, ban_reason, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

// GetByORCID returns a user by ORCID iD.
func (r *Repo) GetByORCID(ctx context.Context, orcid string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"orcid": orcid}, orcid)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Sqlizer, ref any) (*domain.User, error) {
	query, args, err := postgres.Builder().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", ref)
	}
	return &u, nil
}

// GetByIDs returns the users with the given IDs in no particular order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder().Select(userColumns...).From("users").
		Where("id = ANY(?)", ids).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	users := []domain.User{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, query, args...); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	return users, nil
}

// List returns a page of users ordered by reputation and the total matching count.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	where := squirrel.And{}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"username": pattern},
			squirrel.ILike{"name": pattern},
		})
	}
	if f.Banned != nil {
		where = append(where, squirrel.Eq{"is_banned": *f.Banned})
	}
	if f.Admin != nil {
		where = append(where, squirrel.Eq{"is_admin": *f.Admin})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build users count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query, args, err := postgres.Builder().Select(userColumns...).From("users").Where(where).
		OrderBy("reputation DESC", "created_at").
		Limit(uint64(f.Limit)).Offset(uint64(f.Offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build users list: %w", err)
	}

	users := []domain.User{}
	if err := pgxscan.Select(ctx, q, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// Counts returns the number of users and banned users.
func (r *Repo) Counts(ctx context.Context) (total, banned int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_banned) FROM users`,
	).Scan(&total, &banned)
	if err != nil {
		return 0, 0, fmt.Errorf("count users: %w", err)
	}
	return total, banned, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

const createUserSQL = `
INSERT INTO users (username, orcid, name, is_admin, is_superadmin)
SELECT $1, $2, $3, f.is_first, f.is_first
FROM (SELECT NOT EXISTS (SELECT 1 FROM users) AS is_first) AS f
` + returningUser

// Create inserts a user. The very first user of an installation becomes
// admin and superadmin.
func (r *Repo) Create(ctx context.Context, username string, orcid *string, name string) (*domain.User, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, createUserSQL, username, orcid, name)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	var u domain.User
	if err := pgxscan.ScanOne(&u, rows); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return &u, nil
}

// SetBanned bans or unbans a user. reason is cleared on unban.
func (r *Repo) SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason *string) (*domain.User, error) {
	if !banned {
		reason = nil
	}
	return r.update(ctx, id, map[string]any{"is_banned": banned, "ban_reason": reason})
}

// SetAdmin grants or revokes admin rights.
func (r *Repo) SetAdmin(ctx context.Context, id uuid.UUID, admin bool) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"is_admin": admin})
}

// AddReputation adjusts the cached reputation by delta and returns the new value.
func (r *Repo) AddReputation(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var rep int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`UPDATE users SET reputation = reputation + $2, updated_at = now() WHERE id = $1 RETURNING reputation`,
		id, delta,
	).Scan(&rep)
	if err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return rep, nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.User, error) {
	query, args, err := postgres.Builder().Update("users").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}
