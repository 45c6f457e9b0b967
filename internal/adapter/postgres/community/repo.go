// Package community implements communities, memberships and goals using PostgreSQL.
package community

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const communityFields = `c.id, c.name, c.description, c.type, c.language_code, c.created_by_id,
	(SELECT count(*) FROM community_members m WHERE m.community_id = c.id) AS member_count,
	c.created_at, c.updated_at`

const communitySelect = `SELECT ` + communityFields + ` FROM communities c`

const goalSelect = `
SELECT g.id, g.community_id, g.title, g.description, g.language, g.target_count,
       (SELECT count(*)
          FROM translations t
          JOIN community_members m ON m.user_id = t.created_by_id AND m.community_id = g.community_id
         WHERE t.language = g.language
           AND t.status IN ('approved', 'merged')
           AND t.modified_at >= g.created_at) AS progress,
       g.due_at, g.created_by_id, g.created_at
FROM community_goals g`

// Repo provides community persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new community repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Communities
// ---------------------------------------------------------------------------

// Create inserts a community. MemberCount of the result is zero.
func (r *Repo) Create(ctx context.Context, c domain.Community) (*domain.Community, error) {
	var out domain.Community
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO communities (name, description, type, language_code, created_by_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, description, type, language_code, created_by_id, 0 AS member_count, created_at, updated_at`,
		c.Name, c.Description, string(c.Type), c.LanguageCode, c.CreatedByID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "community", c.Name)
	}
	return &out, nil
}

// GetByID returns a community with its member count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	var c domain.Community
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, communitySelect+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "community", id)
	}
	return &c, nil
}

// List returns communities, optionally filtered by type, language communities first.
func (r *Repo) List(ctx context.Context, typ domain.CommunityType, limit, offset int) ([]domain.Community, error) {
	b := postgres.Builder().Select(communityFields).From("communities c").OrderBy("c.type", "c.name", "c.id")
	if typ != "" {
		b = b.Where(squirrel.Eq{"c.type": string(typ)})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build community list: %w", err)
	}

	out := []domain.Community{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	return out, nil
}

// Update changes the name and/or description of a community.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, description *string) (*domain.Community, error) {
	b := postgres.Builder().Update("communities").Set("updated_at", squirrel.Expr("now()"))
	if name != nil {
		b = b.Set("name", *name)
	}
	if description != nil {
		b = b.Set("description", *description)
	}
	query, args, err := b.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build community update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "community", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("community %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a community with its members and goals.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM communities WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "community", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

const memberSelect = `
SELECT m.community_id, m.user_id, u.username, m.role, m.joined_at
FROM community_members m
JOIN users u ON u.id = m.user_id`

// AddMember adds a user to a community. Existing members yield domain.ErrAlreadyExists.
func (r *Repo) AddMember(ctx context.Context, communityID, userID uuid.UUID, role domain.CommunityRole) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO community_members (community_id, user_id, role) VALUES ($1, $2, $3)`,
		communityID, userID, string(role),
	)
	if err != nil {
		return postgres.MapError(err, "community_member", userID)
	}
	return nil
}

// GetMember returns a membership.
func (r *Repo) GetMember(ctx context.Context, communityID, userID uuid.UUID) (*domain.CommunityMember, error) {
	var m domain.CommunityMember
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m,
		memberSelect+` WHERE m.community_id = $1 AND m.user_id = $2`, communityID, userID)
	if err != nil {
		return nil, postgres.MapError(err, "community_member", userID)
	}
	return &m, nil
}

// ListMembers returns a community's members ordered by join time.
func (r *Repo) ListMembers(ctx context.Context, communityID uuid.UUID, limit, offset int) ([]domain.CommunityMember, error) {
	out := []domain.CommunityMember{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		memberSelect+` WHERE m.community_id = $1 ORDER BY m.joined_at, u.username LIMIT $2 OFFSET $3`,
		communityID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list community members: %w", err)
	}
	return out, nil
}

// RemoveMember deletes a membership.
func (r *Repo) RemoveMember(ctx context.Context, communityID, userID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM community_members WHERE community_id = $1 AND user_id = $2`, communityID, userID)
	if err != nil {
		return postgres.MapError(err, "community_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community_member %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// SetRole changes a member's role.
func (r *Repo) SetRole(ctx context.Context, communityID, userID uuid.UUID, role domain.CommunityRole) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE community_members SET role = $3 WHERE community_id = $1 AND user_id = $2`,
		communityID, userID, string(role))
	if err != nil {
		return postgres.MapError(err, "community_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community_member %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Goals
// ---------------------------------------------------------------------------

// CreateGoal inserts a goal and returns it with its current progress.
func (r *Repo) CreateGoal(ctx context.Context, g domain.CommunityGoal) (*domain.CommunityGoal, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO community_goals (community_id, title, description, language, target_count, due_at, created_by_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		g.CommunityID, g.Title, g.Description, g.Language, g.TargetCount, g.DueAt, g.CreatedByID,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "community_goal", g.CommunityID)
	}
	return r.GetGoal(ctx, id)
}

// GetGoal returns a goal with its progress.
func (r *Repo) GetGoal(ctx context.Context, id uuid.UUID) (*domain.CommunityGoal, error) {
	var g domain.CommunityGoal
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &g, goalSelect+` WHERE g.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "community_goal", id)
	}
	return &g, nil
}

// ListGoals returns a community's goals, soonest due first.
func (r *Repo) ListGoals(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error) {
	out := []domain.CommunityGoal{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		goalSelect+` WHERE g.community_id = $1 ORDER BY g.due_at NULLS LAST, g.created_at`, communityID)
	if err != nil {
		return nil, fmt.Errorf("list community goals: %w", err)
	}
	return out, nil
}

// DeleteGoal removes a goal of a community.
func (r *Repo) DeleteGoal(ctx context.Context, communityID, goalID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM community_goals WHERE id = $1 AND community_id = $2`, goalID, communityID)
	if err != nil {
		return postgres.MapError(err, "community_goal", goalID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community_goal %s: %w", goalID, domain.ErrNotFound)
	}
	return nil
}
