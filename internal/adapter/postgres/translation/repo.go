// Package translation implements the Translation repository using PostgreSQL.
// Filtered reads are built with squirrel; fixed statements are raw SQL.
package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// UniqueConstraint guards one translation per (term field, language).
const UniqueConstraint = "uq_translations_field_language"

var translationColumns = []string{
	"id", "term_field_id", "language", "value", "status",
	"created_by_id", "modified_by_id", "reviewed_by_id",
	"created_at", "modified_at", "reviewed_at",
}

const returningTranslation = `RETURNING id, term_field_id, language, value, status,
	created_by_id, modified_by_id, reviewed_by_id, created_at, modified_at, reviewed_at`

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new translation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a translation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate returns a translation and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Translation, error) {
	b := postgres.Builder().Select(translationColumns...).From("translations").Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation query: %w", err)
	}

	var tr domain.Translation
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &tr, query, args...); err != nil {
		return nil, postgres.MapError(err, "translation", id)
	}
	return &tr, nil
}

// List returns translations matching the filter, most recently modified first.
func (r *Repo) List(ctx context.Context, f domain.TranslationFilter) ([]domain.Translation, error) {
	where := squirrel.Eq{}
	if f.TermFieldID != nil {
		where["term_field_id"] = *f.TermFieldID
	}
	if f.CreatedByID != nil {
		where["created_by_id"] = *f.CreatedByID
	}
	if f.Status != domain.TranslationStatusNone {
		where["status"] = string(f.Status)
	}
	if f.Language != "" {
		where["language"] = f.Language
	}

	b := postgres.Builder().Select(translationColumns...).From("translations").
		Where(where).OrderBy("modified_at DESC", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation list: %w", err)
	}

	out := []domain.Translation{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return out, nil
}

// CountByStatus returns the number of translations per status.
// Statuses without translations are reported as zero.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.TranslationStatus]int, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`SELECT status, count(*) FROM translations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count translations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.TranslationStatus]int, len(domain.TranslationStatuses))
	for _, s := range domain.TranslationStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan translation count: %w", err)
		}
		counts[domain.TranslationStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count translations by status: %w", err)
	}
	return counts, nil
}

const listForLDESSQL = `
SELECT t.uri AS term_uri, f.field_uri, f.field_term, tr.language, tr.value, tr.modified_at
FROM translations tr
JOIN term_fields f ON f.id = tr.term_field_id
JOIN terms t ON t.id = f.term_id
WHERE t.source_id = $1
  AND tr.status = 'review'
  AND ($2::timestamptz IS NULL OR tr.modified_at > $2)
ORDER BY tr.modified_at, t.uri, f.field_uri, tr.language`

// ListForLDES returns the in-review translations of a source modified after since
// (all of them when since is nil).
func (r *Repo) ListForLDES(ctx context.Context, sourceID uuid.UUID, since *time.Time) ([]domain.LDESTranslation, error) {
	out := []domain.LDESTranslation{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, listForLDESSQL, sourceID, since); err != nil {
		return nil, fmt.Errorf("list translations for ldes: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a translation. A second translation for the same field and
// language yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, tr domain.Translation) (*domain.Translation, error) {
	query, args, err := postgres.Builder().Insert("translations").
		Columns("term_field_id", "language", "value", "status", "created_by_id", "modified_by_id").
		Values(tr.TermFieldID, tr.Language, tr.Value, string(tr.Status), tr.CreatedByID, tr.CreatedByID).
		Suffix(returningTranslation).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation insert: %w", err)
	}
	return r.write(ctx, query, args, tr.TermFieldID)
}

// UpdateValue replaces the value and status of a translation.
func (r *Repo) UpdateValue(ctx context.Context, id uuid.UUID, value string, status domain.TranslationStatus, actorID uuid.UUID) (*domain.Translation, error) {
	return r.update(ctx, id, map[string]any{
		"value":          value,
		"status":         string(status),
		"modified_by_id": actorID,
	})
}

// UpdateStatus moves a translation to status. Reviewing statuses also record
// the reviewer.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TranslationStatus, actorID uuid.UUID) (*domain.Translation, error) {
	set := map[string]any{
		"status":         string(status),
		"modified_by_id": actorID,
	}
	switch status {
	case domain.TranslationStatusApproved, domain.TranslationStatusRejected, domain.TranslationStatusMerged:
		set["reviewed_by_id"] = actorID
		set["reviewed_at"] = squirrel.Expr("now()")
	}
	return r.update(ctx, id, set)
}

// UpdateLanguage moves a translation to another language.
func (r *Repo) UpdateLanguage(ctx context.Context, id uuid.UUID, language string, actorID uuid.UUID) (*domain.Translation, error) {
	return r.update(ctx, id, map[string]any{
		"language":       language,
		"modified_by_id": actorID,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.Translation, error) {
	query, args, err := postgres.Builder().Update("translations").
		SetMap(set).
		Set("modified_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningTranslation).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation update: %w", err)
	}
	return r.write(ctx, query, args, id)
}

func (r *Repo) write(ctx context.Context, query string, args []any, ref any) (*domain.Translation, error) {
	var tr domain.Translation
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &tr, query, args...); err != nil {
		return nil, postgres.MapError(err, "translation", ref)
	}
	return &tr, nil
}
