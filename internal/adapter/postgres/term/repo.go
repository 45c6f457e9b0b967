// Package term implements persistence for vocabulary sources, terms and term fields.
package term

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// Repo provides source, term and term field persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new term repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Sources
// ---------------------------------------------------------------------------

const sourceColumns = `id, name, kind, endpoint, collection_uri, created_at, last_synced_at`

// CreateSource registers a vocabulary source.
func (r *Repo) CreateSource(ctx context.Context, s domain.Source) (*domain.Source, error) {
	var out domain.Source
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`INSERT INTO sources (name, kind, endpoint, collection_uri) VALUES ($1, $2, $3, $4)
		 RETURNING `+sourceColumns,
		s.Name, string(s.Kind), s.Endpoint, s.CollectionURI,
	)
	if err != nil {
		return nil, postgres.MapError(err, "source", s.Name)
	}
	return &out, nil
}

// GetSource returns a source by ID.
func (r *Repo) GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	var out domain.Source
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+sourceColumns+` FROM sources WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return &out, nil
}

// ListSources returns every source ordered by name.
func (r *Repo) ListSources(ctx context.Context) ([]domain.Source, error) {
	out := []domain.Source{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+sourceColumns+` FROM sources ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return out, nil
}

// MarkSourceSynced stamps the source's last successful harvest.
func (r *Repo) MarkSourceSynced(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE sources SET last_synced_at = now() WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "source", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Terms and fields
// ---------------------------------------------------------------------------

const upsertTermSQL = `
INSERT INTO terms (uri, source_id) VALUES ($1, $2)
ON CONFLICT (uri) DO UPDATE
    SET updated_at = now(),
        source_id  = coalesce(terms.source_id, EXCLUDED.source_id)
RETURNING id`

// UpsertTerm returns the ID of the term with the given URI, creating it if needed.
func (r *Repo) UpsertTerm(ctx context.Context, uri string, sourceID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertTermSQL, uri, sourceID).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "term", uri)
	}
	return id, nil
}

// InsertField adds a field to a term. It reports false when the identical
// (term, field, value) triple already exists.
func (r *Repo) InsertField(ctx context.Context, f domain.TermField) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO term_fields (term_id, field_uri, field_term, original_value)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (term_id, field_uri, original_value) DO NOTHING`,
		f.TermID, f.FieldURI, f.FieldTerm, f.OriginalValue,
	)
	if err != nil {
		return false, postgres.MapError(err, "term_field", f.TermID)
	}
	return tag.RowsAffected() == 1, nil
}

// GetField returns a term field by ID.
func (r *Repo) GetField(ctx context.Context, id uuid.UUID) (*domain.TermField, error) {
	var f domain.TermField
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &f,
		`SELECT id, term_id, field_uri, field_term, original_value FROM term_fields WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "term_field", id)
	}
	return &f, nil
}

// CountTerms returns the number of terms harvested from a source.
func (r *Repo) CountTerms(ctx context.Context, sourceID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM terms WHERE source_id = $1`, sourceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return n, nil
}
