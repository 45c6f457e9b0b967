// Package appeal implements appeals, appeal messages and message reports using PostgreSQL.
package appeal

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

// OneOpenConstraint allows a single open appeal per translation.
const OneOpenConstraint = "uq_appeals_one_open"

const (
	appealColumns  = `id, translation_id, opened_by_id, resolution, status, created_at, updated_at, closed_at`
	messageColumns = `id, appeal_id, author_id, message, created_at`
	reportColumns  = `id, message_id, reporter_id, reason, status, reviewed_by_id, reviewed_at, notes, created_at`
)

// Repo provides appeal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new appeal repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Appeals
// ---------------------------------------------------------------------------

// Create opens an appeal. A second open appeal on the same translation yields
// domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, translationID, openedBy uuid.UUID, resolution string) (*domain.Appeal, error) {
	var a domain.Appeal
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a,
		`INSERT INTO appeals (translation_id, opened_by_id, resolution) VALUES ($1, $2, $3) RETURNING `+appealColumns,
		translationID, openedBy, resolution,
	)
	if err != nil {
		return nil, mapAppealError(err, translationID)
	}
	return &a, nil
}

// GetByID returns an appeal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appeal, error) {
	var a domain.Appeal
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a,
		`SELECT `+appealColumns+` FROM appeals WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "appeal", id)
	}
	return &a, nil
}

// List returns appeals matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error) {
	where := squirrel.Eq{}
	if f.TranslationID != nil {
		where["translation_id"] = *f.TranslationID
	}
	if f.OpenedByID != nil {
		where["opened_by_id"] = *f.OpenedByID
	}
	if f.Status != "" {
		where["status"] = string(f.Status)
	}

	b := postgres.Builder().Select(appealColumns).From("appeals").Where(where).OrderBy("created_at DESC", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build appeal list: %w", err)
	}

	out := []domain.Appeal{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}
	return out, nil
}

// Update changes an appeal's status and, when resolution is non-nil, its resolution.
// closed_at is stamped when the status becomes final and cleared on reopen.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, status domain.AppealStatus, resolution *string) (*domain.Appeal, error) {
	b := postgres.Builder().Update("appeals").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()"))
	if resolution != nil {
		b = b.Set("resolution", *resolution)
	}
	if status.IsFinal() {
		b = b.Set("closed_at", squirrel.Expr("coalesce(closed_at, now())"))
	} else {
		b = b.Set("closed_at", nil)
	}

	query, args, err := b.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + appealColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build appeal update: %w", err)
	}

	var a domain.Appeal
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, mapAppealError(err, id)
	}
	return &a, nil
}

// CountOpen returns the number of open appeals.
func (r *Repo) CountOpen(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM appeals WHERE status = 'open'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open appeals: %w", err)
	}
	return n, nil
}

func mapAppealError(err error, ref uuid.UUID) error {
	if postgres.IsUniqueViolation(err, OneOpenConstraint) {
		return fmt.Errorf("appeal for translation %s: an open appeal already exists: %w", ref, domain.ErrConflict)
	}
	return postgres.MapError(err, "appeal", ref)
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// CreateMessage appends a message to an appeal thread.
func (r *Repo) CreateMessage(ctx context.Context, appealID, authorID uuid.UUID, message string) (*domain.AppealMessage, error) {
	var m domain.AppealMessage
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m,
		`INSERT INTO appeal_messages (appeal_id, author_id, message) VALUES ($1, $2, $3) RETURNING `+messageColumns,
		appealID, authorID, message,
	)
	if err != nil {
		return nil, postgres.MapError(err, "appeal_message", appealID)
	}
	return &m, nil
}

// GetMessage returns a message by ID.
func (r *Repo) GetMessage(ctx context.Context, id uuid.UUID) (*domain.AppealMessage, error) {
	var m domain.AppealMessage
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m,
		`SELECT `+messageColumns+` FROM appeal_messages WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "appeal_message", id)
	}
	return &m, nil
}

// ListMessages returns an appeal thread in posting order.
func (r *Repo) ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error) {
	out := []domain.AppealMessage{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out,
		`SELECT `+messageColumns+` FROM appeal_messages WHERE appeal_id = $1 ORDER BY created_at, id`, appealID)
	if err != nil {
		return nil, fmt.Errorf("list appeal messages: %w", err)
	}
	return out, nil
}

// CountMessagesWithin counts an author's messages on an appeal posted in the
// last window. The cutoff is taken from the database clock, the same clock
// that stamps created_at.
func (r *Repo) CountMessagesWithin(ctx context.Context, appealID, authorID uuid.UUID, window time.Duration) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM appeal_messages
		 WHERE appeal_id = $1 AND author_id = $2 AND created_at > now() - make_interval(secs => $3)`,
		appealID, authorID, window.Seconds(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count appeal messages: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// CreateReport flags a message. A second report by the same reporter yields
// domain.ErrAlreadyExists.
func (r *Repo) CreateReport(ctx context.Context, messageID, reporterID uuid.UUID, reason string) (*domain.MessageReport, error) {
	var rep domain.MessageReport
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rep,
		`INSERT INTO message_reports (message_id, reporter_id, reason) VALUES ($1, $2, $3) RETURNING `+reportColumns,
		messageID, reporterID, reason,
	)
	if err != nil {
		return nil, postgres.MapError(err, "message_report", messageID)
	}
	return &rep, nil
}

// GetReport returns a report by ID.
func (r *Repo) GetReport(ctx context.Context, id uuid.UUID) (*domain.MessageReport, error) {
	var rep domain.MessageReport
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rep,
		`SELECT `+reportColumns+` FROM message_reports WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "message_report", id)
	}
	return &rep, nil
}

// ListReports returns reports, optionally filtered by status, oldest first.
func (r *Repo) ListReports(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.MessageReport, error) {
	b := postgres.Builder().Select(reportColumns).From("message_reports").OrderBy("created_at", "id")
	if status != "" {
		b = b.Where(squirrel.Eq{"status": string(status)})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report list: %w", err)
	}

	out := []domain.MessageReport{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list message reports: %w", err)
	}
	return out, nil
}

// ResolveReport records a moderator's decision on a report.
func (r *Repo) ResolveReport(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, notes *string) (*domain.MessageReport, error) {
	var rep domain.MessageReport
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rep,
		`UPDATE message_reports
		 SET status = $2, reviewed_by_id = $3, reviewed_at = now(), notes = $4
		 WHERE id = $1
		 RETURNING `+reportColumns,
		id, string(status), reviewerID, notes,
	)
	if err != nil {
		return nil, postgres.MapError(err, "message_report", id)
	}
	return &rep, nil
}

// CountReports returns the number of reports in a status.
func (r *Repo) CountReports(ctx context.Context, status domain.ReportStatus) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM message_reports WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count message reports: %w", err)
	}
	return n, nil
}
