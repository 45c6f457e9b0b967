// Package task implements the async task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const taskColumns = `id, type, status, source_id, created_by_id, result, error_message, created_at, started_at, completed_at`

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new task repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a pending task.
func (r *Repo) Create(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID) (*domain.Task, error) {
	var t domain.Task
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t,
		`INSERT INTO tasks (type, source_id, created_by_id) VALUES ($1, $2, $3) RETURNING `+taskColumns,
		string(typ), sourceID, createdBy,
	)
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", postgres.MapError(err, "task", typ))
	}
	return &t, nil
}

// GetByID returns a task by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var t domain.Task
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &t, nil
}

// MarkRunning moves a pending task to running.
func (r *Repo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE tasks SET status = 'running', started_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("task.MarkRunning: %w", err)
	}
	return nil
}

// MarkCompleted stores the task result.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID, result []byte) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE tasks SET status = 'completed', result = $2, completed_at = now() WHERE id = $1`, id, result)
	if err != nil {
		return fmt.Errorf("task.MarkCompleted: %w", err)
	}
	return nil
}

// MarkFailed marks a task as failed with error message.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE tasks SET status = 'failed', error_message = $2, completed_at = now() WHERE id = $1`, id, errMsg)
	if err != nil {
		return fmt.Errorf("task.MarkFailed: %w", err)
	}
	return nil
}

// GetStats returns aggregate counts by status.
func (r *Repo) GetStats(ctx context.Context) (domain.TaskStats, error) {
	var s domain.TaskStats
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
		SELECT count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'running'),
		       count(*) FILTER (WHERE status = 'completed'),
		       count(*) FILTER (WHERE status = 'failed'),
		       count(*)
		FROM tasks`,
	).Scan(&s.Pending, &s.Running, &s.Completed, &s.Failed, &s.Total)
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("task.GetStats: %w", err)
	}
	return s, nil
}

// List returns tasks filtered by status (all when empty) with pagination, newest first.
func (r *Repo) List(ctx context.Context, status domain.TaskStatus, limit, offset int) ([]domain.Task, error) {
	b := postgres.Builder().Select(taskColumns).From("tasks").OrderBy("created_at DESC", "id")
	if status != "" {
		b = b.Where(squirrel.Eq{"status": string(status)})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit)).Offset(uint64(offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}

	out := []domain.Task{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}
	return out, nil
}

// FailInterrupted marks every pending or running task as failed. Called on
// startup, when no task of a previous process can still be running.
func (r *Repo) FailInterrupted(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE tasks SET status = 'failed', error_message = 'interrupted by restart', completed_at = now()
		 WHERE status IN ('pending', 'running')`)
	if err != nil {
		return 0, fmt.Errorf("task.FailInterrupted: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
