// Package task runs long operations in the background and tracks them in the
// tasks table so clients can poll their outcome.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// DefaultTimeout bounds a task when no timeout is configured.
const DefaultTimeout = 30 * time.Minute

// statusWriteTimeout bounds the final status write after the task's own context is done.
const statusWriteTimeout = 10 * time.Second

type taskRepo interface {
	Create(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	GetStats(ctx context.Context) (domain.TaskStats, error)
	List(ctx context.Context, status domain.TaskStatus, limit, offset int) ([]domain.Task, error)
	FailInterrupted(ctx context.Context) (int, error)
}

// taskRecorder counts finished tasks.
type taskRecorder interface {
	TaskFinished(taskType string, status string, d time.Duration)
}

// Func is the body of a task. Its result is stored as JSON.
type Func func(ctx context.Context) (any, error)

// Service launches and tracks async tasks.
type Service struct {
	log     *slog.Logger
	tasks   taskRepo
	rec     taskRecorder
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewService creates a new task service. rec may be nil.
func NewService(logger *slog.Logger, tasks taskRepo, rec taskRecorder, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		log:     logger.With("service", "task"),
		tasks:   tasks,
		rec:     rec,
		timeout: timeout,
	}
}

// Launch records a pending task and runs fn in the background. The task
// outlives ctx's cancellation but keeps its values (request ID, user).
func (s *Service) Launch(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID, fn Func) (*domain.Task, error) {
	if !typ.IsValid() {
		return nil, domain.NewValidationError("type", "invalid task type")
	}

	t, err := s.tasks.Create(ctx, typ, sourceID, createdBy)
	if err != nil {
		return nil, fmt.Errorf("task.Launch: %w", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(context.WithoutCancel(ctx), t, fn)
	}()

	s.log.InfoContext(ctx, "task launched",
		slog.String("task_id", t.ID.String()),
		slog.String("type", typ.String()),
	)
	return t, nil
}

func (s *Service) run(base context.Context, t *domain.Task, fn Func) {
	log := s.log.With(slog.String("task_id", t.ID.String()), slog.String("type", t.Type.String()))
	start := time.Now()

	if err := s.tasks.MarkRunning(base, t.ID); err != nil {
		log.ErrorContext(base, "mark running failed", slog.String("error", err.Error()))
	}

	ctx, cancel := context.WithTimeout(base, s.timeout)
	result, err := safeCall(ctx, fn)
	cancel()

	wctx, wcancel := context.WithTimeout(base, statusWriteTimeout)
	defer wcancel()

	status := domain.TaskStatusCompleted
	if err == nil {
		var payload []byte
		payload, err = json.Marshal(result)
		if err == nil {
			err = s.tasks.MarkCompleted(wctx, t.ID, payload)
			if err != nil {
				log.ErrorContext(base, "mark completed failed", slog.String("error", err.Error()))
			}
		}
	}
	if err != nil {
		status = domain.TaskStatusFailed
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", s.timeout, err)
		}
		if mErr := s.tasks.MarkFailed(wctx, t.ID, err.Error()); mErr != nil {
			log.ErrorContext(base, "mark failed failed", slog.String("error", mErr.Error()))
		}
		log.WarnContext(base, "task failed", slog.String("error", err.Error()))
	} else {
		log.InfoContext(base, "task completed", slog.Duration("duration", time.Since(start)))
	}

	if s.rec != nil {
		s.rec.TaskFinished(t.Type.String(), status.String(), time.Since(start))
	}
}

func safeCall(ctx context.Context, fn Func) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// Wait blocks until all launched tasks finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recover marks tasks left pending or running by a previous process as failed.
func (s *Service) Recover(ctx context.Context) error {
	n, err := s.tasks.FailInterrupted(ctx)
	if err != nil {
		return fmt.Errorf("task.Recover: %w", err)
	}
	if n > 0 {
		s.log.WarnContext(ctx, "interrupted tasks marked failed", slog.Int("count", n))
	}
	return nil
}

// Get returns a task by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.Get: %w", err)
	}
	return t, nil
}

// List returns tasks, optionally in one status.
func (s *Service) List(ctx context.Context, status domain.TaskStatus, limit, offset int) ([]domain.Task, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.List(ctx, status, limit, offset)
}

// Stats returns task counts by status.
func (s *Service) Stats(ctx context.Context) (domain.TaskStats, error) {
	return s.tasks.GetStats(ctx)
}
