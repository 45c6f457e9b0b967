// Package jobs runs the periodic background work: harvesting every SPARQL
// source, regenerating LDES fragments and purging dead sessions.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/harvest"
	"github.com/heartmarshall/termtrans-backend/internal/service/ldes"
	"github.com/heartmarshall/termtrans-backend/internal/service/task"
)

type taskLauncher interface {
	Launch(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID, fn task.Func) (*domain.Task, error)
}

type harvester interface {
	HarvestAll(ctx context.Context) ([]harvest.Result, error)
}

type publisher interface {
	GenerateAll(ctx context.Context) ([]ldes.Result, error)
}

type sessionCleaner interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// Config holds cron specs. An empty spec disables that job.
type Config struct {
	HarvestCron        string
	LDESCron           string
	SessionCleanupCron string
}

// Scheduler wraps a cron runner.
type Scheduler struct {
	log      *slog.Logger
	cron     *cron.Cron
	tasks    taskLauncher
	harvest  harvester
	ldes     publisher
	sessions sessionCleaner
	cfg      Config
}

// NewScheduler creates a scheduler. Jobs are registered by Start.
func NewScheduler(logger *slog.Logger, tasks taskLauncher, h harvester, p publisher, sessions sessionCleaner, cfg Config) *Scheduler {
	log := logger.With("service", "jobs")
	return &Scheduler{
		log: log,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cronLogger{log}),
			cron.Recover(cronLogger{log}),
		)),
		tasks:    tasks,
		harvest:  h,
		ldes:     p,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Start registers the configured jobs and starts the cron loop. Jobs run with ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		name string
		spec string
		fn   func(context.Context)
	}{
		{"harvest", s.cfg.HarvestCron, s.runHarvest},
		{"ldes", s.cfg.LDESCron, s.runLDES},
		{"session_cleanup", s.cfg.SessionCleanupCron, s.runSessionCleanup},
	}

	for _, j := range jobs {
		if j.spec == "" {
			continue
		}
		fn := j.fn
		if _, err := s.cron.AddFunc(j.spec, func() { fn(ctx) }); err != nil {
			return fmt.Errorf("jobs: schedule %s %q: %w", j.name, j.spec, err)
		}
		s.log.Info("job scheduled", slog.String("job", j.name), slog.String("spec", j.spec))
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runHarvest(ctx context.Context) {
	t, err := s.tasks.Launch(ctx, domain.TaskTypeHarvest, nil, nil, func(ctx context.Context) (any, error) {
		return s.harvest.HarvestAll(ctx)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "launch harvest", slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "scheduled harvest launched", slog.String("task_id", t.ID.String()))
}

func (s *Scheduler) runLDES(ctx context.Context) {
	t, err := s.tasks.Launch(ctx, domain.TaskTypeLDES, nil, nil, func(ctx context.Context) (any, error) {
		return s.ldes.GenerateAll(ctx)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "launch ldes", slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "scheduled ldes launched", slog.String("task_id", t.ID.String()))
}

func (s *Scheduler) runSessionCleanup(ctx context.Context) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "delete expired sessions", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired sessions deleted", slog.Int("count", n))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct{ log *slog.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}
