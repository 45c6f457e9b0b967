// Package harvest imports SKOS concepts from SPARQL endpoints into terms and
// term fields.
package harvest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/adapter/provider/sparql"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/task"
)

// DefaultBatchSize is the number of concepts fetched per SPARQL page.
const DefaultBatchSize = 1000

type sparqlClient interface {
	Select(ctx context.Context, endpoint, query string) (*sparql.Results, error)
}

type termRepo interface {
	CreateSource(ctx context.Context, s domain.Source) (*domain.Source, error)
	GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
	MarkSourceSynced(ctx context.Context, id uuid.UUID) error
	UpsertTerm(ctx context.Context, uri string, sourceID uuid.UUID) (uuid.UUID, error)
	InsertField(ctx context.Context, f domain.TermField) (bool, error)
}

type taskLauncher interface {
	Launch(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID, fn task.Func) (*domain.Task, error)
}

type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
}

// Config tunes harvesting.
type Config struct {
	BatchSize int
	Fields    []string
}

// Service implements source management and harvesting.
type Service struct {
	log       *slog.Logger
	sparql    sparqlClient
	terms     termRepo
	tasks     taskLauncher
	activity  activityRepo
	batchSize int
	fields    []skosField
}

// NewService creates a new harvest service. Unknown field names are logged
// and ignored.
func NewService(logger *slog.Logger, client sparqlClient, terms termRepo, tasks taskLauncher, activity activityRepo, cfg Config) *Service {
	log := logger.With("service", "harvest")

	fields, unknown := resolveFields(cfg.Fields)
	if len(unknown) > 0 {
		log.Warn("ignoring unknown harvest fields", slog.Any("fields", unknown))
	}
	if len(fields) == 0 {
		fields, _ = resolveFields(nil)
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	return &Service{
		log:       log,
		sparql:    client,
		terms:     terms,
		tasks:     tasks,
		activity:  activity,
		batchSize: batch,
		fields:    fields,
	}
}
