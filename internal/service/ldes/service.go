// Package ldes publishes in-review translations of a source as a Linked Data
// Event Stream: one Turtle fragment per run, named by the epoch of its newest
// member, with latest.ttl mirroring the most recent fragment.
package ldes

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/task"
)

// DefaultPrefixURI is used when no prefix URI is configured.
const DefaultPrefixURI = "http://localhost:8080/ldes"

type translationRepo interface {
	ListForLDES(ctx context.Context, sourceID uuid.UUID, since *time.Time) ([]domain.LDESTranslation, error)
}

type sourceRepo interface {
	GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
}

type taskLauncher interface {
	Launch(ctx context.Context, typ domain.TaskType, sourceID, createdBy *uuid.UUID, fn task.Func) (*domain.Task, error)
}

type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
}

// Config locates the fragments on disk and on the web.
type Config struct {
	BaseDir   string
	PrefixURI string
}

// Service generates LDES fragments.
type Service struct {
	log          *slog.Logger
	translations translationRepo
	sources      sourceRepo
	tasks        taskLauncher
	activity     activityRepo
	baseDir      string
	prefixURI    string
}

// NewService creates a new LDES service.
func NewService(logger *slog.Logger, translations translationRepo, sources sourceRepo, tasks taskLauncher, activity activityRepo, cfg Config) *Service {
	prefix := strings.TrimRight(cfg.PrefixURI, "/")
	if prefix == "" {
		prefix = DefaultPrefixURI
	}
	return &Service{
		log:          logger.With("service", "ldes"),
		translations: translations,
		sources:      sources,
		tasks:        tasks,
		activity:     activity,
		baseDir:      cfg.BaseDir,
		prefixURI:    prefix,
	}
}

// Dir returns the directory holding a source's fragments.
func (s *Service) Dir(sourceID uuid.UUID) string {
	return dirFor(s.baseDir, sourceID)
}
