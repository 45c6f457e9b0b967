// Package reputation owns the reputation ledger: the only writer of users.reputation.
package reputation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// userRepo defines the user persistence needed by the reputation service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddReputation(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

// eventRepo defines the ledger persistence.
type eventRepo interface {
	InsertEvent(ctx context.Context, ev domain.ReputationEvent) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReputationEvent, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ReputationEvent, error)
}

// ruleRepo defines the rule table persistence.
type ruleRepo interface {
	ListRules(ctx context.Context) ([]domain.ReputationRule, error)
	UpsertRules(ctx context.Context, values map[string]int, updatedBy uuid.UUID) error
	InsertMissingRules(ctx context.Context, values map[string]int) error
}

// activityRepo defines the audit trail access needed for rule changes and the
// false-rejection sweep.
type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
	ListStatusChanges(ctx context.Context, translationID uuid.UUID, newStatus domain.TranslationStatus) ([]domain.StatusChange, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// eventRecorder counts applied ledger events.
type eventRecorder interface {
	ReputationEvent(reason string, delta int)
}

// Service implements reputation operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	events   eventRepo
	rules    ruleRepo
	activity activityRepo
	tx       txManager
	rec      eventRecorder
}

// NewService creates a new reputation service. rec may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	events eventRepo,
	rules ruleRepo,
	activity activityRepo,
	tx txManager,
	rec eventRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "reputation"),
		users:    users,
		events:   events,
		rules:    rules,
		activity: activity,
		tx:       tx,
		rec:      rec,
	}
}
