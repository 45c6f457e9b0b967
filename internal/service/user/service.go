package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	Counts(ctx context.Context) (total, banned int, err error)
	SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason *string) (*domain.User, error)
	SetAdmin(ctx context.Context, id uuid.UUID, admin bool) (*domain.User, error)
}

// activityRepo defines the audit trail access needed by user service.
type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error)
}

// reputationService applies admin penalties through the ledger.
type reputationService interface {
	ApplyChange(ctx context.Context, userID uuid.UUID, delta int, reason string, translationID *uuid.UUID) (bool, error)
}

// statsSource provides the counters shown on the admin dashboard.
type statsSource interface {
	CountTranslationsByStatus(ctx context.Context) (map[domain.TranslationStatus]int, error)
	CountOpenAppeals(ctx context.Context) (int, error)
	CountPendingReports(ctx context.Context) (int, error)
	TaskStats(ctx context.Context) (domain.TaskStats, error)
}

// Service implements user administration and profile operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	activity   activityRepo
	reputation reputationService
	stats      statsSource
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activity activityRepo,
	rep reputationService,
	stats statsSource,
) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		activity:   activity,
		reputation: rep,
		stats:      stats,
	}
}

func (s *Service) logActivity(ctx context.Context, a domain.Activity) {
	if err := s.activity.Log(ctx, a); err != nil {
		s.log.WarnContext(ctx, "activity log failed",
			slog.String("action", a.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}
