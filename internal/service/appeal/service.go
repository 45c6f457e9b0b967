// Package appeal implements translation appeals, their discussion threads and
// message reports.
package appeal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// DefaultMaxMessagesPerHour caps messages per user per appeal in a rolling hour.
const DefaultMaxMessagesPerHour = 10

type appealRepo interface {
	Create(ctx context.Context, translationID, openedBy uuid.UUID, resolution string) (*domain.Appeal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appeal, error)
	List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error)
	Update(ctx context.Context, id uuid.UUID, status domain.AppealStatus, resolution *string) (*domain.Appeal, error)

	CreateMessage(ctx context.Context, appealID, authorID uuid.UUID, message string) (*domain.AppealMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*domain.AppealMessage, error)
	ListMessages(ctx context.Context, appealID uuid.UUID) ([]domain.AppealMessage, error)
	CountMessagesWithin(ctx context.Context, appealID, authorID uuid.UUID, window time.Duration) (int, error)

	CreateReport(ctx context.Context, messageID, reporterID uuid.UUID, reason string) (*domain.MessageReport, error)
	ListReports(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.MessageReport, error)
	ResolveReport(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reviewerID uuid.UUID, notes *string) (*domain.MessageReport, error)
}

type translationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
}

type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
}

// Service implements appeal operations.
type Service struct {
	log                *slog.Logger
	appeals            appealRepo
	translations       translationRepo
	activity           activityRepo
	maxMessagesPerHour int
}

// NewService creates a new appeal service. A non-positive maxMessagesPerHour
// falls back to DefaultMaxMessagesPerHour.
func NewService(
	logger *slog.Logger,
	appeals appealRepo,
	translations translationRepo,
	activity activityRepo,
	maxMessagesPerHour int,
) *Service {
	if maxMessagesPerHour <= 0 {
		maxMessagesPerHour = DefaultMaxMessagesPerHour
	}
	return &Service{
		log:                logger.With("service", "appeal"),
		appeals:            appeals,
		translations:       translations,
		activity:           activity,
		maxMessagesPerHour: maxMessagesPerHour,
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
