// Package translation drives the translation status state machine and its
// reputation and audit side effects.
package translation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/reputation"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type translationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Translation, error)
	List(ctx context.Context, f domain.TranslationFilter) ([]domain.Translation, error)
	Create(ctx context.Context, tr domain.Translation) (*domain.Translation, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value string, status domain.TranslationStatus, actorID uuid.UUID) (*domain.Translation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TranslationStatus, actorID uuid.UUID) (*domain.Translation, error)
	UpdateLanguage(ctx context.Context, id uuid.UUID, language string, actorID uuid.UUID) (*domain.Translation, error)
}

type fieldRepo interface {
	GetField(ctx context.Context, id uuid.UUID) (*domain.TermField, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
}

type reputationService interface {
	ApplyForStatusChange(ctx context.Context, c reputation.StatusChange) error
	CanReview(ctx context.Context, user *domain.User) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements translation operations.
type Service struct {
	log          *slog.Logger
	translations translationRepo
	fields       fieldRepo
	users        userRepo
	activity     activityRepo
	reputation   reputationService
}

// NewService creates a new translation service.
func NewService(
	logger *slog.Logger,
	translations translationRepo,
	fields fieldRepo,
	users userRepo,
	activity activityRepo,
	rep reputationService,
) *Service {
	return &Service{
		log:          logger.With("service", "translation"),
		translations: translations,
		fields:       fields,
		users:        users,
		activity:     activity,
		reputation:   rep,
	}
}
