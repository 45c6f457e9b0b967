// Package community manages user-created and language communities, their
// members and translation goals.
package community

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

type communityRepo interface {
	Create(ctx context.Context, c domain.Community) (*domain.Community, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	List(ctx context.Context, typ domain.CommunityType, limit, offset int) ([]domain.Community, error)
	Update(ctx context.Context, id uuid.UUID, name, description *string) (*domain.Community, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, communityID, userID uuid.UUID, role domain.CommunityRole) error
	GetMember(ctx context.Context, communityID, userID uuid.UUID) (*domain.CommunityMember, error)
	ListMembers(ctx context.Context, communityID uuid.UUID, limit, offset int) ([]domain.CommunityMember, error)
	RemoveMember(ctx context.Context, communityID, userID uuid.UUID) error
	SetRole(ctx context.Context, communityID, userID uuid.UUID, role domain.CommunityRole) error

	CreateGoal(ctx context.Context, g domain.CommunityGoal) (*domain.CommunityGoal, error)
	ListGoals(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error)
	DeleteGoal(ctx context.Context, communityID, goalID uuid.UUID) error
}

type activityRepo interface {
	Log(ctx context.Context, a domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements community operations.
type Service struct {
	log         *slog.Logger
	communities communityRepo
	activity    activityRepo
	tx          txManager
}

// NewService creates a new community service.
func NewService(logger *slog.Logger, communities communityRepo, activity activityRepo, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "community"),
		communities: communities,
		activity:    activity,
		tx:          tx,
	}
}
