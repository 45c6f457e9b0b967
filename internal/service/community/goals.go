package community

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// CreateGoal sets a translation target for a community. Creator or moderator;
// on language communities admins only.
func (s *Service) CreateGoal(ctx context.Context, input GoalInput) (*domain.CommunityGoal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	userID, err := s.authorizeGoals(ctx, input.CommunityID)
	if err != nil {
		return nil, err
	}

	g, err := s.communities.CreateGoal(ctx, domain.CommunityGoal{
		CommunityID: input.CommunityID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Language:    input.Language,
		TargetCount: input.TargetCount,
		DueAt:       input.DueAt,
		CreatedByID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("community.CreateGoal: %w", err)
	}
	return g, nil
}

// DeleteGoal removes a goal. Same permissions as CreateGoal.
func (s *Service) DeleteGoal(ctx context.Context, communityID, goalID uuid.UUID) error {
	if _, err := s.authorizeGoals(ctx, communityID); err != nil {
		return err
	}
	if err := s.communities.DeleteGoal(ctx, communityID, goalID); err != nil {
		return fmt.Errorf("community.DeleteGoal: %w", err)
	}
	return nil
}

// ListGoals returns a community's goals with their progress.
func (s *Service) ListGoals(ctx context.Context, communityID uuid.UUID) ([]domain.CommunityGoal, error) {
	if _, err := s.communities.GetByID(ctx, communityID); err != nil {
		return nil, fmt.Errorf("community.ListGoals: %w", err)
	}
	goals, err := s.communities.ListGoals(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("community.ListGoals: %w", err)
	}
	return goals, nil
}

func (s *Service) authorizeGoals(ctx context.Context, communityID uuid.UUID) (uuid.UUID, error) {
	if ctxutil.IsAdminCtx(ctx) {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return uuid.Nil, domain.ErrUnauthorized
		}
		if _, err := s.communities.GetByID(ctx, communityID); err != nil {
			return uuid.Nil, fmt.Errorf("community: %w", err)
		}
		return userID, nil
	}
	userID, _, err := s.authorize(ctx, communityID, func(r domain.CommunityRole) bool { return r.CanManage() })
	return userID, err
}
