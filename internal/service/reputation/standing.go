package reputation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const recentEventsLimit = 20

// GetUserReputation returns the user's score, tier, review permission and latest ledger entries.
func (s *Service) GetUserReputation(ctx context.Context, userID uuid.UUID) (*domain.UserReputation, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reputation.GetUserReputation: %w", err)
	}
	rules, err := s.Rules(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListByUser(ctx, userID, recentEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("reputation.GetUserReputation: %w", err)
	}

	return &domain.UserReputation{
		UserID:     user.ID,
		Reputation: user.Reputation,
		Tier:       rules.TierFor(user.Reputation),
		CanReview:  user.IsAdmin || user.Reputation >= rules.Get(domain.RuleReviewMinReputation),
		Events:     events,
	}, nil
}

// CanReview reports whether the user may approve or reject translations.
// Admins always can.
func (s *Service) CanReview(ctx context.Context, user *domain.User) (bool, error) {
	if user.IsAdmin {
		return true, nil
	}
	rules, err := s.Rules(ctx)
	if err != nil {
		return false, err
	}
	return user.Reputation >= rules.Get(domain.RuleReviewMinReputation), nil
}
