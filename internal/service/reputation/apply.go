package reputation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// ApplyChange appends a ledger event and adjusts the user's cached reputation in
// one transaction. For events tied to a translation, a repeated
// (user, translation, reason) is a no-op and applied is false.
func (s *Service) ApplyChange(ctx context.Context, userID uuid.UUID, delta int, reason string, translationID *uuid.UUID) (bool, error) {
	if reason == "" {
		return false, domain.NewValidationError("reason", "required")
	}

	applied := false
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		applied = false
		inserted, err := s.events.InsertEvent(ctx, domain.ReputationEvent{
			UserID:        userID,
			Delta:         delta,
			Reason:        reason,
			TranslationID: translationID,
		})
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		if _, err := s.users.AddReputation(ctx, userID, delta); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("reputation.ApplyChange: %w", err)
	}

	if applied {
		if s.rec != nil {
			s.rec.ReputationEvent(reason, delta)
		}
		attrs := []any{
			slog.String("user_id", userID.String()),
			slog.Int("delta", delta),
			slog.String("reason", reason),
		}
		if translationID != nil {
			attrs = append(attrs, slog.String("translation_id", translationID.String()))
		}
		s.log.InfoContext(ctx, "reputation changed", attrs...)
	}
	return applied, nil
}

// applyRule applies the current value of a lifecycle rule. A rule set to zero
// records nothing.
func (s *Service) applyRule(ctx context.Context, userID uuid.UUID, rule string, translationID uuid.UUID) (bool, error) {
	rules, err := s.Rules(ctx)
	if err != nil {
		return false, err
	}
	delta := rules.Get(rule)
	if delta == 0 {
		return false, nil
	}
	return s.ApplyChange(ctx, userID, delta, rule, &translationID)
}

// ApplyCreationReward rewards the author of a new translation.
func (s *Service) ApplyCreationReward(ctx context.Context, authorID, translationID uuid.UUID) (bool, error) {
	return s.applyRule(ctx, authorID, domain.ReasonCreation, translationID)
}

// ApplyApprovalReward rewards the author of an approved translation.
func (s *Service) ApplyApprovalReward(ctx context.Context, authorID, translationID uuid.UUID) (bool, error) {
	return s.applyRule(ctx, authorID, domain.ReasonApproval, translationID)
}

// ApplyMergeReward rewards the author of a merged translation.
func (s *Service) ApplyMergeReward(ctx context.Context, authorID, translationID uuid.UUID) (bool, error) {
	return s.applyRule(ctx, authorID, domain.ReasonMerge, translationID)
}

// ApplyRejectionPenalty penalises the author of a rejected translation.
func (s *Service) ApplyRejectionPenalty(ctx context.Context, authorID, translationID uuid.UUID) (bool, error) {
	return s.applyRule(ctx, authorID, domain.ReasonRejection, translationID)
}

// ApplyFalseRejectionPenalty penalises a reviewer who rejected a translation
// that was later merged.
func (s *Service) ApplyFalseRejectionPenalty(ctx context.Context, reviewerID, translationID uuid.UUID) (bool, error) {
	return s.applyRule(ctx, reviewerID, domain.ReasonFalseRejection, translationID)
}
