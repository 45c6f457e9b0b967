package reputation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// StatusChange describes a translation status change for reputation purposes.
type StatusChange struct {
	TranslationID uuid.UUID
	AuthorID      uuid.UUID
	ActorID       uuid.UUID
	From          domain.TranslationStatus
	To            domain.TranslationStatus
}

// ApplyForStatusChange applies the reputation effect of a status change to the
// author. A change into merged also penalises earlier rejecting reviewers.
func (s *Service) ApplyForStatusChange(ctx context.Context, c StatusChange) error {
	var errs []error

	var err error
	switch effect := domain.EffectFor(c.From, c.To); effect {
	case domain.EffectCreationReward:
		_, err = s.ApplyCreationReward(ctx, c.AuthorID, c.TranslationID)
	case domain.EffectApprovalReward:
		_, err = s.ApplyApprovalReward(ctx, c.AuthorID, c.TranslationID)
	case domain.EffectRejectionPenalty:
		_, err = s.ApplyRejectionPenalty(ctx, c.AuthorID, c.TranslationID)
	case domain.EffectMergeReward:
		_, err = s.ApplyMergeReward(ctx, c.AuthorID, c.TranslationID)
	case domain.EffectNone:
	}
	if err != nil {
		errs = append(errs, err)
	}

	if (domain.Transition{From: c.From, To: c.To}).SweepsFalseRejections() {
		if _, err := s.sweepFalseRejections(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("reputation.ApplyForStatusChange: %w", err)
	}
	return nil
}

// sweepFalseRejections penalises every reviewer who rejected the translation,
// excluding the merging actor and the author. Each reviewer is penalised at most
// once per translation.
func (s *Service) sweepFalseRejections(ctx context.Context, c StatusChange) (int, error) {
	rejections, err := s.activity.ListStatusChanges(ctx, c.TranslationID, domain.TranslationStatusRejected)
	if err != nil {
		return 0, err
	}

	seen := make(map[uuid.UUID]struct{}, len(rejections))
	penalised := 0
	var errs []error
	for _, r := range rejections {
		if r.ActorID == c.ActorID || r.ActorID == c.AuthorID {
			continue
		}
		if _, dup := seen[r.ActorID]; dup {
			continue
		}
		seen[r.ActorID] = struct{}{}

		applied, err := s.ApplyFalseRejectionPenalty(ctx, r.ActorID, c.TranslationID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if applied {
			penalised++
		}
	}

	if penalised > 0 {
		s.log.InfoContext(ctx, "false rejections penalised",
			slog.String("translation_id", c.TranslationID.String()),
			slog.Int("reviewers", penalised),
		)
	}
	return penalised, errors.Join(errs...)
}
