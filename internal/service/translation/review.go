package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/reputation"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Review approves or rejects a translation in review. The reviewer needs
// enough reputation and must not be the author.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*domain.Translation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tr, err := s.translations.GetByID(ctx, input.TranslationID)
	if err != nil {
		return nil, fmt.Errorf("translation.Review: %w", err)
	}
	if tr.CreatedByID == userID {
		return nil, fmt.Errorf("translation.Review: cannot review own translation: %w", domain.ErrForbidden)
	}

	reviewer, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("translation.Review: %w", err)
	}
	allowed, err := s.reputation.CanReview(ctx, reviewer)
	if err != nil {
		return nil, fmt.Errorf("translation.Review: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("translation.Review: not enough reputation: %w", domain.ErrForbidden)
	}

	if tr.Status != domain.TranslationStatusReview {
		return nil, fmt.Errorf("translation.Review: %w", domain.NewStatusError("translation", tr.Status, domain.TranslationStatusReview))
	}

	next := domain.TranslationStatusRejected
	if input.Approve {
		next = domain.TranslationStatusApproved
	}
	return s.transition(ctx, tr, next, userID)
}

// transition moves a translation to a new status, records the change and
// applies its reputation effect. The status row is written first; audit and
// reputation failures are logged and do not fail the call.
func (s *Service) transition(ctx context.Context, tr *domain.Translation, to domain.TranslationStatus, actorID uuid.UUID) (*domain.Translation, error) {
	from := tr.Status

	updated, err := s.translations.UpdateStatus(ctx, tr.ID, to, actorID)
	if err != nil {
		return nil, fmt.Errorf("translation.transition: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        actorID,
		Action:        domain.ActivityTranslationStatusChanged,
		TranslationID: &tr.ID,
		Extra: map[string]any{
			"old_status": from.String(),
			"new_status": to.String(),
		},
	})

	if err := s.reputation.ApplyForStatusChange(ctx, reputation.StatusChange{
		TranslationID: tr.ID,
		AuthorID:      tr.CreatedByID,
		ActorID:       actorID,
		From:          from,
		To:            to,
	}); err != nil {
		s.log.ErrorContext(ctx, "reputation side effect failed",
			slog.String("translation_id", tr.ID.String()),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "translation status changed",
		slog.String("translation_id", tr.ID.String()),
		slog.String("actor_id", actorID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	return updated, nil
}

func (s *Service) logActivity(ctx context.Context, a domain.Activity) {
	if err := s.activity.Log(ctx, a); err != nil {
		s.log.WarnContext(ctx, "activity log failed",
			slog.String("action", a.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}
