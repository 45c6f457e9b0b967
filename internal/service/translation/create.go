package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/service/reputation"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Create proposes a translation for a term field. It starts in draft, or in
// review when input.Submit is set.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Translation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.fields.GetField(ctx, input.TermFieldID); err != nil {
		return nil, fmt.Errorf("translation.Create: %w", err)
	}

	status := domain.TranslationStatusDraft
	if input.Submit {
		status = domain.TranslationStatusReview
	}

	tr, err := s.translations.Create(ctx, domain.Translation{
		TermFieldID: input.TermFieldID,
		Language:    input.Language,
		Value:       strings.TrimSpace(input.Value),
		Status:      status,
		CreatedByID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("translation.Create: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        userID,
		Action:        domain.ActivityTranslationCreated,
		TranslationID: &tr.ID,
		Extra: map[string]any{
			"term_field_id": tr.TermFieldID.String(),
			"language":      tr.Language,
			"status":        tr.Status.String(),
		},
	})

	if err := s.reputation.ApplyForStatusChange(ctx, reputation.StatusChange{
		TranslationID: tr.ID,
		AuthorID:      userID,
		ActorID:       userID,
		From:          domain.TranslationStatusNone,
		To:            tr.Status,
	}); err != nil {
		s.log.ErrorContext(ctx, "creation reward failed",
			slog.String("translation_id", tr.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "translation created",
		slog.String("user_id", userID.String()),
		slog.String("translation_id", tr.ID.String()),
		slog.String("status", tr.Status.String()),
	)
	return tr, nil
}
