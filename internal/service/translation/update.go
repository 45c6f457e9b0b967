package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Update changes a translation's value. Only the author or an admin may edit,
// and only while the status is editable. Editing a rejected translation
// resubmits it for review.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Translation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tr, err := s.translations.GetByID(ctx, input.TranslationID)
	if err != nil {
		return nil, fmt.Errorf("translation.Update: %w", err)
	}
	if tr.CreatedByID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if !tr.Status.IsEditable() {
		return nil, fmt.Errorf("translation.Update: %w", domain.NewStatusError("translation", tr.Status, domain.TranslationStatusDraft, domain.TranslationStatusReview, domain.TranslationStatusRejected))
	}

	value := strings.TrimSpace(input.Value)
	if value == tr.Value {
		return tr, nil
	}

	updated, err := s.translations.UpdateValue(ctx, tr.ID, value, tr.Status, userID)
	if err != nil {
		return nil, fmt.Errorf("translation.Update: %w", err)
	}
	s.logActivity(ctx, domain.Activity{
		UserID:        userID,
		Action:        domain.ActivityTranslationUpdated,
		TranslationID: &tr.ID,
		Extra:         map[string]any{"old_value": tr.Value, "new_value": value},
	})

	if updated.Status == domain.TranslationStatusRejected {
		return s.transition(ctx, updated, domain.TranslationStatusReview, userID)
	}
	return updated, nil
}

// Submit sends a draft to review. Author only.
func (s *Service) Submit(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tr, err := s.translations.GetByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("translation.Submit: %w", err)
	}
	if tr.CreatedByID != userID {
		return nil, domain.ErrForbidden
	}
	if tr.Status != domain.TranslationStatusDraft {
		return nil, fmt.Errorf("translation.Submit: %w", domain.NewStatusError("translation", tr.Status, domain.TranslationStatusDraft))
	}

	return s.transition(ctx, tr, domain.TranslationStatusReview, userID)
}
