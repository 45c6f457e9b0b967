package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// SetStatus forces a translation into any valid status. Admin only.
// Setting the current status again is allowed and has no reputation effect.
func (s *Service) SetStatus(ctx context.Context, translationID uuid.UUID, status domain.TranslationStatus) (*domain.Translation, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}

	tr, err := s.translations.GetByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("translation.SetStatus: %w", err)
	}
	return s.transition(ctx, tr, status, adminID)
}

// SetLanguage moves a translation to another language. Admin only.
// Colliding with an existing translation of the same field yields domain.ErrAlreadyExists.
func (s *Service) SetLanguage(ctx context.Context, translationID uuid.UUID, language string) (*domain.Translation, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidLanguageCode(language) {
		return nil, domain.NewValidationError("language", "invalid language code")
	}

	tr, err := s.translations.GetByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("translation.SetLanguage: %w", err)
	}
	if tr.Language == language {
		return tr, nil
	}

	updated, err := s.translations.UpdateLanguage(ctx, translationID, language, adminID)
	if err != nil {
		return nil, fmt.Errorf("translation.SetLanguage: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        adminID,
		Action:        domain.ActivityTranslationLanguage,
		TranslationID: &tr.ID,
		Extra: map[string]any{
			"old_language": tr.Language,
			"new_language": language,
		},
	})
	s.log.InfoContext(ctx, "translation language changed",
		slog.String("translation_id", tr.ID.String()),
		slog.String("from", tr.Language),
		slog.String("to", language),
	)
	return updated, nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
