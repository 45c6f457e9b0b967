package appeal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Create opens an appeal against a translation. Only one appeal per
// translation may be open at a time.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Appeal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.translations.GetByID(ctx, input.TranslationID); err != nil {
		return nil, fmt.Errorf("appeal.Create: %w", err)
	}

	open, err := s.appeals.List(ctx, domain.AppealFilter{
		TranslationID: &input.TranslationID,
		Status:        domain.AppealStatusOpen,
		Limit:         1,
	})
	if err != nil {
		return nil, fmt.Errorf("appeal.Create: %w", err)
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("appeal.Create: translation already has an open appeal: %w", domain.ErrConflict)
	}

	a, err := s.appeals.Create(ctx, input.TranslationID, userID, strings.TrimSpace(input.Resolution))
	if err != nil {
		return nil, fmt.Errorf("appeal.Create: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        userID,
		Action:        domain.ActivityAppealCreated,
		TranslationID: &a.TranslationID,
		Extra:         map[string]any{"appeal_id": a.ID.String()},
	})
	s.log.InfoContext(ctx, "appeal opened",
		slog.String("appeal_id", a.ID.String()),
		slog.String("translation_id", a.TranslationID.String()),
		slog.String("user_id", userID.String()),
	)
	return a, nil
}

// Update changes an open appeal's status or resolution. Owner or admin only.
// Closed and resolved appeals cannot be changed.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Appeal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.appeals.GetByID(ctx, input.AppealID)
	if err != nil {
		return nil, fmt.Errorf("appeal.Update: %w", err)
	}
	if a.OpenedByID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if a.Status != domain.AppealStatusOpen {
		return nil, fmt.Errorf("appeal.Update: %w", domain.NewStatusError("appeal", a.Status, domain.AppealStatusOpen))
	}

	status := a.Status
	if input.Status != nil {
		status = *input.Status
	}
	var resolution *string
	if input.Resolution != nil {
		r := strings.TrimSpace(*input.Resolution)
		resolution = &r
	}

	updated, err := s.appeals.Update(ctx, a.ID, status, resolution)
	if err != nil {
		return nil, fmt.Errorf("appeal.Update: %w", err)
	}

	s.logActivity(ctx, domain.Activity{
		UserID:        userID,
		Action:        domain.ActivityAppealUpdated,
		TranslationID: &a.TranslationID,
		Extra: map[string]any{
			"appeal_id":  a.ID.String(),
			"old_status": a.Status.String(),
			"new_status": updated.Status.String(),
		},
	})
	return updated, nil
}

// Get returns an appeal by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Appeal, error) {
	a, err := s.appeals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appeal.Get: %w", err)
	}
	return a, nil
}

// List returns appeals, optionally narrowed to a translation or status.
func (s *Service) List(ctx context.Context, f domain.AppealFilter) ([]domain.Appeal, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}
	f.Limit = clampLimit(f.Limit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, err := s.appeals.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("appeal.List: %w", err)
	}
	return items, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}
