package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Get returns a translation by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Translation, error) {
	tr, err := s.translations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("translation.Get: %w", err)
	}
	return tr, nil
}

// ListByTermField returns the translations of one term field, optionally narrowed by status.
func (s *Service) ListByTermField(ctx context.Context, termFieldID uuid.UUID, status domain.TranslationStatus, limit, offset int) ([]domain.Translation, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}
	return s.list(ctx, domain.TranslationFilter{
		TermFieldID: &termFieldID,
		Status:      status,
		Limit:       limit,
		Offset:      offset,
	})
}

// ListByUser returns translations created by a user.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Translation, error) {
	return s.list(ctx, domain.TranslationFilter{
		CreatedByID: &userID,
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *Service) list(ctx context.Context, f domain.TranslationFilter) ([]domain.Translation, error) {
	f.Limit = clampLimit(f.Limit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, err := s.translations.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("translation.List: %w", err)
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
