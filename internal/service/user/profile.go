package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// GetUser returns any user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return user, nil
}

// ListUsers returns a page of users and the total match count (admin only).
func (s *Service) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	f.Limit = clampLimit(f.Limit)
	if f.Offset < 0 {
		f.Offset = 0
	}

	users, total, err := s.users.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, total, nil
}

// ListActivity returns a user's audit trail, newest first. Users may read
// their own trail; admins may read anyone's.
func (s *Service) ListActivity(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.activity.ListByUser(ctx, userID, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListActivity: %w", err)
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
