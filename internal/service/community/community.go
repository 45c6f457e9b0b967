package community

import (
	"context"
	"errors"
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

// Create makes a user community with the caller as its creator.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Community, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Community
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.communities.Create(ctx, domain.Community{
			Name:        domain.NormalizeName(input.Name),
			Description: strings.TrimSpace(input.Description),
			Type:        domain.CommunityTypeUser,
			CreatedByID: &userID,
		})
		if err != nil {
			return err
		}
		if err := s.communities.AddMember(ctx, c.ID, userID, domain.CommunityRoleCreator); err != nil {
			return err
		}
		c.MemberCount = 1
		created = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("community.Create: %w", err)
	}

	s.logActivity(ctx, userID, domain.ActivityCommunityCreated, created.ID)
	s.log.InfoContext(ctx, "community created",
		slog.String("community_id", created.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return created, nil
}

// Get returns a community by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	c, err := s.communities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("community.Get: %w", err)
	}
	return c, nil
}

// List returns communities, optionally only one type.
func (s *Service) List(ctx context.Context, typ domain.CommunityType, limit, offset int) ([]domain.Community, error) {
	if typ != "" && !typ.IsValid() {
		return nil, domain.NewValidationError("type", "invalid community type")
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.communities.List(ctx, typ, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("community.List: %w", err)
	}
	return items, nil
}

// Update edits a user community. Creator or moderator only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Community, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := s.authorize(ctx, id, func(r domain.CommunityRole) bool { return r.CanManage() }); err != nil {
		return nil, err
	}

	var name, description *string
	if input.Name != nil {
		n := domain.NormalizeName(*input.Name)
		name = &n
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		description = &d
	}

	c, err := s.communities.Update(ctx, id, name, description)
	if err != nil {
		return nil, fmt.Errorf("community.Update: %w", err)
	}
	return c, nil
}

// Delete removes a user community. Creator or admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, _, err := s.authorize(ctx, id, func(r domain.CommunityRole) bool { return r == domain.CommunityRoleCreator })
	if err != nil {
		return err
	}
	if err := s.communities.Delete(ctx, id); err != nil {
		return fmt.Errorf("community.Delete: %w", err)
	}

	s.logActivity(ctx, userID, domain.ActivityCommunityDeleted, id)
	s.log.InfoContext(ctx, "community deleted",
		slog.String("community_id", id.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// authorize loads a user community and checks the caller's role with allow.
// Admins pass any role check. Language communities are never editable.
func (s *Service) authorize(ctx context.Context, id uuid.UUID, allow func(domain.CommunityRole) bool) (uuid.UUID, *domain.Community, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	c, err := s.communities.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("community: %w", err)
	}
	if c.IsSystemManaged() {
		return uuid.Nil, nil, fmt.Errorf("community: language communities are system-managed: %w", domain.ErrForbidden)
	}
	if ctxutil.IsAdminCtx(ctx) {
		return userID, c, nil
	}

	m, err := s.communities.GetMember(ctx, id, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, nil, domain.ErrForbidden
	}
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("community: %w", err)
	}
	if !allow(m.Role) {
		return uuid.Nil, nil, domain.ErrForbidden
	}
	return userID, c, nil
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.ActivityAction, communityID uuid.UUID) {
	err := s.activity.Log(ctx, domain.Activity{
		UserID: userID,
		Action: action,
		Extra:  map[string]any{"community_id": communityID.String()},
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity log failed",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
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
