package community

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Join adds the caller to a community as a member.
func (s *Service) Join(ctx context.Context, id uuid.UUID) (*domain.CommunityMember, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.communities.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("community.Join: %w", err)
	}
	if err := s.communities.AddMember(ctx, id, userID, domain.CommunityRoleMember); err != nil {
		return nil, fmt.Errorf("community.Join: %w", err)
	}
	m, err := s.communities.GetMember(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("community.Join: %w", err)
	}
	return m, nil
}

// Leave removes the caller from a user community. The creator cannot leave.
func (s *Service) Leave(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.communities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("community.Leave: %w", err)
	}
	if c.IsSystemManaged() {
		return fmt.Errorf("community.Leave: language communities cannot be left: %w", domain.ErrForbidden)
	}

	m, err := s.communities.GetMember(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("community.Leave: %w", err)
	}
	if m.Role == domain.CommunityRoleCreator {
		return fmt.Errorf("community.Leave: creator cannot leave: %w", domain.ErrForbidden)
	}

	if err := s.communities.RemoveMember(ctx, id, userID); err != nil {
		return fmt.Errorf("community.Leave: %w", err)
	}
	return nil
}

// SetMemberRole promotes a member to moderator or back. Creator only.
func (s *Service) SetMemberRole(ctx context.Context, id, memberID uuid.UUID, role domain.CommunityRole) (*domain.CommunityMember, error) {
	if role != domain.CommunityRoleModerator && role != domain.CommunityRoleMember {
		return nil, domain.NewValidationError("role", "must be moderator or member")
	}
	callerID, _, err := s.authorize(ctx, id, func(r domain.CommunityRole) bool { return r == domain.CommunityRoleCreator })
	if err != nil {
		return nil, err
	}
	if callerID == memberID {
		return nil, domain.NewValidationError("user_id", "cannot change your own role")
	}

	target, err := s.communities.GetMember(ctx, id, memberID)
	if err != nil {
		return nil, fmt.Errorf("community.SetMemberRole: %w", err)
	}
	if target.Role == domain.CommunityRoleCreator {
		return nil, fmt.Errorf("community.SetMemberRole: creator role is fixed: %w", domain.ErrForbidden)
	}

	if err := s.communities.SetRole(ctx, id, memberID, role); err != nil {
		return nil, fmt.Errorf("community.SetMemberRole: %w", err)
	}
	target.Role = role
	return target, nil
}

// ListMembers returns a page of a community's members.
func (s *Service) ListMembers(ctx context.Context, id uuid.UUID, limit, offset int) ([]domain.CommunityMember, error) {
	if _, err := s.communities.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("community.ListMembers: %w", err)
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.communities.ListMembers(ctx, id, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("community.ListMembers: %w", err)
	}
	return items, nil
}
