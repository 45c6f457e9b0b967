package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Ban blocks a user. Superadmins cannot be banned and admins cannot ban themselves.
func (s *Service) Ban(ctx context.Context, targetID uuid.UUID, input BanInput) (*domain.User, error) {
	adminID, target, err := s.prepareAction(ctx, targetID, "ban")
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.ban(ctx, adminID, target, strings.TrimSpace(input.Reason), domain.ActivityUserBanned)
}

// Unban lifts a ban.
func (s *Service) Unban(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.SetBanned(ctx, targetID, false, nil)
	if err != nil {
		return nil, fmt.Errorf("user.Unban: %w", err)
	}
	s.audit(ctx, adminID, targetID, domain.ActivityUserUnbanned, nil)
	return user, nil
}

// Promote grants admin rights.
func (s *Service) Promote(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.SetAdmin(ctx, targetID, true)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}
	s.audit(ctx, adminID, targetID, domain.ActivityUserPromoted, nil)
	return user, nil
}

// Demote revokes admin rights. Superadmins cannot be demoted and admins
// cannot demote themselves.
func (s *Service) Demote(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	adminID, _, err := s.prepareAction(ctx, targetID, "demote")
	if err != nil {
		return nil, err
	}

	user, err := s.users.SetAdmin(ctx, targetID, false)
	if err != nil {
		return nil, fmt.Errorf("user.Demote: %w", err)
	}
	s.audit(ctx, adminID, targetID, domain.ActivityUserDemoted, nil)
	return user, nil
}

// Penalize either subtracts reputation or bans the user.
func (s *Service) Penalize(ctx context.Context, targetID uuid.UUID, input PenaltyInput) (*domain.User, error) {
	adminID, target, err := s.prepareAction(ctx, targetID, "penalize")
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	if input.Ban {
		return s.ban(ctx, adminID, target, reason, domain.ActivityUserPenalized)
	}

	if _, err := s.reputation.ApplyChange(ctx, targetID, -input.Delta, domain.ReasonAdminPenalty, nil); err != nil {
		return nil, fmt.Errorf("user.Penalize: %w", err)
	}
	s.audit(ctx, adminID, targetID, domain.ActivityUserPenalized, map[string]any{
		"delta":  -input.Delta,
		"reason": reason,
	})

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user.Penalize: %w", err)
	}
	return user, nil
}

// PromoteByUsername grants admin rights without a calling admin. Used by the
// operator CLI to bootstrap administrators. There is no acting admin, so the
// activity row names the promoted user as actor with source "cli".
func (s *Service) PromoteByUsername(ctx context.Context, username string) (*domain.User, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByUsername: %w", err)
	}
	user, err := s.users.SetAdmin(ctx, target.ID, true)
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByUsername: %w", err)
	}
	s.audit(ctx, target.ID, target.ID, domain.ActivityUserPromoted, map[string]any{
		"source":   "cli",
		"username": username,
	})
	return user, nil
}

func (s *Service) ban(ctx context.Context, adminID uuid.UUID, target *domain.User, reason string, action domain.ActivityAction) (*domain.User, error) {
	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	user, err := s.users.SetBanned(ctx, target.ID, true, reasonPtr)
	if err != nil {
		return nil, fmt.Errorf("user.ban: %w", err)
	}
	s.audit(ctx, adminID, target.ID, action, map[string]any{"ban": true, "reason": reason})
	return user, nil
}

// prepareAction loads the target of a restrictive action and enforces the
// superadmin and self-targeting rules.
func (s *Service) prepareAction(ctx context.Context, targetID uuid.UUID, verb string) (uuid.UUID, *domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if adminID == targetID {
		return uuid.Nil, nil, domain.NewValidationError("user_id", "cannot "+verb+" yourself")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("user.%s: %w", verb, err)
	}
	if target.IsSuperadmin {
		return uuid.Nil, nil, fmt.Errorf("user.%s: superadmin is immune: %w", verb, domain.ErrForbidden)
	}
	return adminID, target, nil
}

func (s *Service) audit(ctx context.Context, adminID, targetID uuid.UUID, action domain.ActivityAction, extra map[string]any) {
	if extra == nil {
		extra = make(map[string]any, 1)
	}
	extra["target_user_id"] = targetID.String()
	s.logActivity(ctx, domain.Activity{UserID: adminID, Action: action, Extra: extra})

	s.log.InfoContext(ctx, "admin action",
		slog.String("action", action.String()),
		slog.String("admin_id", adminID.String()),
		slog.String("target_user_id", targetID.String()),
	)
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
