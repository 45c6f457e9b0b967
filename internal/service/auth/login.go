package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/termtrans-backend/internal/auth"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Login signs a user in with an asserted identity and opens a session.
// Only available when dev login is enabled.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	if !s.cfg.DevLogin {
		return nil, ErrDevLoginDisabled
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.EnsureUser(ctx, input.Identity())
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, fmt.Errorf("auth.Login: user is banned: %w", domain.ErrForbidden)
	}

	expires := s.now().Add(s.cfg.SessionTTL)
	sess, err := s.sessions.Create(ctx, user.ID, expires)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: create session: %w", err)
	}
	token, err := s.tokens.Issue(user.ID, sess.ID, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("session_id", sess.ID.String()),
	)
	return &Result{Token: token, ExpiresAt: sess.ExpiresAt, User: user}, nil
}

// Authenticate resolves a session token to its user. Unusable tokens and
// sessions yield domain.ErrUnauthorized; banned users domain.ErrForbidden.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("auth.Authenticate: %w: %w", domain.ErrUnauthorized, err)
	}

	sess, err := s.sessions.GetActive(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Authenticate: session ended: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if sess.UserID != claims.UserID {
		return nil, fmt.Errorf("auth.Authenticate: session user mismatch: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Authenticate: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if user.IsBanned {
		return nil, fmt.Errorf("auth.Authenticate: user is banned: %w", domain.ErrForbidden)
	}
	return user, nil
}

// Logout revokes the token's session. Tokens that no longer parse are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}
	if err := s.sessions.Revoke(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", claims.UserID.String()),
		slog.String("session_id", claims.SessionID.String()),
	)
	return nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// CreateUser registers a user without logging in. Used by the CLI.
func (s *Service) CreateUser(ctx context.Context, input LoginInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := input.Identity()

	var orcid *string
	if id.ORCID != "" {
		orcid = &id.ORCID
	}
	name := id.Name
	if name == "" {
		name = id.Username
	}
	u, err := s.users.Create(ctx, id.Username, orcid, name)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser: %w", err)
	}
	return u, nil
}
