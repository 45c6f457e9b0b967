// Package auth logs users in, issues session tokens and resolves them back
// to users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/auth"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// ErrDevLoginDisabled is returned by Login when identity login is turned off.
var ErrDevLoginDisabled = fmt.Errorf("identity login is disabled: %w", domain.ErrForbidden)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByORCID(ctx context.Context, orcid string) (*domain.User, error)
	Create(ctx context.Context, username string, orcid *string, name string) (*domain.User, error)
}

type sessionRepo interface {
	Create(ctx context.Context, userID uuid.UUID, expiresAt time.Time) (*domain.Session, error)
	GetActive(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

type tokenManager interface {
	Issue(userID, sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(token string) (auth.Claims, error)
}

// Config controls login behaviour.
type Config struct {
	DevLogin   bool
	SessionTTL time.Duration
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	tokens   tokenManager
	cfg      Config
	now      func() time.Time
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, sessions sessionRepo, tokens tokenManager, cfg Config) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Result is a successful login.
type Result struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// EnsureUser returns the user for the identity, creating it on first login.
// The ORCID wins over the username when both are known.
func (s *Service) EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.ORCID != "" {
		u, err := s.users.GetByORCID(ctx, id.ORCID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.EnsureUser: %w", err)
		}
	} else {
		u, err := s.users.GetByUsername(ctx, id.Username)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.EnsureUser: %w", err)
		}
	}

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
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.EnsureUser: username %q is taken: %w", id.Username, domain.ErrConflict)
		}
		return nil, fmt.Errorf("auth.EnsureUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("username", u.Username),
		slog.Bool("admin", u.IsAdmin),
	)
	return u, nil
}
