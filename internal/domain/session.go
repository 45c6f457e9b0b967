package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a login session. The session token carries its ID; logging out
// revokes the row so the token stops working before it expires.
type Session struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// IsActive reports whether the session is usable at now.
func (s Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
