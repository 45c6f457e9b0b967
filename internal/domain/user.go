package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated contributor.
// Reputation is a cached sum of the user's reputation events.
type User struct {
	ID           uuid.UUID `db:"id"            json:"id"`
	Username     string    `db:"username"      json:"username"`
	ORCID        *string   `db:"orcid"         json:"orcid,omitempty"`
	Name         string    `db:"name"          json:"name"`
	Reputation   int       `db:"reputation"    json:"reputation"`
	IsAdmin      bool      `db:"is_admin"      json:"is_admin"`
	IsSuperadmin bool      `db:"is_superadmin" json:"is_superadmin"`
	IsBanned     bool      `db:"is_banned"     json:"is_banned"`
	BanReason    *string   `db:"ban_reason"    json:"ban_reason,omitempty"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

// Identity is a verified external login identity.
type Identity struct {
	ORCID    string
	Username string
	Name     string
}
