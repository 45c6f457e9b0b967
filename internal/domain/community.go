package domain

import (
	"time"

	"github.com/google/uuid"
)

// Community groups contributors. Language communities are system-managed.
type Community struct {
	ID           uuid.UUID     `db:"id"            json:"id"`
	Name         string        `db:"name"          json:"name"`
	Description  string        `db:"description"   json:"description"`
	Type         CommunityType `db:"type"          json:"type"`
	LanguageCode *string       `db:"language_code" json:"language_code,omitempty"`
	CreatedByID  *uuid.UUID    `db:"created_by_id" json:"created_by_id,omitempty"`
	MemberCount  int           `db:"member_count"  json:"member_count"`
	CreatedAt    time.Time     `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"    json:"updated_at"`
}

// IsSystemManaged reports whether users may not edit, delete or leave the community.
func (c *Community) IsSystemManaged() bool {
	return c.Type == CommunityTypeLanguage
}

// CommunityMember is a user's membership in a community.
type CommunityMember struct {
	CommunityID uuid.UUID     `db:"community_id" json:"community_id"`
	UserID      uuid.UUID     `db:"user_id"      json:"user_id"`
	Username    string        `db:"username"     json:"username"`
	Role        CommunityRole `db:"role"         json:"role"`
	JoinedAt    time.Time     `db:"joined_at"    json:"joined_at"`
}

// CommunityGoal is a translation target set for a community.
type CommunityGoal struct {
	ID          uuid.UUID  `db:"id"            json:"id"`
	CommunityID uuid.UUID  `db:"community_id"  json:"community_id"`
	Title       string     `db:"title"         json:"title"`
	Description string     `db:"description"   json:"description"`
	Language    string     `db:"language"      json:"language"`
	TargetCount int        `db:"target_count"  json:"target_count"`
	Progress    int        `db:"progress"      json:"progress"`
	DueAt       *time.Time `db:"due_at"        json:"due_at,omitempty"`
	CreatedByID uuid.UUID  `db:"created_by_id" json:"created_by_id"`
	CreatedAt   time.Time  `db:"created_at"    json:"created_at"`
}
