package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only audit trail entry: who did what, with the affected IDs in Extra.
type Activity struct {
	ID            uuid.UUID      `db:"id"             json:"id"`
	UserID        uuid.UUID      `db:"user_id"        json:"user_id"`
	Action        ActivityAction `db:"action"         json:"action"`
	TranslationID *uuid.UUID     `db:"translation_id" json:"translation_id,omitempty"`
	Extra         map[string]any `db:"extra"          json:"extra,omitempty"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
}

// StatusChange is a recorded translation status change by an actor.
type StatusChange struct {
	ActorID   uuid.UUID         `db:"user_id"`
	OldStatus TranslationStatus `db:"old_status"`
	NewStatus TranslationStatus `db:"new_status"`
	CreatedAt time.Time         `db:"created_at"`
}

// Dashboard summarises platform state for administrators.
type Dashboard struct {
	Users              int                       `json:"users"`
	BannedUsers        int                       `json:"banned_users"`
	TranslationsByStat map[TranslationStatus]int `json:"translations_by_status"`
	OpenAppeals        int                       `json:"open_appeals"`
	PendingReports     int                       `json:"pending_reports"`
	Tasks              TaskStats                 `json:"tasks"`
}
