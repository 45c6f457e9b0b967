package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appeal limits.
const (
	MaxAppealMessageLength = 5000
	MaxReportReasonLength  = 1000
	MaxResolutionLength    = 5000
)

// Appeal disputes a translation's status or content. At most one appeal per
// translation may be open at a time.
type Appeal struct {
	ID            uuid.UUID    `db:"id"             json:"id"`
	TranslationID uuid.UUID    `db:"translation_id" json:"translation_id"`
	OpenedByID    uuid.UUID    `db:"opened_by_id"   json:"opened_by_id"`
	Resolution    string       `db:"resolution"     json:"resolution"`
	Status        AppealStatus `db:"status"         json:"status"`
	CreatedAt     time.Time    `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"     json:"updated_at"`
	ClosedAt      *time.Time   `db:"closed_at"      json:"closed_at,omitempty"`
}

// AppealMessage is one entry in an appeal thread.
type AppealMessage struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	AppealID  uuid.UUID `db:"appeal_id"  json:"appeal_id"`
	AuthorID  uuid.UUID `db:"author_id"  json:"author_id"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MessageReport flags an appeal message for moderation.
// One report exists per (MessageID, ReporterID).
type MessageReport struct {
	ID           uuid.UUID    `db:"id"             json:"id"`
	MessageID    uuid.UUID    `db:"message_id"     json:"message_id"`
	ReporterID   uuid.UUID    `db:"reporter_id"    json:"reporter_id"`
	Reason       string       `db:"reason"         json:"reason"`
	Status       ReportStatus `db:"status"         json:"status"`
	ReviewedByID *uuid.UUID   `db:"reviewed_by_id" json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time   `db:"reviewed_at"    json:"reviewed_at,omitempty"`
	Notes        *string      `db:"notes"          json:"notes,omitempty"`
	CreatedAt    time.Time    `db:"created_at"     json:"created_at"`
}
