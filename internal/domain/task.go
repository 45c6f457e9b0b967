package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Task tracks a long-running async operation polled by clients.
type Task struct {
	ID           uuid.UUID       `db:"id"            json:"id"`
	Type         TaskType        `db:"type"          json:"type"`
	Status       TaskStatus      `db:"status"        json:"status"`
	SourceID     *uuid.UUID      `db:"source_id"     json:"source_id,omitempty"`
	CreatedByID  *uuid.UUID      `db:"created_by_id" json:"created_by_id,omitempty"`
	Result       json.RawMessage `db:"result"        json:"result,omitempty"`
	ErrorMessage *string         `db:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time       `db:"created_at"    json:"created_at"`
	StartedAt    *time.Time      `db:"started_at"    json:"started_at,omitempty"`
	CompletedAt  *time.Time      `db:"completed_at"  json:"completed_at,omitempty"`
}

// TaskStats holds task counts by status.
type TaskStats struct {
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}
