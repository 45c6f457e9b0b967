package community

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 2000
	maxGoalTarget        = 100000
)

// CreateInput holds parameters for creating a user community.
type CreateInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateName(i.Name)...)
	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds parameters for editing a community. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "nothing to update"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GoalInput holds parameters for a community goal.
type GoalInput struct {
	CommunityID uuid.UUID
	Title       string
	Description string
	Language    string
	TargetCount int
	DueAt       *time.Time
}

// Validate checks all fields and collects all errors.
func (i GoalInput) Validate() error {
	var errs []domain.FieldError

	if i.CommunityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "community_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if !domain.IsValidLanguageCode(i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language code"})
	}
	if i.TargetCount < 1 || i.TargetCount > maxGoalTarget {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must be between 1 and 100000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > maxNameLength:
		return []domain.FieldError{{Field: "name", Message: "too long"}}
	}
	return nil
}
