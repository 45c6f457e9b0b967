package appeal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// CreateInput holds the parameters for opening an appeal.
type CreateInput struct {
	TranslationID uuid.UUID
	Resolution    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TranslationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "translation_id", Message: "required"})
	}
	if utf8.RuneCountInString(i.Resolution) > domain.MaxResolutionLength {
		errs = append(errs, domain.FieldError{Field: "resolution", Message: fmt.Sprintf("too long (max %d)", domain.MaxResolutionLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for changing an appeal. Nil fields are left unchanged.
type UpdateInput struct {
	AppealID   uuid.UUID
	Status     *domain.AppealStatus
	Resolution *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.AppealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "appeal_id", Message: "required"})
	}
	if i.Status == nil && i.Resolution == nil {
		errs = append(errs, domain.FieldError{Field: "status", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Resolution != nil && utf8.RuneCountInString(*i.Resolution) > domain.MaxResolutionLength {
		errs = append(errs, domain.FieldError{Field: "resolution", Message: fmt.Sprintf("too long (max %d)", domain.MaxResolutionLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PostMessageInput holds a new thread message.
type PostMessageInput struct {
	AppealID uuid.UUID
	Message  string
}

// Validate checks all fields and collects all errors.
func (i PostMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.AppealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "appeal_id", Message: "required"})
	}
	switch {
	case strings.TrimSpace(i.Message) == "":
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	case utf8.RuneCountInString(i.Message) > domain.MaxAppealMessageLength:
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("too long (max %d)", domain.MaxAppealMessageLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReportInput holds a report against a thread message.
type ReportInput struct {
	MessageID uuid.UUID
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i ReportInput) Validate() error {
	var errs []domain.FieldError

	if i.MessageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	switch {
	case reason == "":
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	case utf8.RuneCountInString(reason) > domain.MaxReportReasonLength:
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("too long (max %d)", domain.MaxReportReasonLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ResolveReportInput holds an administrator's decision on a report.
type ResolveReportInput struct {
	ReportID uuid.UUID
	Status   domain.ReportStatus
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i ResolveReportInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if !i.Status.IsValid() || i.Status == domain.ReportStatusPending {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be reviewed, dismissed or action_taken"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > domain.MaxResolutionLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
