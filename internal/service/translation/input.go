package translation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// CreateInput holds the parameters for proposing a translation.
type CreateInput struct {
	TermFieldID uuid.UUID
	Language    string
	Value       string
	Submit      bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TermFieldID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_field_id", Message: "required"})
	}
	if !domain.IsValidLanguageCode(i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language code"})
	}
	errs = append(errs, validateValue(i.Value)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing a translation value.
type UpdateInput struct {
	TranslationID uuid.UUID
	Value         string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.TranslationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "translation_id", Message: "required"})
	}
	errs = append(errs, validateValue(i.Value)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput holds a reviewer's decision.
type ReviewInput struct {
	TranslationID uuid.UUID
	Approve       bool
}

func validateValue(v string) []domain.FieldError {
	trimmed := strings.TrimSpace(v)
	switch {
	case trimmed == "":
		return []domain.FieldError{{Field: "value", Message: "required"}}
	case utf8.RuneCountInString(trimmed) > domain.MaxTranslationLength:
		return []domain.FieldError{{Field: "value", Message: "too long (max 10000)"}}
	}
	return nil
}
