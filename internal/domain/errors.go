package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and transport.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrRateLimited   = errors.New("rate limited")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the first message recorded for field.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StatusError reports an operation refused because a translation or appeal
// is in the wrong lifecycle state. It matches ErrConflict under errors.Is.
type StatusError struct {
	Entity string
	Status string
	// Want lists the states the operation accepts; empty when the current
	// state is simply final.
	Want []string
}

func (e *StatusError) Error() string {
	if len(e.Want) == 0 {
		return fmt.Sprintf("%s is %s", e.Entity, e.Status)
	}
	return fmt.Sprintf("%s is %s, want %s", e.Entity, e.Status, strings.Join(e.Want, " or "))
}

func (e *StatusError) Unwrap() error { return ErrConflict }

// NewStatusError builds a StatusError from typed status values.
func NewStatusError[S ~string](entity string, status S, want ...S) *StatusError {
	e := &StatusError{Entity: entity, Status: string(status)}
	for _, w := range want {
		e.Want = append(e.Want, string(w))
	}
	return e
}
