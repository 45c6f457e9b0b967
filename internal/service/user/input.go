package user

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const maxBanReasonLength = 1000

// BanInput holds parameters for banning a user.
type BanInput struct {
	Reason string
}

// Validate validates the ban input.
func (i BanInput) Validate() error {
	if utf8.RuneCountInString(i.Reason) > maxBanReasonLength {
		return domain.NewValidationError("reason", "too long")
	}
	return nil
}

// PenaltyInput holds parameters for penalising a user. Exactly one of Delta
// (a positive amount to subtract) or Ban must be set.
type PenaltyInput struct {
	Delta  int
	Ban    bool
	Reason string
}

// Validate validates the penalty input.
func (i PenaltyInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Delta != 0 && i.Ban:
		errs = append(errs, domain.FieldError{Field: "penalty", Message: "specify either delta or ban, not both"})
	case i.Delta == 0 && !i.Ban:
		errs = append(errs, domain.FieldError{Field: "penalty", Message: "delta or ban is required"})
	case i.Delta < 0:
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be positive"})
	case i.Delta > math.MaxInt32:
		errs = append(errs, domain.FieldError{Field: "delta", Message: "out of range"})
	}

	if i.Ban && strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required when banning"})
	}
	if utf8.RuneCountInString(i.Reason) > maxBanReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
