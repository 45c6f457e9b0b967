package auth

import (
	"strings"

	"github.com/heartmarshall/termtrans-backend/internal/auth"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const maxNameLength = 200

// LoginInput is an identity asserted by the client.
type LoginInput struct {
	Username string `json:"username"`
	ORCID    string `json:"orcid"`
	Name     string `json:"name"`
}

// Identity returns the trimmed identity.
func (i LoginInput) Identity() domain.Identity {
	return domain.Identity{
		Username: strings.TrimSpace(i.Username),
		ORCID:    strings.ToUpper(strings.TrimSpace(i.ORCID)),
		Name:     strings.TrimSpace(i.Name),
	}
}

func (i LoginInput) Validate() error {
	id := i.Identity()
	var errs []domain.FieldError

	if id.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !auth.ValidUsername(id.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 2-50 letters, digits, dots, dashes or underscores"})
	}
	if id.ORCID != "" && !auth.ValidORCID(id.ORCID) {
		errs = append(errs, domain.FieldError{Field: "orcid", Message: "invalid ORCID iD"})
	}
	if len([]rune(id.Name)) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
