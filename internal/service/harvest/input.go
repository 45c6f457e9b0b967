package harvest

import (
	"strings"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const maxSourceNameLength = 200

// CreateSourceInput describes a new vocabulary source.
type CreateSourceInput struct {
	Name          string            `json:"name"`
	Kind          domain.SourceKind `json:"kind"`
	Endpoint      string            `json:"endpoint"`
	CollectionURI string            `json:"collection_uri"`
}

func (i CreateSourceInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len([]rune(name)) > maxSourceNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Kind != domain.SourceKindSPARQL {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "only sparql sources can be harvested"})
	}
	if !ValidCollectionURI(i.Endpoint) {
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: "must be an http(s) URL"})
	}
	if !ValidCollectionURI(i.CollectionURI) {
		errs = append(errs, domain.FieldError{Field: "collection_uri", Message: "must be an http(s) URI"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
