package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaxTranslationLength bounds a translation value in runes.
const MaxTranslationLength = 10000

var languageCodeRe = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)

// IsValidLanguageCode reports whether code looks like a BCP 47 tag ("en", "nl", "pt-BR").
func IsValidLanguageCode(code string) bool {
	return len(code) <= 35 && languageCodeRe.MatchString(code)
}

// Source is an external vocabulary terms are harvested from.
type Source struct {
	ID            uuid.UUID  `db:"id"             json:"id"`
	Name          string     `db:"name"           json:"name"`
	Kind          SourceKind `db:"kind"           json:"kind"`
	Endpoint      string     `db:"endpoint"       json:"endpoint"`
	CollectionURI string     `db:"collection_uri" json:"collection_uri"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
	LastSyncedAt  *time.Time `db:"last_synced_at" json:"last_synced_at,omitempty"`
}

// Term is a SKOS concept identified by its URI.
type Term struct {
	ID        uuid.UUID  `db:"id"         json:"id"`
	URI       string     `db:"uri"        json:"uri"`
	SourceID  *uuid.UUID `db:"source_id"  json:"source_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// TermField is one labelled attribute of a term (prefLabel, definition, ...).
type TermField struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	TermID        uuid.UUID `db:"term_id"        json:"term_id"`
	FieldURI      string    `db:"field_uri"      json:"field_uri"`
	FieldTerm     string    `db:"field_term"     json:"field_term"`
	OriginalValue string    `db:"original_value" json:"original_value"`
}

// Translation is a language-specific value of a term field.
// At most one translation exists per (TermFieldID, Language).
type Translation struct {
	ID           uuid.UUID         `db:"id"             json:"id"`
	TermFieldID  uuid.UUID         `db:"term_field_id"  json:"term_field_id"`
	Language     string            `db:"language"       json:"language"`
	Value        string            `db:"value"          json:"value"`
	Status       TranslationStatus `db:"status"         json:"status"`
	CreatedByID  uuid.UUID         `db:"created_by_id"  json:"created_by_id"`
	ModifiedByID *uuid.UUID        `db:"modified_by_id" json:"modified_by_id,omitempty"`
	ReviewedByID *uuid.UUID        `db:"reviewed_by_id" json:"reviewed_by_id,omitempty"`
	CreatedAt    time.Time         `db:"created_at"     json:"created_at"`
	ModifiedAt   time.Time         `db:"modified_at"    json:"modified_at"`
	ReviewedAt   *time.Time        `db:"reviewed_at"    json:"reviewed_at,omitempty"`
}

// LDESTranslation is a translation joined with its term and field, as published in LDES fragments.
type LDESTranslation struct {
	TermURI    string    `db:"term_uri"`
	FieldURI   string    `db:"field_uri"`
	FieldTerm  string    `db:"field_term"`
	Language   string    `db:"language"`
	Value      string    `db:"value"`
	ModifiedAt time.Time `db:"modified_at"`
}
