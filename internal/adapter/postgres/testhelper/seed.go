package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a plain contributor.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, false, false)
}

// SeedAdmin creates an admin (superadmin when super is true).
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, super bool) domain.User {
	t.Helper()
	return seedUser(t, pool, true, super)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, admin, super bool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	var u domain.User
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, name, is_admin, is_superadmin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, name, reputation, is_admin, is_superadmin, is_banned, created_at, updated_at`,
		"user-"+suffix, "Test User "+suffix, admin, super,
	).Scan(&u.ID, &u.Username, &u.Name, &u.Reputation, &u.IsAdmin, &u.IsSuperadmin, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedSource creates a SPARQL source.
func SeedSource(t *testing.T, pool *pgxpool.Pool) domain.Source {
	t.Helper()

	s := domain.Source{
		Name:          "Source " + uniqueSuffix(),
		Kind:          domain.SourceKindSPARQL,
		Endpoint:      "http://vocab.example.org/sparql/",
		CollectionURI: "http://vocab.example.org/collection/" + uniqueSuffix() + "/",
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO sources (name, kind, endpoint, collection_uri) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.Name, s.Kind, s.Endpoint, s.CollectionURI,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSource: %v", err)
	}
	return s
}

// SeedTermField creates a term with one prefLabel field and returns the field.
func SeedTermField(t *testing.T, pool *pgxpool.Pool, sourceID *uuid.UUID) domain.TermField {
	t.Helper()
	ctx := context.Background()

	var termID uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO terms (uri, source_id) VALUES ($1, $2) RETURNING id`,
		"http://vocab.example.org/term/"+uniqueSuffix(), sourceID,
	).Scan(&termID)
	if err != nil {
		t.Fatalf("testhelper: SeedTermField insert term: %v", err)
	}

	f := domain.TermField{
		TermID:        termID,
		FieldURI:      "http://www.w3.org/2004/02/skos/core#prefLabel",
		FieldTerm:     "skos:prefLabel",
		OriginalValue: "sea surface temperature " + uniqueSuffix(),
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO term_fields (term_id, field_uri, field_term, original_value) VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		f.TermID, f.FieldURI, f.FieldTerm, f.OriginalValue,
	).Scan(&f.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTermField insert field: %v", err)
	}
	return f
}

// SeedTranslation creates a translation in the given status.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, fieldID, authorID uuid.UUID, language string, status domain.TranslationStatus) domain.Translation {
	t.Helper()

	tr := domain.Translation{
		TermFieldID: fieldID,
		Language:    language,
		Value:       "vertaling " + uniqueSuffix(),
		Status:      status,
		CreatedByID: authorID,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO translations (term_field_id, language, value, status, created_by_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, modified_at`,
		tr.TermFieldID, tr.Language, tr.Value, tr.Status, tr.CreatedByID,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}
	return tr
}

// SeedAppeal opens an appeal on a translation.
func SeedAppeal(t *testing.T, pool *pgxpool.Pool, translationID, openedBy uuid.UUID) domain.Appeal {
	t.Helper()

	a := domain.Appeal{TranslationID: translationID, OpenedByID: openedBy, Status: domain.AppealStatusOpen}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO appeals (translation_id, opened_by_id) VALUES ($1, $2)
		 RETURNING id, resolution, created_at, updated_at`,
		translationID, openedBy,
	).Scan(&a.ID, &a.Resolution, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAppeal: %v", err)
	}
	return a
}
