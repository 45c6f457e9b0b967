package domain

import "github.com/google/uuid"

// TranslationFilter narrows translation listings. Zero values match everything.
type TranslationFilter struct {
	TermFieldID *uuid.UUID
	CreatedByID *uuid.UUID
	Status      TranslationStatus
	Language    string
	Limit       int
	Offset      int
}

// UserFilter narrows user listings for administrators.
type UserFilter struct {
	Search string
	Banned *bool
	Admin  *bool
	Limit  int
	Offset int
}

// AppealFilter narrows appeal listings. Zero values match everything.
type AppealFilter struct {
	TranslationID *uuid.UUID
	OpenedByID    *uuid.UUID
	Status        AppealStatus
	Limit         int
	Offset        int
}
