// Package dataloader provides per-request DataLoaders that batch the user
// lookups REST handlers make when rendering authors of appeal threads,
// reports and translations.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders must be called per request: loaders cache results for their lifetime.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

// Middleware instantiates Loaders for every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newUsersBatchFn returns nil data for IDs with no user row.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		results := make([]*dataloader.Result[*domain.User], len(keys))

		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// Author is the public projection of a user shown next to content.
type Author struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Reputation int       `json:"reputation"`
}

// LoadAuthors resolves ids to authors in one batch. Unknown IDs are omitted.
func LoadAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Author, error) {
	l := FromContext(ctx)
	if l == nil {
		return map[uuid.UUID]Author{}, nil
	}

	users, errs := l.UserByID.LoadMany(ctx, ids)()
	out := make(map[uuid.UUID]Author, len(ids))
	for i, u := range users {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if u == nil {
			continue
		}
		out[u.ID] = Author{ID: u.ID, Username: u.Username, Reputation: u.Reputation}
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil outside the middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
