// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	adminKey     struct{}
	requestIDKey struct{}
	requestKey   struct{}
)

// WithUserID stores the authenticated user and records it on the request
// Info, if one is attached.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if info := InfoFromCtx(ctx); info != nil {
		info.UserID = id
	}
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. A missing value or uuid.Nil
// means an anonymous caller.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithAdmin marks the caller as an administrator.
func WithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// IsAdminCtx reports whether the caller is an administrator.
func IsAdminCtx(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey{}).(bool)
	return admin
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Info is a mutable per-request record. Outer layers such as the access
// logger attach it; inner layers fill it in as they learn who the caller is.
// It must not be shared across goroutines without synchronisation.
type Info struct {
	UserID uuid.UUID
}

// WithInfo attaches a fresh Info to ctx.
func WithInfo(ctx context.Context) (context.Context, *Info) {
	info := &Info{}
	return context.WithValue(ctx, requestKey{}, info), info
}

// InfoFromCtx returns the attached Info or nil.
func InfoFromCtx(ctx context.Context) *Info {
	info, _ := ctx.Value(requestKey{}).(*Info)
	return info
}
