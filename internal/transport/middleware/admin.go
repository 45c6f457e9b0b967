package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for non-admins.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly is the HTTP form of RequireAdmin, mounted in front of /admin routes.
func AdminOnly() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch RequireAdmin(r.Context()) {
			case nil:
				next.ServeHTTP(w, r)
			case domain.ErrUnauthorized:
				writeError(w, http.StatusUnauthorized, "unauthorized")
			default:
				writeError(w, http.StatusForbidden, "admin access required")
			}
		})
	}
}
