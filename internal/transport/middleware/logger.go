package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/termtrans-backend/pkg/ctxutil"
)

// Logger writes one "http.request" record per request, including the user
// resolved by the inner Auth layer. Server errors log at error level and
// client errors at warn. Successful requests to quietPaths log at debug.
func Logger(logger *slog.Logger, quietPaths ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrapWriter(w)
			ctx, info := ctxutil.WithInfo(r.Context())

			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_ip", clientIP(r)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if info.UserID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", info.UserID.String()))
			}

			logger.LogAttrs(ctx, accessLevel(rw.status, slices.Contains(quietPaths, r.URL.Path)), "http.request", attrs...)
		})
	}
}

func accessLevel(status int, quiet bool) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case quiet:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
