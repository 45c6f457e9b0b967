package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	HTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics records every request under its matched route pattern, so path
// parameters do not explode label cardinality.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.HTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
