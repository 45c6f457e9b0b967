package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope. Middleware cannot reach the
// REST handler helpers, so it keeps its own copy.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
