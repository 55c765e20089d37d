package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError emits the shared error envelope. Kept local so the middleware
// package does not depend on the rest handlers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"status":  status,
			"message": message,
		},
	})
}
