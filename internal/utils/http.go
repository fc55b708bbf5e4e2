package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response body.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform failure envelope.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"success": false, "message": msg})
}
