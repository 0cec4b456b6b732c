package httputil

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a simple {"error": message} response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ErrorBody is the structured error carried under the "error" key.
type ErrorBody struct {
	Code                 string `json:"code"`
	Message              string `json:"message"`
	RequiresVerification bool   `json:"requiresVerification,omitempty"`
}

// ErrorResponse is the envelope for structured errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteError writes {"error": {"code": ..., "message": ...}}.
func WriteError(w http.ResponseWriter, status int, body ErrorBody) {
	JSON(w, status, ErrorResponse{Error: body})
}
