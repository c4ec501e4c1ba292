package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/femwell/femwell-backend/internal/validation"
)

// APIError is the JSON body of every non-2xx response.
// swagger:model APIError
type APIError struct {
	// Human-readable message
	// example: Invalid user data
	Message string `json:"message"`

	// Per-field failures, present on validation errors only
	Errors []validation.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, fieldErrors ...validation.FieldError) {
	writeJSON(w, status, APIError{Message: message, Errors: fieldErrors})
}
