package response

import (
	"encoding/json"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned for payloads that fail
// request validation, one entry per offending field.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// errorResponse is the single-message error body every non-validation
// failure renders.
type errorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes the payload as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// RespondError writes the error message under an "error" key.
func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, errorResponse{Error: err.Error()})
}
