package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/introbot/chatbot-server/internal/model"
	"github.com/introbot/chatbot-server/internal/wizard"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError converts service errors into HTTP responses. Anything
// unrecognized becomes a generic 500 with no detail leakage.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, model.ErrComposing):
		writeError(w, http.StatusConflict, "Bot reply pending")
	case errors.Is(err, model.ErrSessionComplete):
		writeError(w, http.StatusConflict, "Conversation already complete")
	case errors.Is(err, wizard.ErrTooManySessions):
		writeError(w, http.StatusServiceUnavailable, "Too many sessions")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
