package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
	"github.com/introbot/chatbot-server/internal/wizard"
)

// Chat exposes the wizard dialogue engine over HTTP. Bot replies land
// after the typing delay; clients poll the session for them.
type Chat struct {
	sessions *wizard.Manager
	logger   *logger.Logger
}

// NewChat creates a new Chat handler.
func NewChat(sessions *wizard.Manager, logger *logger.Logger) *Chat {
	return &Chat{
		sessions: sessions,
		logger:   logger,
	}
}

type createSessionResponse struct {
	SessionID string          `json:"sessionId"`
	Messages  []model.Message `json:"messages"`
}

type submitRequest struct {
	Content string `json:"content"`
}

// Create starts a new conversation seeded with the greeting.
func (h *Chat) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Create()
	if err != nil {
		h.logger.Error("Chat handler: failed to create session", "error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Chat handler: session created", "session_id", s.ID)

	writeJSON(w, http.StatusOK, createSessionResponse{
		SessionID: s.ID.String(),
		Messages:  s.Snapshot().Messages,
	})
}

// Get returns the session transcript and flow flags.
func (h *Chat) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Submit feeds one answer to the session's current step.
func (h *Chat) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Chat handler: failed to decode submit request",
			"session_id", id,
			"error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	snap, err := h.sessions.Submit(id, req.Content)
	if err != nil {
		h.logger.Debug("Chat handler: submit rejected",
			"session_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
