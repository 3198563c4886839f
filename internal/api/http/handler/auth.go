package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/introbot/chatbot-server/internal/logger"
)

// AuthService defines the admin login operation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles the admin login endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login checks the supplied credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Auth handler: failed to decode login request",
			"error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "email", req.Email)

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
