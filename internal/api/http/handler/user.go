package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
)

// UserService defines signup record operations.
type UserService interface {
	Create(ctx context.Context, input model.NewUser) (string, error)
	List(ctx context.Context) ([]model.User, error)
}

// User handles signup record endpoints.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type createUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type listUsersResponse struct {
	Users []model.User `json:"users"`
}

// Create inserts a new signup record. Any client-supplied role is
// ignored; the service forces role=user.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("User handler: failed to decode create request",
			"error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := h.userService.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("User handler: create failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("User handler: user created",
		"username", req.Username,
		"user_id", id)

	writeJSON(w, http.StatusOK, createUserResponse{
		Message: "User created successfully",
		UserID:  id,
	})
}

// List returns every signup record. The route is guarded by the bearer
// token middleware; no further authorization happens here.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("User handler: list failed", "error", err.Error())
		handleError(w, err)
		return
	}

	if users == nil {
		users = []model.User{}
	}

	writeJSON(w, http.StatusOK, listUsersResponse{Users: users})
}
