package service

import (
	"context"
	"fmt"
	"time"

	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
)

// User persists and lists signup records.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewUser creates a User service backed by the given store.
func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

// Create inserts a new signup record. Role is forced to "user" and the
// creation time is assigned here; the client-supplied fields are stored
// as received, without re-validation.
func (s *User) Create(ctx context.Context, input model.NewUser) (string, error) {
	s.logger.Debug("User service: creating user", "username", input.Username)

	user := model.User{
		Username:  input.Username,
		FullName:  input.FullName,
		Email:     input.Email,
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.store.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", input.Username,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"username", input.Username,
		"user_id", id)

	return id, nil
}

// List returns all signup records in the collection's natural order.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users", "error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
