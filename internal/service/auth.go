package service

import (
	"context"
	"fmt"

	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
)

// Auth validates admin credentials and issues access tokens.
type Auth struct {
	adminEmail    string
	adminPassword string
	tokenManager  model.TokenManager
	logger        *logger.Logger
}

// NewAuth creates an Auth service with the configured admin credentials.
func NewAuth(adminEmail, adminPassword string, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		tokenManager:  tokenManager,
		logger:        logger,
	}
}

// Login compares the supplied credentials against the configured pair
// and issues a signed admin token on match. Unknown email and wrong
// password are not distinguished.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: processing login", "email", email)

	if email != a.adminEmail || password != a.adminPassword {
		a.logger.Info("Auth service: credentials rejected", "email", email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(model.RoleAdmin)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: login successful", "email", email)

	return token, nil
}
