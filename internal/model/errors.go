package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrComposing          = errors.New("bot reply pending")
	ErrSessionComplete    = errors.New("conversation already complete")
)
