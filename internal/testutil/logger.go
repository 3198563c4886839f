package testutil

import (
	"io"
	"log/slog"

	"github.com/introbot/chatbot-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything, for tests
// that don't assert on log output.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
