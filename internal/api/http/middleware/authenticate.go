package middleware

import (
	"net/http"
	"strings"

	"github.com/introbot/chatbot-server/internal/logger"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) error
}

// Authenticate rejects requests without a valid bearer token. Claims
// beyond signature and expiry are not inspected.
type Authenticate struct {
	tokens TokenVerifier
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header and verifies the token before
// passing the request on. The wrapped handler never runs on failure.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.logger.Debug("Authenticate middleware: missing or malformed header",
				"path", r.URL.Path)
			writeUnauthorized(w)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if err := m.tokens.Verify(token); err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}
