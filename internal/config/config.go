package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"MONGODB_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Admin    Admin    `envPrefix:"ADMIN_"`
	Chat     Chat     `envPrefix:"CHAT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains document store connection parameters.
type Database struct {
	URI  string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name string `env:"DATABASE" envDefault:"chatbot"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// Admin contains the admin login credentials. These are injected here
// rather than compiled in; a production deployment should override both.
type Admin struct {
	Email    string `env:"EMAIL" envDefault:"admin@example.com"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

// Chat contains wizard conversation parameters. SessionRetention is
// how long a finished conversation stays pollable before its slot is
// reclaimed; IdleTimeout and SweepInterval control reclamation of
// abandoned conversations.
type Chat struct {
	TypingDelay      time.Duration `env:"TYPING_DELAY" envDefault:"2s"`
	MaxSessions      int           `env:"MAX_SESSIONS" envDefault:"1024"`
	SessionRetention time.Duration `env:"SESSION_RETENTION" envDefault:"1m"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT" envDefault:"30m"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
