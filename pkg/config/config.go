package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds the console settings.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL,default=http://localhost:5000/api"`
	APITimeout     time.Duration `env:"API_TIMEOUT,default=10s"`
	TokenFile      string        `env:"TOKEN_FILE,default=.admin-session.json"`
	Environment    string        `env:"ENVIRONMENT,default=development"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS,default=20"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST,default=10"`
	DemoMode       bool          `env:"DEMO_MODE,default=true"`

	// Used by the CLI login command when no flags are given.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{}
	if err := envdecode.Decode(config); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}

	return config, nil
}

// IsDevelopment reports whether ENVIRONMENT is development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
