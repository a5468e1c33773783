package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the gateway settings, read from the environment.
type Config struct {
	Port string `envconfig:"PORT" default:"4000"`

	// Upstream game server.
	UpstreamAPIURL string `envconfig:"UPSTREAM_API_URL" required:"true"`
	UpstreamWSURL  string `envconfig:"UPSTREAM_WS_URL" required:"true"`
	SessionToken   string `envconfig:"SESSION_TOKEN" required:"true"`

	// Optional local persistence for preferences and round history.
	// The gateway runs fully in-memory when unset.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ReadyDelay     time.Duration `envconfig:"READY_DELAY" default:"3s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"debug"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.ReadyDelay <= 0 {
		return nil, fmt.Errorf("READY_DELAY must be positive, got %s", cfg.ReadyDelay)
	}
	return &cfg, nil
}
