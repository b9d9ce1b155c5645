package config

import (
	"strings"
	"time"

	apperrors "github.com/corlin/wvsee/internal/shared/errors"

	"github.com/caarlos0/env/v6"
)

// WeaviateConfig holds connection settings for the vector database.
type WeaviateConfig struct {
	// BaseURL is the root of the Weaviate HTTP API, e.g. "http://localhost:8080".
	BaseURL string `env:"WEAVIATE_URL"`

	// Timeout bounds every outbound request to the database.
	Timeout time.Duration `env:"WEAVIATE_TIMEOUT" envDefault:"30s"`
}

// ServerConfig holds settings for the dashboard's own HTTP server.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"localhost"`
	Port string `env:"SERVER_PORT" envDefault:"8080"`

	// CORSAllowOrigins is passed to the CORS middleware unchanged.
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

// Config is the full dashboard configuration, loaded once at startup and
// injected into the layers that need it.
type Config struct {
	Weaviate WeaviateConfig
	Server   ServerConfig
}

// LoadConfig loads configuration from environment variables and applies defaults.
// A missing WEAVIATE_URL is a startup configuration error, not a panic.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Weaviate); err != nil {
		return nil, apperrors.NewConfigurationError("failed to load weaviate configuration from environment").WithCause(err)
	}
	if err := env.Parse(&cfg.Server); err != nil {
		return nil, apperrors.NewConfigurationError("failed to load server configuration from environment").WithCause(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for fatal omissions.
func (c *Config) Validate() error {
	if c.Weaviate.BaseURL == "" {
		return apperrors.NewConfigurationError("WEAVIATE_URL environment variable is not set")
	}
	if c.Weaviate.Timeout <= 0 {
		c.Weaviate.Timeout = 30 * time.Second
	}
	// Trailing slashes would double up when joining endpoint paths.
	c.Weaviate.BaseURL = strings.TrimRight(c.Weaviate.BaseURL, "/")
	return nil
}

// Addr returns the listen address for the HTTP server.
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DefaultConfig returns a Config with local-development defaults.
func DefaultConfig() *Config {
	return &Config{
		Weaviate: WeaviateConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Host:             "localhost",
			Port:             "8080",
			CORSAllowOrigins: "*",
		},
	}
}
