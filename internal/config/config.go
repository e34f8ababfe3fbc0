package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the assistant service.
// Environment variables are parsed from the ASSISTANT_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage. DB_DRIVER "auto" resolves to postgres when a DSN is set,
	// sqlite otherwise.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/assistant.db"`

	// Provider credentials. A missing key means that provider reports itself
	// unconfigured; it is never a startup failure.
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY" default:""`
	GeminiAPIKey      string `envconfig:"GEMINI_API_KEY" default:""`
	HuggingFaceAPIKey string `envconfig:"HUGGINGFACE_API_KEY" default:""`
	CohereAPIKey      string `envconfig:"COHERE_API_KEY" default:""`

	// Default provider for new conversations.
	AIProvider string `envconfig:"AI_PROVIDER" default:"openai"`

	// Provider endpoints are overridable for tests; empty means the
	// adapter's production endpoint.
	OpenAIBaseURL      string `envconfig:"OPENAI_BASE_URL" default:""`
	GeminiBaseURL      string `envconfig:"GEMINI_BASE_URL" default:""`
	HuggingFaceBaseURL string `envconfig:"HUGGINGFACE_BASE_URL" default:""`
	CohereBaseURL      string `envconfig:"COHERE_BASE_URL" default:""`

	// Bound on a single outbound generation call.
	ProviderTimeoutSeconds int `envconfig:"PROVIDER_TIMEOUT_SECONDS" default:"8"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults derives the DB driver when set to "auto" and validates it.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}
	allowedDB := map[string]bool{"postgres": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER is postgres but POSTGRES_DSN is empty")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables are prefixed with ASSISTANT_,
// e.g. ASSISTANT_HTTP_PORT, ASSISTANT_OPENAI_API_KEY.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ASSISTANT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("default_provider", cfg.AIProvider).
		Bool("openai_key_present", cfg.OpenAIAPIKey != "").
		Bool("gemini_key_present", cfg.GeminiAPIKey != "").
		Bool("huggingface_key_present", cfg.HuggingFaceAPIKey != "").
		Bool("cohere_key_present", cfg.CohereAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8080,
		DBDriver:                  "sqlite",
		SQLitePath:                "", // tests supply a temp path
		AIProvider:                "openai",
		ProviderTimeoutSeconds:    2,
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
