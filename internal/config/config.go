package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the exporter's environment variables
// (SHEETSYNC_SPREADSHEET_ID and so on). Variables named explicitly via
// an envconfig tag are also honored without the prefix.
const envPrefix = "sheetsync"

// Config holds the exporter configuration.
type Config struct {
	// SpreadsheetID identifies the tracker spreadsheet.
	SpreadsheetID string `split_words:"true" default:"1fEQp7jbcpHKcKCUrU0JreX4Xs20P1f0viNOkKpwNNng"`

	// SheetName is the tab rows are appended to.
	SheetName string `split_words:"true" default:"ToDo"`

	// CredentialsFile is the service-account key path. Empty means
	// "resolve via GOOGLE_SA_CREDENTIALS or the default location".
	CredentialsFile string `envconfig:"GOOGLE_SA_CREDENTIALS"`
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment wins over it anyway.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID must not be empty")
	}
	if c.SheetName == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	return nil
}
