// Package sheets writes budget reports to a Google Sheets spreadsheet.
package sheets

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"budgeteer/internal/config"
)

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: "Budget Report",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// LoadConfig builds the Sheets configuration from viper (config file and
// BUDGETEER_ environment variables).
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if v := viper.GetString("sheets.client_id"); v != "" {
		cfg.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		cfg.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		cfg.RefreshToken = v
	}
	if v := viper.GetString("sheets.service_account_path"); v != "" {
		cfg.ServiceAccountPath = config.ExpandPath(v)
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		cfg.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.spreadsheet_name"); v != "" {
		cfg.SpreadsheetName = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured: provide either a service account path or OAuth2 credentials")
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or a service account")
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}

	return nil
}
