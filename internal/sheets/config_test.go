package sheets

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "oauth credentials",
			mutate: func(c *Config) { c.ClientID = "id"; c.ClientSecret = "secret"; c.RefreshToken = "token" },
		},
		{
			name:   "service account",
			mutate: func(c *Config) { c.ServiceAccountPath = "/tmp/sa.json" },
		},
		{
			name:    "no auth",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
				c.ServiceAccountPath = "/tmp/sa.json"
			},
			wantErr: true,
		},
		{
			name: "partial oauth is no auth",
			mutate: func(c *Config) {
				c.ClientID = "id"
			},
			wantErr: true,
		},
		{
			name: "negative retries",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/sa.json"
				c.RetryAttempts = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_FromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("sheets.service_account_path", "/tmp/sa.json")
	viper.Set("sheets.spreadsheet_name", "My Budget")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sa.json", cfg.ServiceAccountPath)
	assert.Equal(t, "My Budget", cfg.SpreadsheetName)
	assert.Equal(t, 3, cfg.RetryAttempts)
}

func TestLoadConfig_MissingAuth(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := LoadConfig()
	assert.Error(t, err)
}
