// Package config provides configuration loading for the application.
// Configuration is an explicitly constructed struct handed to the
// collaborators that need it; the calculation engine takes none.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"budgeteer/internal/common"
)

// Theme names a color scheme for terminal output.
type Theme string

const (
	// ThemeDefault is the standard color scheme.
	ThemeDefault Theme = "default"
	// ThemeDim uses muted colors for low-contrast terminals.
	ThemeDim Theme = "dim"
	// ThemePlain disables colors entirely.
	ThemePlain Theme = "plain"
)

// App holds the application configuration. Every field is typed and
// enumerated here; unknown keys fail at load time instead of silently
// doing nothing.
type App struct {
	DBPath         string
	CurrencySymbol string
	Theme          Theme
	TableWidth     int
}

// Load builds the application configuration from viper (config file and
// BUDGETEER_ environment variables), applying defaults for anything
// unset.
func Load() (*App, error) {
	app := &App{
		DBPath:         defaultDBPath(),
		CurrencySymbol: "$",
		Theme:          ThemeDefault,
		TableWidth:     100,
	}

	if v := viper.GetString("database.path"); v != "" {
		app.DBPath = ExpandPath(v)
	}
	if v := viper.GetString("display.currency_symbol"); v != "" {
		app.CurrencySymbol = v
	}
	if v := viper.GetString("display.theme"); v != "" {
		theme, err := parseTheme(v)
		if err != nil {
			return nil, err
		}
		app.Theme = theme
	}
	if v := viper.GetInt("display.table_width"); v > 0 {
		app.TableWidth = v
	}

	if err := app.Validate(); err != nil {
		return nil, err
	}
	return app, nil
}

// Validate checks the configuration for internally inconsistent values.
func (a *App) Validate() error {
	if a.DBPath == "" {
		return fmt.Errorf("%w: database path is empty", common.ErrInvalidConfig)
	}
	if a.CurrencySymbol == "" {
		return fmt.Errorf("%w: currency symbol is empty", common.ErrInvalidConfig)
	}
	if a.TableWidth < 40 {
		return fmt.Errorf("%w: table width %d is too narrow", common.ErrInvalidConfig, a.TableWidth)
	}
	return nil
}

func parseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(s)) {
	case ThemeDefault, ThemeDim, ThemePlain:
		return Theme(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q (expected default, dim, or plain)", common.ErrInvalidConfig, s)
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "budgeteer.db"
	}
	return filepath.Join(home, ".local", "share", "budgeteer", "budgeteer.db")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
