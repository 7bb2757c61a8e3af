package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	app, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, app.DBPath)
	assert.Equal(t, "$", app.CurrencySymbol)
	assert.Equal(t, ThemeDefault, app.Theme)
	assert.Equal(t, 100, app.TableWidth)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.path", "/tmp/budget-test.db")
	viper.Set("display.currency_symbol", "€")
	viper.Set("display.theme", "dim")
	viper.Set("display.table_width", 80)

	app, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/budget-test.db", app.DBPath)
	assert.Equal(t, "€", app.CurrencySymbol)
	assert.Equal(t, ThemeDim, app.Theme)
	assert.Equal(t, 80, app.TableWidth)
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("display.theme", "solarized")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		app     App
		wantErr bool
	}{
		{
			name: "valid",
			app:  App{DBPath: "x.db", CurrencySymbol: "$", Theme: ThemeDefault, TableWidth: 100},
		},
		{
			name:    "empty db path",
			app:     App{CurrencySymbol: "$", TableWidth: 100},
			wantErr: true,
		},
		{
			name:    "empty currency symbol",
			app:     App{DBPath: "x.db", TableWidth: 100},
			wantErr: true,
		},
		{
			name:    "table too narrow",
			app:     App{DBPath: "x.db", CurrencySymbol: "$", TableWidth: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("BUDGET_TEST_DIR", "/data")

	assert.Equal(t, "/data/b.db", ExpandPath("$BUDGET_TEST_DIR/b.db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/budget.db"), "~")
}
