package cli

import (
	"testing"

	"budgeteer/internal/config"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{"$", 1078.81, "$1078.81"},
		{"$", 0, "$0.00"},
		{"$", -50, "-$50.00"},
		{"€", 12.5, "€12.50"},
	}

	for _, tt := range tests {
		if got := Money(tt.symbol, tt.amount); got != tt.want {
			t.Errorf("Money(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(8.4); got != "8.4%" {
		t.Errorf("Percent(8.4) = %q", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Errorf("Percent(0) = %q", got)
	}
}

func TestNewStyles_AllThemes(t *testing.T) {
	for _, theme := range []config.Theme{config.ThemeDefault, config.ThemeDim, config.ThemePlain} {
		styles := NewStyles(theme)
		if styles == nil {
			t.Fatalf("theme %q produced nil styles", theme)
		}
		// Every status color tag the engine emits must resolve.
		for _, color := range []string{"gray", "red", "green", "blue"} {
			styles.StatusStyle(color)
		}
	}
}
