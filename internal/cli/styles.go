// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"budgeteer/internal/config"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
	Box      lipgloss.Style

	statusColors map[string]lipgloss.Style
}

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	MoneyIcon   = "💰"
	ChartIcon   = "📊"
)

// NewStyles builds the style set for a theme.
func NewStyles(theme config.Theme) *Styles {
	if theme == config.ThemePlain {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:    plain,
			Subtitle: plain,
			Header:   plain,
			Success:  plain,
			Warning:  plain,
			Error:    plain,
			Subtle:   plain,
			Box:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			statusColors: map[string]lipgloss.Style{
				"gray": plain, "red": plain, "green": plain, "blue": plain,
			},
		}
	}

	primary := lipgloss.Color("#5FAFAF")
	warning := lipgloss.Color("#FFE66D")
	errCol := lipgloss.Color("#FF6B6B")
	subtle := lipgloss.Color("#666666")
	if theme == config.ThemeDim {
		primary = lipgloss.Color("30")
		warning = lipgloss.Color("136")
		errCol = lipgloss.Color("124")
		subtle = lipgloss.Color("240")
	}

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(subtle).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		Warning:  lipgloss.NewStyle().Foreground(warning),
		Error:    lipgloss.NewStyle().Foreground(errCol),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2),
		statusColors: map[string]lipgloss.Style{
			"gray":  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			"red":   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
			"green": lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
			"blue":  lipgloss.NewStyle().Foreground(lipgloss.Color("#6BAFFF")),
		},
	}
}

// StatusStyle returns the style for a status color tag. Unknown tags get
// an unstyled rendering.
func (s *Styles) StatusStyle(color string) lipgloss.Style {
	if style, ok := s.statusColors[color]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// FormatWarning formats a warning message with icon.
func (s *Styles) FormatWarning(message string) string {
	return s.Warning.Render(WarningIcon + " " + message)
}

// FormatSuccess formats a success message with icon.
func (s *Styles) FormatSuccess(message string) string {
	return s.Success.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func (s *Styles) FormatError(message string) string {
	return s.Error.Render(ErrorIcon + " " + message)
}

// Money formats a dollar amount with the configured currency symbol.
func Money(symbol string, amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", symbol, -amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Percent formats a percentage value to one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
