package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/phoenix/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle returns the lipgloss style for a flag or alert severity.
func SeverityStyle(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityCritical, domain.SeverityHardError:
		return StyleRed
	case domain.SeverityWarn:
		return StyleYellow
	case domain.SeverityInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityBadge returns a colored badge string such as "● CRITICAL".
func SeverityBadge(sev domain.Severity) string {
	return SeverityStyle(sev).Render("● " + string(sev))
}
