// Package output provides styled terminal rendering helpers for nichewatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for strong signals and improvements.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for weak signals and regressions.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling signals.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorHot highlights hot insights.
	ColorHot = lipgloss.Color("#ff8a65")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleHot     lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style

	// StyleLabel is used for KPI labels.
	StyleLabel lipgloss.Style

	// StyleValue is used for KPI values.
	StyleValue lipgloss.Style
)

func init() {
	applyStyles(false)
}

// SetNoColor disables or enables color output globally.
func SetNoColor(disabled bool) {
	applyStyles(disabled)
}

// AutoColor disables color when configuration asks for it or stdout is not a
// terminal.
func AutoColor(enabled bool) {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	SetNoColor(!enabled || !tty)
}

func applyStyles(plain bool) {
	if plain {
		p := lipgloss.NewStyle()
		StyleHeader = p
		StyleSuccess = p
		StyleError = p
		StyleWarning = p
		StyleHot = p
		StyleMuted = p
		StyleBold = p
		StyleLabel = p.Width(24)
		StyleValue = p
		return
	}

	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleHot = lipgloss.NewStyle().Foreground(ColorHot).Bold(true)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(24)
	StyleValue = lipgloss.NewStyle().Bold(true)
}
