package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tier cut-offs used to color 0-100 scores.
const (
	strongScore   = 70
	moderateScore = 40
)

// ScoreStyle picks the style for a 0-100 score.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= strongScore:
		return StyleSuccess
	case score >= moderateScore:
		return StyleWarning
	default:
		return StyleError
	}
}

// ScoreBar renders a visual bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", ScoreStyle(score).Render(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// Badge renders a bracketed label, e.g. "[High]", in the given style.
func Badge(label string, style lipgloss.Style) string {
	return style.Render("[" + label + "]")
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.1f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.1f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// ruleWidth is the length of the rule drawn under section headers.
var ruleWidth = 66

// SetWidth fits section rules to a terminal of the given column count.
// Widths too narrow to be useful are ignored.
func SetWidth(columns int) {
	if columns >= 20 {
		ruleWidth = columns - 2
	}
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", ruleWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
