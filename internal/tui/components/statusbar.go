package components

import (
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. layout is shown on the
// right, e.g. "compact" or "wide".
func RenderStatusBar(width int, layout string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit  [t]heme " + theme.Icon() + "  [?]help  [q]uit"
	right := layout + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
