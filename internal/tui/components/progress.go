package components

import (
	"fmt"

	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareColors cycles through distribution slices in order: slab, special, cess.
func ShareColors() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{t.Blue, t.Magenta, t.Yellow}
}

// ShareBar renders one distribution slice as a labelled bar with its
// percentage. It stands in for a pie-chart wedge.
func ShareBar(label string, pct float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}
