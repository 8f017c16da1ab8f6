// Package components provides reusable TUI widgets for the taxdiff app.
package components

import (
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Metric is one entry of a MetricCardRow.
type Metric struct {
	Label, Value, Note string
	Highlight          bool
}

// MetricCard renders a small metric card with label, value, and note.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	valueColor := t.TextPrimary
	if m.Highlight {
		border = t.BorderAccent
		valueColor = t.Green
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value)
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders cards side by side; widths sum to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, 0, len(metrics))
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m, widths[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered cards horizontally, or stacks them when compact.
func CardRow(cards []string, compact bool) string {
	if len(cards) == 0 {
		return ""
	}
	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
