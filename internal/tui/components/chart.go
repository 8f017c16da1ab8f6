package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one column of a BarChart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders vertical bars with a y-axis of rounded ticks. Each bar
// keeps its own color; values are labelled above the bars' x-axis names.
func BarChart(bars []Bar, width, height int, valueLabel func(float64) string) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	if height < 3 {
		height = 3
	}

	maxVal := 0.0
	for _, b := range bars {
		maxVal = math.Max(maxVal, b.Value)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))

	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(valueLabel(ceiling))+1)
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = valueLabel(tickStep * float64(i))
	}

	n := len(bars)
	chartW := max(5, width-yLabelW-1)
	gap := 2
	barW := max(2, (chartW-gap*(n-1))/n)
	if barW > 14 {
		barW = 14
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	blank := strings.Repeat(" ", barW)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, bar := range bars {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			style := lipgloss.NewStyle().Foreground(bar.Color)
			switch {
			case bar.Value >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case bar.Value > rowBottom:
				idx := int((bar.Value - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(8, max(1, idx))
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	for _, line := range []struct {
		style lipgloss.Style
		text  func(Bar) string
	}{
		{labelStyle, func(b Bar) string { return b.Label }},
		{valueStyle, func(b Bar) string { return valueLabel(b.Value) }},
	} {
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		for i, bar := range bars {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(line.style.Render(centerIn(line.text(bar), barW)))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func centerIn(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw >= w {
		return s
	}
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}
