package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tax"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// styles are rebuilt per render so a theme change applies immediately.
type styles struct {
	title, header, value, muted, dim, good, bad lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		good:   lipgloss.NewStyle().Foreground(t.Green).Bold(true),
		bad:    lipgloss.NewStyle().Foreground(t.Red),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(currentStyles().title.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(st.dim.Render(left))
		for i, w := range widths {
			b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render(mid))
			}
		}
		b.WriteString(st.dim.Render(right))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(st.header.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// First column is a label; the rest are amounts.
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(st.value.Render(padded))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// padRight and padLeft pad by display width; "₹" and "–" are multi-byte so
// fmt's %-*s would misalign.
func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// RenderHorizontalBar renders one labelled bar of a horizontal bar chart.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	st := currentStyles()
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", st.muted.Render(label))
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %s  %s%s", st.muted.Render(label), bar, strings.Repeat(" ", maxWidth-barLen))
}

// ComparisonTable lays out both breakdowns side by side.
func ComparisonTable(c tax.Comparison) Table {
	row := func(label string, pick func(tax.Breakdown) float64) []string {
		return []string{label, FormatAmount(pick(c.Old)), FormatAmount(pick(c.New))}
	}
	return Table{
		Title:   "Tax Comparison",
		Headers: []string{"Particulars", c.Old.Regime.Title(), c.New.Regime.Title()},
		Rows: [][]string{
			row("Gross Income", func(b tax.Breakdown) float64 { return b.GrossIncome }),
			row("Total Deductions", func(b tax.Breakdown) float64 { return b.Deductions }),
			row("Taxable Income", func(b tax.Breakdown) float64 { return b.TaxableIncome }),
			{"---"},
			row("Tax from Slab", func(b tax.Breakdown) float64 { return b.SlabTax }),
			row("Tax from Special", func(b tax.Breakdown) float64 { return b.SpecialTax }),
			row(fmt.Sprintf("Cess (%s)", FormatRate(tax.SurchargeRate)), func(b tax.Breakdown) float64 { return b.Surcharge }),
			{"---"},
			row("Total Tax Payable", func(b tax.Breakdown) float64 { return b.Total }),
		},
	}
}

// SlabTable lists each bracket the taxable income reached.
func SlabTable(b tax.Breakdown) Table {
	rows := make([][]string, 0, len(b.Brackets)+2)
	for _, bt := range b.Brackets {
		rows = append(rows, []string{
			FormatBracket(bt.Bracket),
			FormatRate(bt.Bracket.Rate),
			FormatAmount(bt.Taxable),
			FormatAmount(bt.Tax),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", FormatAmount(b.TaxableIncome), FormatAmount(b.SlabTax)})

	return Table{
		Title:   b.Regime.Title() + " Slab Calculation",
		Headers: []string{"Slab", "Rate", "Taxable Income", "Tax"},
		Rows:    rows,
	}
}

// ScheduleTable lists a schedule's brackets and marginal rates.
func ScheduleTable(s tax.Schedule) Table {
	brackets := s.Brackets()
	rows := make([][]string, 0, len(brackets))
	for _, b := range brackets {
		rows = append(rows, []string{FormatBracket(b), FormatRate(b.Rate)})
	}
	return Table{
		Title:   s.Name() + " Slabs",
		Headers: []string{"Slab", "Rate"},
		Rows:    rows,
	}
}

// DistributionTable shows how a regime's total splits into slab, special and
// cess.
func DistributionTable(b tax.Breakdown) Table {
	parts := b.Distribution()
	rows := make([][]string, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, []string{p.Label, FormatAmount(p.Amount), FormatPercent(p.Fraction)})
	}
	return Table{
		Title:   b.Regime.Title() + " Tax Distribution",
		Headers: []string{"Component", "Amount", "Share"},
		Rows:    rows,
	}
}

// RenderVerdict renders the savings line, e.g.
// "New Regime is Better – You Save ₹12,000".
func RenderVerdict(c tax.Comparison) string {
	st := currentStyles()
	return "  " + st.good.Render(c.Verdict()) +
		st.muted.Render(" – You Save ") +
		st.good.Render(FormatAmount(c.AbsSavings()))
}

// RenderTotalsChart renders a two-bar chart of each regime's total tax. The
// costlier regime is drawn in red, the better one in green.
func RenderTotalsChart(c tax.Comparison, width int) string {
	t := theme.Active
	peak := max(c.Old.Total, c.New.Total)

	colorFor := func(r tax.Regime) lipgloss.Color {
		if r == c.Better {
			return t.Green
		}
		return t.Red
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(currentStyles().header.Render("Total Tax"))
	b.WriteString("\n")
	for _, br := range []tax.Breakdown{c.Old, c.New} {
		b.WriteString(RenderHorizontalBar(padRight(br.Regime.Title(), 10), br.Total, peak, width, colorFor(br.Regime)))
		b.WriteString("  ")
		b.WriteString(FormatAmount(br.Total))
		b.WriteString("\n")
	}
	return b.String()
}
