package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/cli"
	"github.com/theirongolddev/taxdiff/internal/tax"
	"github.com/theirongolddev/taxdiff/internal/tui/components"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderComparisonTab shows the totals, the side-by-side table and a bar
// chart of both regimes' totals.
func (a App) renderComparisonTab(cw int) string {
	t := theme.Active
	c := a.result
	compact := a.isCompactLayout()

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: c.Old.Regime.Title(), Value: cli.FormatAmount(c.Old.Total), Note: "taxable " + cli.FormatAmount(c.Old.TaxableIncome)},
		{Label: c.New.Regime.Title(), Value: cli.FormatAmount(c.New.Total), Note: "taxable " + cli.FormatAmount(c.New.TaxableIncome)},
		{Label: c.Verdict(), Value: cli.FormatAmount(c.AbsSavings()), Note: "you save", Highlight: true},
	}, cw))
	b.WriteString("\n")

	table := strings.TrimRight(cli.RenderTable(stripTitle(cli.ComparisonTable(c))), "\n")
	tableW := lipgloss.Width(table) + 4

	colorFor := func(r tax.Regime) lipgloss.Color {
		if r == c.Better {
			return t.Green
		}
		return t.Red
	}
	bars := []components.Bar{
		{Label: "Old", Value: c.Old.Total, Color: colorFor(tax.RegimeOld)},
		{Label: "New", Value: c.New.Total, Color: colorFor(tax.RegimeNew)},
	}

	if compact || cw-tableW < 30 {
		b.WriteString(components.ContentCard("Tax Comparison", table, cw))
		b.WriteString("\n")
		chart := components.BarChart(bars, components.CardInnerWidth(cw), 8, cli.FormatCompact)
		b.WriteString(components.ContentCard("Total Tax", chart, cw))
	} else {
		chartW := cw - tableW
		chart := components.BarChart(bars, components.CardInnerWidth(chartW), lipgloss.Height(table)-3, cli.FormatCompact)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Tax Comparison", table, tableW),
			components.ContentCard("Total Tax", chart, chartW),
		}, false))
	}

	return b.String()
}

// renderSlabsTab shows the per-bracket calculation of each regime.
func (a App) renderSlabsTab(cw int) string {
	c := a.result

	oldTable := strings.TrimRight(cli.RenderTable(stripTitle(cli.SlabTable(c.Old))), "\n")
	newTable := strings.TrimRight(cli.RenderTable(stripTitle(cli.SlabTable(c.New))), "\n")

	oldW := max(lipgloss.Width(oldTable)+4, cw/2)
	newW := cw - oldW
	cards := []string{
		components.ContentCard(c.Old.Regime.Title()+" Slabs", oldTable, oldW),
		components.ContentCard(c.New.Regime.Title()+" Slabs", newTable, newW),
	}

	if a.isCompactLayout() || newW < lipgloss.Width(newTable)+4 {
		cards[0] = components.ContentCard(c.Old.Regime.Title()+" Slabs", oldTable, cw)
		cards[1] = components.ContentCard(c.New.Regime.Title()+" Slabs", newTable, cw)
		return components.CardRow(cards, true)
	}
	return components.CardRow(cards, false)
}

// renderDistributionTab shows how each regime's total splits between slab
// tax, special income tax and cess.
func (a App) renderDistributionTab(cw int) string {
	c := a.result
	compact := a.isCompactLayout()

	if compact {
		return components.CardRow([]string{
			distributionCard(c.Old, cw),
			distributionCard(c.New, cw),
		}, true)
	}

	widths := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		distributionCard(c.Old, widths[0]),
		distributionCard(c.New, widths[1]),
	}, false)
}

func distributionCard(b tax.Breakdown, outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	labelW := 14
	pctW := 7
	barW := max(10, innerW-labelW-pctW-2)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var body strings.Builder
	colors := components.ShareColors()
	for i, share := range b.Distribution() {
		body.WriteString(components.ShareBar(share.Label, share.Fraction, colors[i%len(colors)], labelW, barW))
		body.WriteString("\n")
		body.WriteString(muted.Render(fmt.Sprintf("%-*s ", labelW, "")))
		body.WriteString(value.Render(cli.FormatAmount(share.Amount)))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(muted.Render("Total tax payable  "))
	body.WriteString(value.Render(cli.FormatAmount(b.Total)))

	return components.ContentCard(b.Regime.Title()+" Distribution", body.String(), outerW)
}

// stripTitle drops a table's own heading; the card title replaces it.
func stripTitle(t cli.Table) cli.Table {
	t.Title = ""
	return t
}
