package components

import (
	"strings"

	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name
}

// Tabs defines the result views.
var Tabs = []Tab{
	{Name: "Comparison", Key: 'c', KeyPos: 0},
	{Name: "Slabs", Key: 's', KeyPos: 0},
	{Name: "Distribution", Key: 'd', KeyPos: 0},
}

// TabWidth is the rendered width of tab i: its name plus the "[ ]" around
// the shortcut when inactive, plus horizontal padding.
func TabWidth(i, activeIdx int) int {
	w := len(Tabs[i].Name) + 2
	if i != activeIdx {
		w += 2
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		before := tab.Name[:tab.KeyPos]
		key := string(tab.Name[tab.KeyPos])
		after := tab.Name[tab.KeyPos+1:]
		parts = append(parts, " "+inactiveStyle.Render(before)+
			dimKeyStyle.Render("[")+keyStyle.Render(key)+dimKeyStyle.Render("]")+
			inactiveStyle.Render(after)+" ")
	}

	return strings.Join(parts, " ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
