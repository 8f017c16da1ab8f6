package tui

import (
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Comparison key.Binding
	Slabs      key.Binding
	Dist       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Down       key.Binding
	Up         key.Binding
	Edit       key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Comparison: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comparison")),
	Slabs:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slabs")),
	Dist:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "distribution")),
	Next:       key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next tab")),
	Prev:       key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "previous tab")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "scroll down")),
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "scroll up")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit amounts")),
	Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Comparison, k.Slabs, k.Dist, k.Next, k.Prev},
		{k.Down, k.Up, k.Edit, k.Theme, k.Help, k.Quit},
	}
}

func newHelp() help.Model {
	t := theme.Active
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Styles.ShortKey = h.Styles.FullKey
	h.Styles.ShortDesc = h.Styles.FullDesc
	h.Styles.ShortSeparator = h.Styles.FullSeparator
	return h
}
