// Package tui provides the interactive Bubble Tea app for taxdiff.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/taxdiff/internal/cli"
	"github.com/theirongolddev/taxdiff/internal/config"
	"github.com/theirongolddev/taxdiff/internal/tax"
	"github.com/theirongolddev/taxdiff/internal/tui/components"
	"github.com/theirongolddev/taxdiff/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Amounts
	seed   Seed
	result tax.Comparison
	ready  bool

	// Amount form (huh)
	form   *huh.Form
	values *formValues

	// UI state
	width     int
	height    int
	activeTab int
	scroll    int
	showHelp  bool
	saveErr   error
}

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates the app. A zero seed opens on the amount form; otherwise the
// comparison is shown straight away.
func NewApp(cfg config.Config, seed Seed) App {
	a := App{
		cfg:    cfg,
		seed:   seed,
		values: newFormValues(seed),
	}
	if seed.IsZero() {
		a.form = newIncomeForm(a.values)
	} else {
		a.compute()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) compute() {
	a.result = tax.CompareRegimes(a.seed.Input())
	a.ready = true
	a.scroll = 0
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, maxContentWidth)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scroll = max(0, a.scroll-1)
		case tea.MouseButtonWheelDown:
			a.scroll = min(a.scroll+1, a.maxScroll())
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.scroll = 0
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// The amount form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key.Matches(msg, keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Edit):
			a.values = newFormValues(a.seed)
			a.form = newIncomeForm(a.values)
			if a.width > 0 {
				a.form = a.form.WithWidth(min(a.width, maxContentWidth)).WithHeight(a.height)
			}
			return a, a.form.Init()
		case key.Matches(msg, keys.Theme):
			a.cfg.Appearance.Theme = theme.Toggle()
			a.saveErr = a.persistTheme()
			return a, nil
		case key.Matches(msg, keys.Next):
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.scroll = 0
			return a, nil
		case key.Matches(msg, keys.Prev):
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.scroll = 0
			return a, nil
		case key.Matches(msg, keys.Down):
			a.scroll = min(a.scroll+1, a.maxScroll())
			return a, nil
		case key.Matches(msg, keys.Up):
			a.scroll = max(0, a.scroll-1)
			return a, nil
		}

		if r := []rune(msg.String()); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
				a.scroll = 0
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		seed, err := a.values.seed()
		a.form = nil
		if err != nil {
			// Keep the previous amounts; validators make this unreachable.
			return a, nil
		}
		a.seed = seed
		a.compute()
		return a, nil

	case huh.StateAborted:
		a.form = nil
		if !a.ready {
			return a, tea.Quit
		}
		return a, nil
	}

	return a, cmd
}

// persistTheme writes the toggled theme only when a config file already
// exists, so a first run never creates one implicitly. Env overrides in
// a.cfg are not written back.
func (a App) persistTheme() error {
	if !config.Exists() {
		return nil
	}
	fileCfg, err := config.LoadFile()
	if err != nil {
		return err
	}
	fileCfg.Appearance.Theme = a.cfg.Appearance.Theme
	return config.Save(fileCfg)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// isCompactLayout reports whether panels stack vertically. The configured
// layout wins over terminal width unless it is "auto".
func (a App) isCompactLayout() bool {
	switch a.cfg.Appearance.Layout {
	case config.LayoutCompact:
		return true
	case config.LayoutWide:
		return false
	}
	return a.contentWidth() < compactWidth
}

func (a App) layoutName() string {
	if a.isCompactLayout() {
		return config.LayoutCompact
	}
	return config.LayoutWide
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  taxdiff needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ taxdiff")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · Old vs New Regime")
	return "\n  " + logo + sub + "\n\n" + a.form.View()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(newHelp().View(keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width

	header := a.renderHeader()
	statusBar := components.RenderStatusBar(w, a.layoutName())
	contentH := a.contentHeight(header, statusBar)

	content := a.renderTab(a.contentWidth())
	content = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// renderHeader renders the tab bar and a one-line amounts summary.
func (a App) renderHeader() string {
	t := theme.Active
	summaryStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	summary := summaryStyle.Render(" gross ") +
		accentStyle.Render(cli.FormatAmount(a.result.Old.GrossIncome)) +
		summaryStyle.Render(" │ special ") +
		accentStyle.Render(cli.FormatAmount(specialTotal(a.seed.Special)))
	if a.saveErr != nil {
		summary += lipgloss.NewStyle().Foreground(t.Orange).
			Render("  could not save theme: " + a.saveErr.Error())
	}

	return components.RenderTabBar(a.activeTab) + "\n" + summary
}

func (a App) renderTab(cw int) string {
	switch a.activeTab {
	case 1:
		return a.renderSlabsTab(cw)
	case 2:
		return a.renderDistributionTab(cw)
	default:
		return a.renderComparisonTab(cw)
	}
}

func (a App) contentHeight(header, statusBar string) int {
	return max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)
}

// maxScroll is how far the active tab can scroll before its last line
// reaches the bottom of the content zone.
func (a App) maxScroll() int {
	if !a.ready || a.width == 0 {
		return 0
	}
	contentH := a.contentHeight(a.renderHeader(), components.RenderStatusBar(a.width, a.layoutName()))
	lines := lipgloss.Height(a.renderTab(a.contentWidth()))
	return max(0, lines-contentH)
}

// ─── Helpers ────────────────────────────────────────────────────

func specialTotal(si tax.SpecialIncome) float64 {
	return si.ShortTermGains + si.LongTermGains + si.LotteryWinnings + si.CryptoIncome
}

// scrollLines drops the first offset lines, clamped so the last page stays
// full.
func scrollLines(s string, offset, visible int) string {
	lines := strings.Split(s, "\n")
	limit := max(0, len(lines)-visible)
	offset = min(max(offset, 0), limit)
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i := range components.Tabs {
		tabW := components.TabWidth(i, a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
