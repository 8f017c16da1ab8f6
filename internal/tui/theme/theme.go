// Package theme defines the light and dark color themes shared by the CLI
// renderer and the interactive app.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the UI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused card border
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Green        lipgloss.Color // Savings, the better regime
	Red          lipgloss.Color // The costlier regime
	Orange       lipgloss.Color
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
	Magenta      lipgloss.Color
}

// Theme names accepted in config and on the command line.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Active is the currently selected theme.
var Active = Dark

// Dark is the default theme (Flexoki dark palette).
var Dark = Theme{
	Name:         NameDark,
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#1DD1A1"),
	Red:          lipgloss.Color("#FF6B6B"),
	Orange:       lipgloss.Color("#DA702C"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
	Magenta:      lipgloss.Color("#CE5D97"),
}

// Light is the Flexoki light palette.
var Light = Theme{
	Name:         NameLight,
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	SurfaceHover: lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#CECDC3"),
	BorderAccent: lipgloss.Color("#24837B"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	AccentBright: lipgloss.Color("#1A5E59"),
	Green:        lipgloss.Color("#66800B"),
	Red:          lipgloss.Color("#AF3029"),
	Orange:       lipgloss.Color("#BC5215"),
	Blue:         lipgloss.Color("#205EA6"),
	Yellow:       lipgloss.Color("#AD8301"),
	Magenta:      lipgloss.Color("#A02F6F"),
}

// All available themes.
var All = []Theme{Dark, Light}

// ByName returns a theme by its name, defaulting to Dark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Dark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Toggle switches between light and dark and returns the new active name.
func Toggle() string {
	if Active.Name == NameLight {
		Active = Dark
	} else {
		Active = Light
	}
	return Active.Name
}

// Icon is the toggle glyph shown in the status bar: a moon while light (press
// to go dark), a sun while dark.
func Icon() string {
	if Active.Name == NameLight {
		return "☾"
	}
	return "☀"
}
