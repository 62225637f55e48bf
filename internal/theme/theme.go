// Package theme defines the color palettes used by the styled renderer.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the renderer's color roles to concrete terminal colors.
type Theme struct {
	Name   string
	Border lipgloss.Color // Box borders
	Text   lipgloss.Color // Primary content text
	Muted  lipgloss.Color // Hints and secondary text
	Accent lipgloss.Color // Highlighted menu and list items
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Blue   lipgloss.Color
	Pink   lipgloss.Color
	Cyan   lipgloss.Color
	White  lipgloss.Color
}

// Terminal uses ANSI 16 colors only, so it follows the user's terminal palette.
var Terminal = Theme{
	Name:   "terminal",
	Border: lipgloss.Color("8"),
	Text:   lipgloss.Color("15"),
	Muted:  lipgloss.Color("7"),
	Accent: lipgloss.Color("6"),
	Red:    lipgloss.Color("1"),
	Green:  lipgloss.Color("2"),
	Yellow: lipgloss.Color("3"),
	Blue:   lipgloss.Color("4"),
	Pink:   lipgloss.Color("5"),
	Cyan:   lipgloss.Color("6"),
	White:  lipgloss.Color("7"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:   "flexoki-dark",
	Border: lipgloss.Color("#575653"),
	Text:   lipgloss.Color("#FFFCF0"),
	Muted:  lipgloss.Color("#878580"),
	Accent: lipgloss.Color("#3AA99F"),
	Red:    lipgloss.Color("#D14D41"),
	Green:  lipgloss.Color("#879A39"),
	Yellow: lipgloss.Color("#D0A215"),
	Blue:   lipgloss.Color("#4385BE"),
	Pink:   lipgloss.Color("#CE5D97"),
	Cyan:   lipgloss.Color("#24837B"),
	White:  lipgloss.Color("#CECDC3"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:   "catppuccin-mocha",
	Border: lipgloss.Color("#7F849C"),
	Text:   lipgloss.Color("#CDD6F4"),
	Muted:  lipgloss.Color("#A6ADC8"),
	Accent: lipgloss.Color("#89B4FA"),
	Red:    lipgloss.Color("#F38BA8"),
	Green:  lipgloss.Color("#A6E3A1"),
	Yellow: lipgloss.Color("#F9E2AF"),
	Blue:   lipgloss.Color("#89B4FA"),
	Pink:   lipgloss.Color("#F5C2E7"),
	Cyan:   lipgloss.Color("#94E2D5"),
	White:  lipgloss.Color("#BAC2DE"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:   "tokyo-night",
	Border: lipgloss.Color("#565F89"),
	Text:   lipgloss.Color("#C0CAF5"),
	Muted:  lipgloss.Color("#A9B1D6"),
	Accent: lipgloss.Color("#7AA2F7"),
	Red:    lipgloss.Color("#F7768E"),
	Green:  lipgloss.Color("#9ECE6A"),
	Yellow: lipgloss.Color("#E0AF68"),
	Blue:   lipgloss.Color("#7AA2F7"),
	Pink:   lipgloss.Color("#BB9AF7"),
	Cyan:   lipgloss.Color("#7DCFFF"),
	White:  lipgloss.Color("#A9B1D6"),
}

// All available themes.
var All = []Theme{Terminal, FlexokiDark, CatppuccinMocha, TokyoNight}

// Active is the currently selected theme.
var Active = Terminal

// ByName returns a theme by its name, defaulting to Terminal.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Terminal
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists the names of all themes in display order.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, t := range All {
		names = append(names, t.Name)
	}
	return names
}
