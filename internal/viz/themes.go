package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the terminal view.
type Theme struct {
	Name    string
	Plot    lipgloss.Color
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Border  lipgloss.Color
	Chart   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:    "night",
		Plot:    lipgloss.Color("#e6e6f0"),
		Header:  lipgloss.Color("86"),
		Label:   lipgloss.Color("245"),
		Value:   lipgloss.Color("252"),
		Border:  lipgloss.Color("240"),
		Chart:   lipgloss.Color("49"),
		Warning: lipgloss.Color("#ff8800"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Plot:    lipgloss.Color("#00ff00"),
		Header:  lipgloss.Color("#88ff88"),
		Label:   lipgloss.Color("#00aa00"),
		Value:   lipgloss.Color("#00ff00"),
		Border:  lipgloss.Color("#005500"),
		Chart:   lipgloss.Color("#00cc00"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Plot:    lipgloss.Color("#e0f0ff"),
		Header:  lipgloss.Color("#00a8cc"),
		Label:   lipgloss.Color("#4488aa"),
		Value:   lipgloss.Color("#e0f0ff"),
		Border:  lipgloss.Color("#0077be"),
		Chart:   lipgloss.Color("#ffd700"),
		Warning: lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Plot:    lipgloss.Color("#fff5f5"),
		Header:  lipgloss.Color("#ff6b6b"),
		Label:   lipgloss.Color("#8b6b8c"),
		Value:   lipgloss.Color("#fff5f5"),
		Border:  lipgloss.Color("#8b6b8c"),
		Chart:   lipgloss.Color("#feca57"),
		Warning: lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeNight, ThemeRetro, ThemeOcean, ThemeSunset}
)

// GetTheme looks a theme up by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeNight, false
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
