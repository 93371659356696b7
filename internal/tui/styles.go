package tui

import (
	"github.com/apeview/apeview/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// palette is the per-theme default color set; user config colors
// override individual entries.
type palette struct {
	title       string
	section     string
	keybind     string
	description string
	match       string
	errColor    string
	muted       string
}

var darkPalette = palette{
	title:       "#BDAE9D",
	section:     "#C58A4A",
	keybind:     "#C5656B",
	description: "#BDAE9D",
	match:       "#E5C07B",
	errColor:    "#E53935",
	muted:       "#888888",
}

var lightPalette = palette{
	title:       "#4A3B2E",
	section:     "#7F4A2B",
	keybind:     "#A0343B",
	description: "#4A3B2E",
	match:       "#9A6B00",
	errColor:    "#C62828",
	muted:       "#777777",
}

// styles holds the lipgloss styles derived from the theme and the user
// color overrides.
type styles struct {
	Title        lipgloss.Style
	Section      lipgloss.Style
	Keys         lipgloss.Style
	Desc         lipgloss.Style
	Match        lipgloss.Style
	Selected     lipgloss.Style
	Error        lipgloss.Style
	Footer       lipgloss.Style
	SearchPrompt lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	p := darkPalette
	if cfg.Theme == "light" {
		p = lightPalette
	}
	override := func(def, user string) lipgloss.Color {
		if user != "" {
			return lipgloss.Color(user)
		}
		return lipgloss.Color(def)
	}

	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(override(p.title, cfg.Colors.Title)),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(override(p.section, cfg.Colors.Section)),
		Keys: lipgloss.NewStyle().
			Foreground(override(p.keybind, cfg.Colors.Keybind)),
		Desc: lipgloss.NewStyle().
			Foreground(override(p.description, cfg.Colors.Description)),
		Match: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(override(p.match, cfg.Colors.Match)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(override(p.errColor, cfg.Colors.Error)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		SearchPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(override(p.match, cfg.Colors.Match)),
	}
}
