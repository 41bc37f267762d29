// Package ui renders the application's pages for the terminal. It owns the
// light/dark palettes and reacts to preference changes coming out of the
// state store, which is the terminal equivalent of the site-wide theme and
// font-size toggles.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette, lifted from the site's design system.
var (
	// Light mode
	LightForeground = lipgloss.Color("#5c364f") // mauve-900
	LightAccent     = lipgloss.Color("#9e5a8a") // mauve-600
	LightHighlight  = lipgloss.Color("#16a34a") // mint-600
	LightMuted      = lipgloss.Color("#a8785c") // cream-800
	LightBorder     = lipgloss.Color("#dbbfd3") // mauve-300

	// Dark mode
	DarkForeground = lipgloss.Color("#f4eef2") // mauve-100
	DarkAccent     = lipgloss.Color("#c899bb") // mauve-400
	DarkHighlight  = lipgloss.Color("#4ade85") // mint-400
	DarkMuted      = lipgloss.Color("#f0d4b8") // cream-400
	DarkBorder     = lipgloss.Color("#6e3f5f") // mauve-800

	// Semantic colors, same in both modes
	Favorite = lipgloss.Color("#ed8444") // primary-500
	SkyInfo  = lipgloss.Color("#0ea5e9") // sky-500
)

// Theme holds the active color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the default light scheme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Accent:     LightAccent,
		Highlight:  LightHighlight,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark scheme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Highlight:  DarkHighlight,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeFor picks the scheme for a dark-mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// styles derives the lipgloss styles for a theme at a given content width.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	card     lipgloss.Style
	cardName lipgloss.Style
	group    lipgloss.Style
	muted    lipgloss.Style
	price    lipgloss.Style
	favorite lipgloss.Style
	ticker   lipgloss.Style
}

func newStyles(t Theme, width int) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		header: lipgloss.NewStyle().
			Foreground(t.Foreground).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(width),
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(width),
		cardName: lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		group:    lipgloss.NewStyle().Foreground(t.Highlight),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		price:    lipgloss.NewStyle().Bold(true).Foreground(t.Highlight),
		favorite: lipgloss.NewStyle().Foreground(Favorite),
		ticker:   lipgloss.NewStyle().Italic(true).Foreground(SkyInfo),
	}
}
