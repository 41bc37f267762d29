package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/state"
)

// PrefsCmd adjusts the display preferences. Theme and font size persist
// across runs; ambience only lasts for the current process.
type PrefsCmd struct {
	Theme    PrefsThemeCmd    `cmd:"" help:"Switch between the light and dark theme"`
	FontSize PrefsFontSizeCmd `cmd:"" name:"font-size" help:"Set the base font size in pixels"`
	Ambience PrefsAmbienceCmd `cmd:"" help:"Pick a background ambience track"`
	Show     PrefsShowCmd     `cmd:"" default:"1" help:"Show the current preferences"`
}

// PrefsThemeCmd persists the theme choice.
type PrefsThemeCmd struct {
	Mode string `arg:"" enum:"light,dark" help:"light or dark"`
}

func (p *PrefsThemeCmd) Run(g *Global) error {
	g.Store.SetTheme(p.Mode == "dark")
	fmt.Printf("Theme set to %s.\n", p.Mode)
	return nil
}

// PrefsFontSizeCmd persists the base font size.
type PrefsFontSizeCmd struct {
	Px int `arg:"" help:"Font size in pixels"`
}

func (p *PrefsFontSizeCmd) Run(g *Global) error {
	if p.Px < 10 || p.Px > 32 {
		return fmt.Errorf("font size %d out of range (10..32)", p.Px)
	}
	g.Store.SetFontSize(p.Px)
	fmt.Printf("Font size set to %dpx.\n", p.Px)
	return nil
}

// PrefsAmbienceCmd selects the ambience track for this process only.
type PrefsAmbienceCmd struct {
	Track string `arg:"" help:"none, cafe, park or fireplace"`
}

func (p *PrefsAmbienceCmd) Run(g *Global) error {
	track := state.ParseAmbience(p.Track)
	g.Store.SetAmbience(track)
	if track == state.AmbienceNone {
		fmt.Println("Ambience off.")
	} else {
		fmt.Printf("Ambience set to %s for this session.\n", track)
	}
	return nil
}

// PrefsShowCmd prints the active preferences.
type PrefsShowCmd struct{}

func (p *PrefsShowCmd) Run(g *Global) error {
	prefs := g.Store.Preferences()

	theme := "light"
	if prefs.Dark {
		theme = "dark"
	}
	fmt.Printf("Theme:     %s\n", theme)
	fmt.Printf("Font size: %dpx\n", prefs.FontSizePx)
	fmt.Printf("Ambience:  %s (not persisted)\n", prefs.Ambience)
	return nil
}
