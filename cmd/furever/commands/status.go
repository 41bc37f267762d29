package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/content"
	"github.com/furevercare/furever/internal/nav"
)

// StatusCmd shows the visitor's identity, pet, favorites and settings.
type StatusCmd struct{}

func (s *StatusCmd) Run(g *Global) error {
	id, onboarded := g.Store.Identity()
	g.Renderer.Header(id, onboarded, g.Store.Visits())
	g.Renderer.Ticker(content.Announcements())

	if !onboarded {
		fmt.Println("\nYou haven't taken the welcome quiz yet. Run 'furever onboard' to get started.")
		return nil
	}

	if pet, ok := g.Store.PetProfile(); ok {
		fmt.Printf("\nYour pet: %s, a %s (%s), age %s\n", pet.Name, pet.Species, pet.Breed, pet.Age)
	}

	favorites := g.Store.Favorites()
	fmt.Printf("Favorites: %d\n", len(favorites))

	prefs := g.Store.Preferences()
	theme := "light"
	if prefs.Dark {
		theme = "dark"
	}
	fmt.Printf("Theme: %s · Font size: %dpx · Ambience: %s\n", theme, prefs.FontSizePx, prefs.Ambience)

	fmt.Println("\nYour pages:")
	for _, entry := range nav.Entries(id.Role) {
		fmt.Printf("  %-10s %s\n", entry.Page, entry.Label)
	}
	return nil
}
