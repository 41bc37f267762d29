package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/content"
)

// TipsCmd renders the pet care tips. Without --species it follows the pet
// profile's species, falling back to all tips.
type TipsCmd struct {
	Species string `help:"Filter tips by species (Dog, Cat, ...)"`
}

func (t *TipsCmd) Run(g *Global) error {
	species := t.Species
	if species == "" {
		if profile, ok := g.Store.PetProfile(); ok {
			species = profile.Species
		}
	}

	tips, err := content.Tips(species)
	if err != nil {
		return err
	}

	title := "Pet Care Tips 💡"
	if species != "" {
		title = fmt.Sprintf("Pet Care Tips for %s Friends 💡", species)
	}
	g.Renderer.Section(title)

	for _, tip := range tips {
		fmt.Printf("%s (%s)\n", tip.Title, tip.Species)
		g.Renderer.Text(content.RenderText([]byte(tip.Body)))
	}
	return nil
}
