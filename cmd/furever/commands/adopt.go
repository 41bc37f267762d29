package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/catalog"
)

// AdoptCmd renders the adoption gallery, filterable by species.
type AdoptCmd struct {
	Term      string `arg:"" optional:"" help:"Free-text search over name, description and species"`
	Species   string `default:"All" help:"Species filter (Dog, Cat, Rabbit or All)"`
	Sort      string `default:"" help:"Sort key: name or empty for gallery order"`
	Favorites bool   `help:"Show favorites only"`
}

func (a *AdoptCmd) Run(g *Global) error {
	fields := catalog.AdoptionFields()

	results := catalog.Query(g.Catalog.Adoptions, fields, catalog.Params{
		Term:          a.Term,
		Group:         a.Species,
		FavoritesOnly: a.Favorites,
		Favorites:     g.Store.FavoriteSet(),
		Sort:          catalog.ParseSortKey(a.Sort),
	})

	g.Renderer.Section("Find Your New Best Friend 🏠")
	g.Renderer.Summary(len(results), len(g.Catalog.Adoptions), summaryNote(a.Favorites, a.Species))

	if len(results) == 0 {
		fmt.Println("No pets match right now. Check back soon!")
		return nil
	}
	for _, listing := range results {
		g.Renderer.AdoptionCard(listing, g.Store.IsFavorite(listing.ID))
	}
	return nil
}
