package commands

import (
	"fmt"
)

// FavCmd manages the favorites set across all three catalogs.
type FavCmd struct {
	Toggle FavToggleCmd `cmd:"" help:"Add or remove a record from favorites"`
	List   FavListCmd   `cmd:"" help:"List favorites in the order they were added"`
}

// FavToggleCmd toggles one record id.
type FavToggleCmd struct {
	ID string `arg:"" help:"Record id (e.g. p3, a1, v2)"`
}

func (f *FavToggleCmd) Run(g *Global) error {
	name, ok := lookupName(g, f.ID)
	if !ok {
		return fmt.Errorf("no catalog record with id %q", f.ID)
	}

	if g.Store.ToggleFavorite(f.ID) {
		fmt.Printf("Added %s (%s) to favorites ♥\n", name, f.ID)
	} else {
		fmt.Printf("Removed %s (%s) from favorites\n", name, f.ID)
	}
	return nil
}

// FavListCmd prints the favorites with their display names resolved.
type FavListCmd struct{}

func (f *FavListCmd) Run(g *Global) error {
	favorites := g.Store.Favorites()
	if len(favorites) == 0 {
		fmt.Println("No favorites yet. Toggle one with 'furever fav toggle <id>'.")
		return nil
	}

	for _, id := range favorites {
		name, ok := lookupName(g, id)
		if !ok {
			// The record may have left the catalog since it was favorited.
			name = "(no longer listed)"
		}
		fmt.Printf("  %-4s %s\n", id, name)
	}
	return nil
}

// lookupName resolves a record id to its display name across the catalogs.
func lookupName(g *Global, id string) (string, bool) {
	for _, p := range g.Catalog.Products {
		if p.ID == id {
			return p.Name, true
		}
	}
	for _, a := range g.Catalog.Adoptions {
		if a.ID == id {
			return a.Name, true
		}
	}
	for _, v := range g.Catalog.Vets {
		if v.ID == id {
			return v.Name, true
		}
	}
	return "", false
}
