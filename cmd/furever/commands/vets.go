package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/catalog"
)

// VetsCmd renders the veterinarian directory. Search also covers locations,
// so "portland" finds every vet practicing there.
type VetsCmd struct {
	Term           string `arg:"" optional:"" help:"Free-text search over name, location and specialization"`
	Specialization string `default:"All" help:"Specialization filter"`
	Sort           string `default:"name" help:"Sort key: name or empty for directory order"`

	Specializations bool `help:"List the available specializations and exit"`
}

func (v *VetsCmd) Run(g *Global) error {
	fields := catalog.VetFields()

	if v.Specializations {
		for _, group := range catalog.Groups(g.Catalog.Vets, fields) {
			fmt.Println(group)
		}
		return nil
	}

	results := catalog.Query(g.Catalog.Vets, fields, catalog.Params{
		Term:      v.Term,
		Group:     v.Specialization,
		Favorites: g.Store.FavoriteSet(),
		Sort:      catalog.ParseSortKey(v.Sort),
	})

	g.Renderer.Section("Veterinarian Directory 🩺")
	g.Renderer.Summary(len(results), len(g.Catalog.Vets), summaryNote(false, v.Specialization))

	if len(results) == 0 {
		fmt.Println("No veterinarians found. Try a broader search.")
		return nil
	}
	for _, vet := range results {
		g.Renderer.VetCard(vet, g.Store.IsFavorite(vet.ID))
	}
	return nil
}
