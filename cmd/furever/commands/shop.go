package commands

import (
	"fmt"
	"strings"

	"github.com/furevercare/furever/internal/catalog"
)

// ShopCmd renders the product showcase with search, category filter,
// favorites filter and sorting.
type ShopCmd struct {
	Term      string `arg:"" optional:"" help:"Free-text search over name, description and category"`
	Category  string `default:"All" help:"Category filter (use 'furever shop --categories' to list)"`
	Sort      string `default:"name" help:"Sort key: name, price-low, price-high or category"`
	Favorites bool   `help:"Show favorites only"`

	Categories bool `help:"List the available categories and exit"`
}

func (s *ShopCmd) Run(g *Global) error {
	fields := catalog.ProductFields()

	if s.Categories {
		for _, group := range catalog.Groups(g.Catalog.Products, fields) {
			fmt.Println(group)
		}
		return nil
	}

	results := catalog.Query(g.Catalog.Products, fields, catalog.Params{
		Term:          s.Term,
		Group:         s.Category,
		FavoritesOnly: s.Favorites,
		Favorites:     g.Store.FavoriteSet(),
		Sort:          catalog.ParseSortKey(s.Sort),
	})

	g.Renderer.Section("Pet Products Showcase 🛍️")
	g.Renderer.Summary(len(results), len(g.Catalog.Products), summaryNote(s.Favorites, s.Category))

	if len(results) == 0 {
		fmt.Println("No products found. Try adjusting your search terms or filters.")
		return nil
	}
	for _, p := range results {
		g.Renderer.ProductCard(p, g.Store.IsFavorite(p.ID))
	}
	return nil
}

func summaryNote(favoritesOnly bool, group string) string {
	var parts []string
	if favoritesOnly {
		parts = append(parts, "(favorites only)")
	}
	if group != "" && group != catalog.AllGroups {
		parts = append(parts, "in "+group)
	}
	return strings.Join(parts, " ")
}
