package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/furevercare/furever/internal/catalog"
	"github.com/furevercare/furever/internal/content"
)

// KioskCmd renders the listings and keeps them current: it watches the
// catalog directory and re-renders whenever a data file changes. Ctrl-C
// stops it. Requires --data-dir (the built-in seed data never changes).
type KioskCmd struct {
	Page string `default:"shop" enum:"shop,adopt,vets" help:"Which listing to show"`
}

func (k *KioskCmd) Run(g *Global) error {
	if g.Cfg.DataDir == "" {
		return fmt.Errorf("kiosk needs --data-dir: the built-in catalog never changes")
	}

	var mu sync.Mutex
	render := func(cat *catalog.Catalog) {
		mu.Lock()
		defer mu.Unlock()

		identity, onboarded := g.Store.Identity()
		g.Renderer.Header(identity, onboarded, g.Store.Visits())
		g.Renderer.Ticker(content.Announcements())
		k.renderPage(g, cat)
	}

	watcher, err := catalog.NewWatcher(g.Cfg.DataDir, func(cat *catalog.Catalog) {
		slog.Info("Catalog reloaded", "dir", g.Cfg.DataDir)
		render(cat)
	})
	if err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Start(ctx); err != nil {
		return err
	}

	render(g.Catalog)
	<-ctx.Done()
	fmt.Println("\nBye!")
	return nil
}

func (k *KioskCmd) renderPage(g *Global, cat *catalog.Catalog) {
	favorites := g.Store.FavoriteSet()

	switch k.Page {
	case "adopt":
		results := catalog.Query(cat.Adoptions, catalog.AdoptionFields(), catalog.Params{Sort: catalog.SortName})
		g.Renderer.Section("Find Your New Best Friend 🏠")
		g.Renderer.Summary(len(results), len(cat.Adoptions), "")
		for _, a := range results {
			_, fav := favorites[a.ID]
			g.Renderer.AdoptionCard(a, fav)
		}
	case "vets":
		results := catalog.Query(cat.Vets, catalog.VetFields(), catalog.Params{Sort: catalog.SortName})
		g.Renderer.Section("Veterinarian Directory 🩺")
		g.Renderer.Summary(len(results), len(cat.Vets), "")
		for _, v := range results {
			_, fav := favorites[v.ID]
			g.Renderer.VetCard(v, fav)
		}
	default:
		results := catalog.Query(cat.Products, catalog.ProductFields(), catalog.Params{Sort: catalog.SortName})
		g.Renderer.Section("Pet Products Showcase 🛍️")
		g.Renderer.Summary(len(results), len(cat.Products), "")
		for _, p := range results {
			_, fav := favorites[p.ID]
			g.Renderer.ProductCard(p, fav)
		}
	}
}
