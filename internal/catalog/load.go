package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// File names looked up inside a data directory.
const (
	productsFile  = "products.yaml"
	adoptionsFile = "adoptions.yaml"
	vetsFile      = "vets.yaml"
)

// Load reads the catalog. With an empty dataDir the seed data compiled into
// the binary is used; otherwise the three YAML files are read from dataDir.
// Collections keep their file order, which is the stable display order every
// query starts from.
func Load(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		return loadEmbedded()
	}
	return loadDir(dataDir)
}

func loadEmbedded() (*Catalog, error) {
	var c Catalog
	for _, f := range []struct {
		name string
		into any
	}{
		{productsFile, &c.Products},
		{adoptionsFile, &c.Adoptions},
		{vetsFile, &c.Vets},
	} {
		data, err := seedFS.ReadFile("seed/" + f.name)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.into); err != nil {
			return nil, fmt.Errorf("parse embedded %s: %w", f.name, err)
		}
	}
	return &c, nil
}

func loadDir(dir string) (*Catalog, error) {
	var c Catalog
	for _, f := range []struct {
		name string
		into any
	}{
		{productsFile, &c.Products},
		{adoptionsFile, &c.Adoptions},
		{vetsFile, &c.Vets},
	} {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			if os.IsNotExist(err) {
				// A partial data directory is fine; the missing
				// collection is simply empty.
				continue
			}
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.into); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	return &c, nil
}
