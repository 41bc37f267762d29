// Package catalog holds the static record collections the application renders
// (products, adoption listings, veterinarian directory) and the query engine
// that filters, searches and sorts them. Records are immutable after load.
package catalog

// Product is a shop showcase item.
type Product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Location    string  `yaml:"location,omitempty"`
	Website     string  `yaml:"website,omitempty"`
}

// AdoptionListing is a pet available for adoption.
type AdoptionListing struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Species     string `yaml:"species"`
	Breed       string `yaml:"breed"`
	Age         string `yaml:"age"`
	Description string `yaml:"description"`
	Shelter     string `yaml:"shelter,omitempty"`
}

// VetProfile is a veterinarian directory entry.
type VetProfile struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Specialization string `yaml:"specialization"`
	Location       string `yaml:"location"`
	Phone          string `yaml:"phone,omitempty"`
	Hours          string `yaml:"hours,omitempty"`
}

// Catalog bundles the three record collections, in their source file order.
type Catalog struct {
	Products  []Product         `yaml:"products"`
	Adoptions []AdoptionListing `yaml:"adoptions"`
	Vets      []VetProfile      `yaml:"vets"`
}

// ProductFields adapts Product to the query engine.
func ProductFields() Fields[Product] {
	return Fields[Product]{
		ID:          func(p Product) string { return p.ID },
		Name:        func(p Product) string { return p.Name },
		Group:       func(p Product) string { return p.Category },
		Description: func(p Product) string { return p.Description },
		Price:       func(p Product) float64 { return p.Price },
	}
}

// AdoptionFields adapts AdoptionListing to the query engine; the grouping
// dimension is the species.
func AdoptionFields() Fields[AdoptionListing] {
	return Fields[AdoptionListing]{
		ID:          func(a AdoptionListing) string { return a.ID },
		Name:        func(a AdoptionListing) string { return a.Name },
		Group:       func(a AdoptionListing) string { return a.Species },
		Description: func(a AdoptionListing) string { return a.Description },
	}
}

// VetFields adapts VetProfile to the query engine; the grouping dimension is
// the specialization, and free-text search also covers the location.
func VetFields() Fields[VetProfile] {
	return Fields[VetProfile]{
		ID:          func(v VetProfile) string { return v.ID },
		Name:        func(v VetProfile) string { return v.Name },
		Group:       func(v VetProfile) string { return v.Specialization },
		Description: func(v VetProfile) string { return v.Location },
	}
}
