// Package content carries the informational content the application renders:
// care tips, event announcements and the static page blurbs. Everything is
// compiled into the binary; nothing here is user state.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tips.yaml
var tipsYAML []byte

// Tip is one care tip card. Body is Markdown; render it with RenderText.
type Tip struct {
	Species string `yaml:"species"`
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
}

// Tips returns the care tips for a species ("" returns all). The General
// tips are always included since they apply to every pet.
func Tips(species string) ([]Tip, error) {
	var all []Tip
	if err := yaml.Unmarshal(tipsYAML, &all); err != nil {
		return nil, fmt.Errorf("parse tips: %w", err)
	}
	if species == "" {
		return all, nil
	}

	out := make([]Tip, 0, len(all))
	for _, tip := range all {
		if strings.EqualFold(tip.Species, species) || tip.Species == "General" {
			out = append(out, tip)
		}
	}
	return out, nil
}

// Announcements are the scrolling ticker lines shown across the site.
func Announcements() []string {
	return []string{
		"Adoption drive this weekend at Sunny Paws Shelter",
		"New grooming essentials now in the product showcase",
		"Free vaccination camp for shelter pets every first Sunday",
		"Share your story on the feedback page",
	}
}

// About is the about-page blurb, Markdown.
const About = `# About FurEver Care

FurEver Care connects **pet owners**, **veterinarians** and **shelters** in
one place: browse trusted products, find a vet, and help a shelter pet find
its forever home.

- Curated product showcase with favorites
- Adoption gallery from partner shelters
- Veterinarian directory searchable by specialization and location
`

// Contact is the contact-page blurb, Markdown.
const Contact = `# Contact

Reach the FurEver Care team:

- Email: hello@furever.care
- Phone: (555) 010-0199
- Mail: 42 Paw Lane, Portland, OR
`
