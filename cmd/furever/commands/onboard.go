package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/nav"
	"github.com/furevercare/furever/internal/state"
)

// OnboardCmd is the welcome quiz: pick a display name and a role. Both are
// stored as one identity; either flag left empty is prompted for.
type OnboardCmd struct {
	Name string `help:"Your display name"`
	Role string `help:"Your role: PetOwner, Veterinarian or Shelter"`
}

func (o *OnboardCmd) Run(g *Global) error {
	if id, ok := g.Store.Identity(); ok {
		fmt.Printf("You are already onboarded as %s (%s). Run 'furever reset' to retake the quiz.\n", id.Name, id.Role)
		return nil
	}

	name := o.Name
	if name == "" {
		var err error
		name, err = prompt("What should we call you? ")
		if err != nil {
			return err
		}
	}

	rawRole := o.Role
	if rawRole == "" {
		var err error
		rawRole, err = prompt("Are you a PetOwner, Veterinarian or Shelter? ")
		if err != nil {
			return err
		}
	}
	role, ok := state.ParseRole(rawRole)
	if !ok {
		return fmt.Errorf("unknown role %q (want PetOwner, Veterinarian or Shelter)", rawRole)
	}

	if err := g.Store.SetIdentity(name, role); err != nil {
		return err
	}

	id, _ := g.Store.Identity()
	g.Renderer.Header(id, true, g.Store.Visits())
	g.Renderer.Section("Welcome to the FurEver family! 🐾")

	fmt.Println("Where to go next:")
	for _, entry := range nav.Entries(role) {
		fmt.Printf("  %-10s %s\n", entry.Page, entry.Label)
	}
	return nil
}
