package commands

import (
	"fmt"

	"github.com/furevercare/furever/internal/state"
)

// PetCmd manages the pet profile attached to the current identity.
type PetCmd struct {
	Set  PetSetCmd  `cmd:"" help:"Create or update the pet profile"`
	Show PetShowCmd `cmd:"" help:"Show the pet profile"`
}

// PetSetCmd writes the pet profile. Only pet owners keep one.
type PetSetCmd struct {
	Name    string `help:"Pet name" required:""`
	Species string `help:"Species (Dog, Cat, ...)" required:""`
	Breed   string `help:"Breed" default:""`
	Age     string `help:"Age, free text (e.g. '3 years')" default:""`
}

func (p *PetSetCmd) Run(g *Global) error {
	identity, onboarded := g.Store.Identity()
	if !onboarded {
		return fmt.Errorf("not onboarded yet, run 'furever onboard' first")
	}
	if identity.Role != state.RolePetOwner {
		return fmt.Errorf("pet profiles are only kept for the %s role", state.RolePetOwner)
	}

	profile := state.PetProfile{
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		Age:     p.Age,
	}
	g.Store.SetPetProfile(profile)

	fmt.Printf("Saved pet profile for %s the %s.\n", profile.Name, profile.Species)
	return nil
}

// PetShowCmd prints the stored pet profile, if any.
type PetShowCmd struct{}

func (p *PetShowCmd) Run(g *Global) error {
	profile, ok := g.Store.PetProfile()
	if !ok {
		fmt.Println("No pet profile yet. Add one with 'furever pet set --name ... --species ...'.")
		return nil
	}

	g.Renderer.Section("Pet Profile 🐾")
	fmt.Printf("  Name:    %s\n", profile.Name)
	fmt.Printf("  Species: %s\n", profile.Species)
	if profile.Breed != "" {
		fmt.Printf("  Breed:   %s\n", profile.Breed)
	}
	if profile.Age != "" {
		fmt.Printf("  Age:     %s\n", profile.Age)
	}
	return nil
}
