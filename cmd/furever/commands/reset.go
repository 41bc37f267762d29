package commands

import (
	"fmt"
	"strings"
)

// ResetCmd clears identity and pet profile (the "retake quiz" action).
// Favorites, preferences and the visit counter are kept.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt"`
}

func (r *ResetCmd) Run(g *Global) error {
	if _, ok := g.Store.Identity(); !ok {
		fmt.Println("Nothing to reset: you haven't onboarded yet.")
		return nil
	}

	if !r.Yes {
		answer, err := prompt("Forget your name, role and pet profile? Favorites are kept. [y/N] ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	g.Store.ResetIdentity()
	fmt.Println("Done. Run 'furever onboard' whenever you're ready to retake the quiz.")
	return nil
}
