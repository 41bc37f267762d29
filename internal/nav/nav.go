// Package nav maps a visitor role to its navigation entries. The list is a
// pure function of the role; there is no shared mutable menu.
package nav

import "github.com/furevercare/furever/internal/state"

// Page tags a navigable destination.
type Page string

const (
	PageHome      Page = "home"
	PageDashboard Page = "dashboard"
	PageProducts  Page = "products"
	PageAbout     Page = "about"
	PageContact   Page = "contact"
	PageFeedback  Page = "feedback"
)

// Entry is one navigation item.
type Entry struct {
	Page  Page
	Label string
}

// Entries returns the fixed navigation list for role. An unset or invalid
// role yields the anonymous list (home and the informational pages only);
// role-specific entries slot in after Home, matching the web application's
// menu order.
func Entries(role state.Role) []Entry {
	base := []Entry{{PageHome, "Home"}}

	switch role {
	case state.RolePetOwner:
		base = append(base,
			Entry{PageDashboard, "Dashboard"},
			Entry{PageProducts, "Products"},
		)
	case state.RoleVeterinarian, state.RoleShelter:
		base = append(base, Entry{PageDashboard, "Dashboard"})
	}

	return append(base,
		Entry{PageAbout, "About"},
		Entry{PageContact, "Contact"},
		Entry{PageFeedback, "Feedback"},
	)
}
