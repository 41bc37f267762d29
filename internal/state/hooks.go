package state

// Slot identifies which piece of visitor state changed.
type Slot string

const (
	SlotIdentity   Slot = "identity"
	SlotPetProfile Slot = "pet_profile"
	SlotFavorites  Slot = "favorites"
	SlotVisits     Slot = "visits"
	SlotTheme      Slot = "theme"
	SlotFontSize   Slot = "font_size"
	SlotAmbience   Slot = "ambience"
)

// Change describes a state mutation fanned out to subscribers. Notification is
// one-way: subscribers observe, they cannot veto or fail a mutation.
type Change struct {
	Slot Slot
}

// Hook receives state change notifications.
type Hook interface {
	Notify(change Change)
}

// HookFunc allows plain functions to satisfy Hook.
type HookFunc func(change Change)

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(change Change) {
	if fn == nil {
		return
	}
	fn(change)
}

// hooks fans out changes to zero or more subscribers in registration order.
type hooks []Hook

func (h hooks) notify(change Change) {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		hook.Notify(change)
	}
}
