package state

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/furevercare/furever/internal/storage"
)

// Storage keys. The furEver_ prefix and the key names are kept verbatim from
// the web application so an existing profile keeps working.
const (
	keyUserName     = "furEver_userName"
	keyUserRole     = "furEver_userRole"
	keyPet          = "furEver_pet"
	keyFavorites    = "furEver_favorites"
	keyVisitorCount = "furEver_visitorCount"
	keyDarkMode     = "furEver_darkMode"
	keyFontSize     = "furEver_fontSize"
)

// ErrEmptyName is returned when onboarding submits a blank display name.
var ErrEmptyName = errors.New("display name must not be empty")

// Store is the single process-wide holder of visitor state. All reads are
// served from memory; every mutation is applied in memory first and then
// persisted best-effort. A failed write is logged and otherwise ignored: the
// session keeps its state, it just may not survive a restart.
type Store struct {
	medium storage.Medium

	mu        sync.RWMutex
	identity  *Identity
	pet       *PetProfile
	favorites []string // insertion order
	visits    int
	prefs     Preferences

	hooks     hooks
	sessionMu sync.Mutex
	counted   bool
}

// Open loads every slot from the medium, falling back to the documented
// default for anything missing or corrupt. It never fails on bad data; the
// only effect of a damaged profile is that the damaged slots reset.
func Open(medium storage.Medium) *Store {
	s := &Store{
		medium: medium,
		prefs: Preferences{
			FontSizePx: DefaultFontSize,
			Ambience:   AmbienceNone,
		},
	}

	// Identity materializes only when both slots are present and valid.
	if name, ok := getString(medium, keyUserName); ok {
		if rawRole, ok := getString(medium, keyUserRole); ok {
			if role, ok := ParseRole(rawRole); ok && name != "" {
				s.identity = &Identity{Name: name, Role: role}
			}
		}
	}

	var pet PetProfile
	if getJSON(medium, keyPet, &pet) {
		s.pet = &pet
	}

	var favorites []string
	if getJSON(medium, keyFavorites, &favorites) {
		s.favorites = favorites
	}

	// First-visit bootstrap: an absent or unparsable counter reinitializes to
	// 1 and is persisted immediately.
	if visits, ok := getInt(medium, keyVisitorCount); ok {
		s.visits = visits
	} else {
		s.visits = 1
		s.persist(keyVisitorCount, "1")
	}

	if dark, ok := getBool(medium, keyDarkMode); ok {
		s.prefs.Dark = dark
	}
	if px, ok := getInt(medium, keyFontSize); ok {
		s.prefs.FontSizePx = px
	}

	return s
}

// Subscribe registers a hook for change notifications. Not safe to call
// concurrently with mutations; register subscribers during startup.
func (s *Store) Subscribe(h Hook) {
	s.hooks = append(s.hooks, h)
}

// Identity returns the visitor identity and whether onboarding has completed.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// SetIdentity records the onboarding result. The trimmed name must be
// non-empty; the role is persisted only when valid, matching the web
// application's write behavior.
func (s *Store) SetIdentity(name string, role Role) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	s.identity = &Identity{Name: name, Role: role}
	s.mu.Unlock()

	s.persist(keyUserName, name)
	if role.Valid() {
		s.persist(keyUserRole, string(role))
	}
	s.hooks.notify(Change{Slot: SlotIdentity})
	return nil
}

// PetProfile returns the stored pet profile, if any.
func (s *Store) PetProfile() (PetProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pet == nil {
		return PetProfile{}, false
	}
	return *s.pet, true
}

// SetPetProfile overwrites the pet profile unconditionally. Field validation
// is the submitting form's job, not the store's.
func (s *Store) SetPetProfile(p PetProfile) {
	s.mu.Lock()
	s.pet = &p
	s.mu.Unlock()

	s.persistJSON(keyPet, p)
	s.hooks.notify(Change{Slot: SlotPetProfile})
}

// Favorites returns the favorite record ids in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// FavoriteSet returns the favorites as a membership set for query filters.
func (s *Store) FavoriteSet() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[string]struct{}, len(s.favorites))
	for _, id := range s.favorites {
		set[id] = struct{}{}
	}
	return set
}

// IsFavorite reports whether id is currently favorited.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fav := range s.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// ToggleFavorite adds id if absent and removes it if present, returning
// whether id is a favorite afterwards.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	added := true
	next := make([]string, 0, len(s.favorites)+1)
	for _, fav := range s.favorites {
		if fav == id {
			added = false
			continue
		}
		next = append(next, fav)
	}
	if added {
		next = append(next, id)
	}
	s.favorites = next
	s.mu.Unlock()

	s.persistJSON(keyFavorites, next)
	s.hooks.notify(Change{Slot: SlotFavorites})
	return added
}

// Visits returns the current visit counter.
func (s *Store) Visits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits
}

// IncrementVisits bumps the counter by one and persists it. Callers own the
// once-per-session policy; use StartSession for the gated form.
func (s *Store) IncrementVisits() int {
	s.mu.Lock()
	s.visits++
	visits := s.visits
	s.mu.Unlock()

	s.persist(keyVisitorCount, strconv.Itoa(visits))
	s.hooks.notify(Change{Slot: SlotVisits})
	return visits
}

// StartSession applies the visit-counter gate: on a fresh activation the
// counter increments once, and only while the visitor has not completed
// onboarding. Repeated calls on the same Store are no-ops, which protects the
// count against accidental double bootstrap.
func (s *Store) StartSession() {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	if s.counted {
		return
	}
	s.counted = true

	if _, onboarded := s.Identity(); onboarded {
		return
	}
	s.IncrementVisits()
}

// Preferences returns the current display preferences.
func (s *Store) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetTheme switches between dark and light and persists the choice.
func (s *Store) SetTheme(dark bool) {
	s.mu.Lock()
	s.prefs.Dark = dark
	s.mu.Unlock()

	s.persistJSON(keyDarkMode, dark)
	s.hooks.notify(Change{Slot: SlotTheme})
}

// SetFontSize records the base font size in pixels and persists it.
func (s *Store) SetFontSize(px int) {
	s.mu.Lock()
	s.prefs.FontSizePx = px
	s.mu.Unlock()

	s.persist(keyFontSize, strconv.Itoa(px))
	s.hooks.notify(Change{Slot: SlotFontSize})
}

// SetAmbience records the ambience track for this session only.
func (s *Store) SetAmbience(track AmbienceTrack) {
	s.mu.Lock()
	s.prefs.Ambience = track
	s.mu.Unlock()

	s.hooks.notify(Change{Slot: SlotAmbience})
}

// ResetIdentity is the "retake quiz" action: it clears identity and pet
// profile from memory and the medium. Favorites, preferences and the visit
// counter have their own lifecycle and are untouched.
func (s *Store) ResetIdentity() {
	s.mu.Lock()
	s.identity = nil
	s.pet = nil
	s.mu.Unlock()

	s.remove(keyUserName)
	s.remove(keyUserRole)
	s.remove(keyPet)
	s.hooks.notify(Change{Slot: SlotIdentity})
	s.hooks.notify(Change{Slot: SlotPetProfile})
}

// persist writes a raw string slot, logging failures instead of surfacing
// them: in-memory state is already updated and stays authoritative for the
// session.
func (s *Store) persist(key, value string) {
	if err := s.medium.Set(key, value); err != nil {
		slog.Debug("State write failed", "key", key, "error", err)
	}
}

func (s *Store) persistJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Debug("State encode failed", "key", key, "error", err)
		return
	}
	s.persist(key, string(data))
}

func (s *Store) remove(key string) {
	if err := s.medium.Delete(key); err != nil {
		slog.Debug("State delete failed", "key", key, "error", err)
	}
}
