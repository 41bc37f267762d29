// Package state owns the durable, cross-command visitor state: identity,
// pet profile, favorites, visit counter and display preferences. A single
// Store instance is shared by every consumer in a process; all persistence
// goes through a storage.Medium under the furEver_ key namespace.
package state

import "strings"

// Role classifies the visitor once onboarding completes.
type Role string

const (
	RolePetOwner     Role = "PetOwner"
	RoleVeterinarian Role = "Veterinarian"
	RoleShelter      Role = "Shelter"
)

// ParseRole maps a stored or user-supplied label to a Role. It accepts the
// spaced spelling ("Pet Owner") the web application persisted historically.
func ParseRole(s string) (Role, bool) {
	switch strings.ReplaceAll(strings.TrimSpace(s), " ", "") {
	case "PetOwner", "petowner", "petOwner":
		return RolePetOwner, true
	case "Veterinarian", "veterinarian":
		return RoleVeterinarian, true
	case "Shelter", "shelter":
		return RoleShelter, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RolePetOwner || r == RoleVeterinarian || r == RoleShelter
}

// Identity is the visitor's chosen display name and role. It only exists as a
// pair: the onboarding flow sets both atomically, and a load only materializes
// an Identity when both slots are present and the role parses.
type Identity struct {
	Name string
	Role Role
}

// PetProfile is the pet owner's pet, all fields free text as submitted.
type PetProfile struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`
}

// AmbienceTrack is the background sound selection. It is deliberately not
// persisted: the web application never stored it either, so a restart always
// comes up silent.
type AmbienceTrack string

const (
	AmbienceNone      AmbienceTrack = "None"
	AmbienceCafe      AmbienceTrack = "Cafe"
	AmbiencePark      AmbienceTrack = "Park"
	AmbienceFireplace AmbienceTrack = "Fireplace"
)

// ParseAmbience maps a label to an AmbienceTrack, defaulting to AmbienceNone.
func ParseAmbience(s string) AmbienceTrack {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cafe", "café":
		return AmbienceCafe
	case "park":
		return AmbiencePark
	case "fireplace":
		return AmbienceFireplace
	default:
		return AmbienceNone
	}
}

// Preferences are the display settings. Theme and font size persist; ambience
// is process-local.
type Preferences struct {
	Dark       bool
	FontSizePx int
	Ambience   AmbienceTrack
}

// DefaultFontSize is the base font size used when no preference is stored.
const DefaultFontSize = 16
