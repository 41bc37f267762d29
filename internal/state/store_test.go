package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furevercare/furever/internal/storage"
)

func TestIdentityRoundTrip(t *testing.T) {
	medium := storage.NewMemory()

	store := Open(medium)
	require.NoError(t, store.SetIdentity("Sam", RoleShelter))

	// A fresh load cycle over the same medium reconstructs an equal Identity.
	reloaded := Open(medium)
	id, ok := reloaded.Identity()
	require.True(t, ok)
	assert.Equal(t, Identity{Name: "Sam", Role: RoleShelter}, id)
}

func TestSetIdentityTrimsAndRejectsEmpty(t *testing.T) {
	store := Open(storage.NewMemory())

	assert.ErrorIs(t, store.SetIdentity("   ", RolePetOwner), ErrEmptyName)
	_, ok := store.Identity()
	assert.False(t, ok)

	require.NoError(t, store.SetIdentity("  Ana  ", RolePetOwner))
	id, ok := store.Identity()
	require.True(t, ok)
	assert.Equal(t, "Ana", id.Name)
}

func TestIdentityRequiresBothSlots(t *testing.T) {
	t.Run("name without role", func(t *testing.T) {
		medium := storage.NewMemory()
		require.NoError(t, medium.Set("furEver_userName", "Sam"))

		_, ok := Open(medium).Identity()
		assert.False(t, ok)
	})

	t.Run("unknown role value", func(t *testing.T) {
		medium := storage.NewMemory()
		require.NoError(t, medium.Set("furEver_userName", "Sam"))
		require.NoError(t, medium.Set("furEver_userRole", "Wizard"))

		_, ok := Open(medium).Identity()
		assert.False(t, ok)
	})

	t.Run("legacy spaced role", func(t *testing.T) {
		medium := storage.NewMemory()
		require.NoError(t, medium.Set("furEver_userName", "Sam"))
		require.NoError(t, medium.Set("furEver_userRole", "Pet Owner"))

		id, ok := Open(medium).Identity()
		require.True(t, ok)
		assert.Equal(t, RolePetOwner, id.Role)
	})
}

func TestToggleFavoriteParity(t *testing.T) {
	store := Open(storage.NewMemory())

	assert.True(t, store.ToggleFavorite("p1"))
	assert.True(t, store.ToggleFavorite("p2"))
	assert.False(t, store.ToggleFavorite("p1")) // second toggle removes
	assert.True(t, store.ToggleFavorite("p1"))  // third re-adds

	// Even toggle counts cancel out, odd counts remain, insertion order kept.
	assert.Equal(t, []string{"p2", "p1"}, store.Favorites())
	assert.True(t, store.IsFavorite("p2"))
	assert.False(t, store.IsFavorite("p3"))
}

func TestFavoritesSurviveReload(t *testing.T) {
	medium := storage.NewMemory()

	store := Open(medium)
	store.ToggleFavorite("a")
	store.ToggleFavorite("b")
	store.ToggleFavorite("a")

	assert.Equal(t, []string{"b"}, Open(medium).Favorites())
}

func TestMalformedFavoritesDefaultsToEmpty(t *testing.T) {
	medium := storage.NewMemory()
	require.NoError(t, medium.Set("furEver_favorites", "definitely-not-json"))

	store := Open(medium)
	assert.Empty(t, store.Favorites())
}

func TestVisitCounterBootstrap(t *testing.T) {
	t.Run("absent initializes to one and persists", func(t *testing.T) {
		medium := storage.NewMemory()
		store := Open(medium)

		assert.Equal(t, 1, store.Visits())
		raw, ok := medium.Get("furEver_visitorCount")
		require.True(t, ok)
		assert.Equal(t, "1", raw)
	})

	t.Run("non-numeric reinitializes to one", func(t *testing.T) {
		medium := storage.NewMemory()
		require.NoError(t, medium.Set("furEver_visitorCount", "lots"))

		assert.Equal(t, 1, Open(medium).Visits())
	})

	t.Run("present value is kept", func(t *testing.T) {
		medium := storage.NewMemory()
		require.NoError(t, medium.Set("furEver_visitorCount", "41"))

		store := Open(medium)
		assert.Equal(t, 41, store.Visits())
		assert.Equal(t, 42, store.IncrementVisits())
	})
}

func TestStartSessionGate(t *testing.T) {
	t.Run("anonymous session counts exactly once", func(t *testing.T) {
		medium := storage.NewMemory()
		store := Open(medium) // bootstrap leaves the counter at 1

		store.StartSession()
		store.StartSession() // double bootstrap must not double count
		store.StartSession()

		assert.Equal(t, 2, store.Visits())
	})

	t.Run("onboarded session never counts", func(t *testing.T) {
		medium := storage.NewMemory()
		seed := Open(medium)
		require.NoError(t, seed.SetIdentity("Ana", RoleVeterinarian))
		before := seed.Visits()

		store := Open(medium)
		store.StartSession()

		assert.Equal(t, before, store.Visits())
	})
}

func TestPetProfileOverwrite(t *testing.T) {
	medium := storage.NewMemory()
	store := Open(medium)

	_, ok := store.PetProfile()
	assert.False(t, ok)

	store.SetPetProfile(PetProfile{Name: "Rex", Species: "Dog", Breed: "Beagle", Age: "3"})
	store.SetPetProfile(PetProfile{Name: "Milo", Species: "Cat", Breed: "Siamese", Age: "2"})

	pet, ok := Open(medium).PetProfile()
	require.True(t, ok)
	assert.Equal(t, "Milo", pet.Name)
	assert.Equal(t, "Cat", pet.Species)
}

func TestMalformedPetProfileReadsAsAbsent(t *testing.T) {
	medium := storage.NewMemory()
	require.NoError(t, medium.Set("furEver_pet", "{broken"))

	_, ok := Open(medium).PetProfile()
	assert.False(t, ok)
}

func TestResetIdentityKeepsFavoritesAndPreferences(t *testing.T) {
	medium := storage.NewMemory()
	store := Open(medium)

	require.NoError(t, store.SetIdentity("Sam", RoleShelter))
	store.SetPetProfile(PetProfile{Name: "Rex", Species: "Dog"})
	store.ToggleFavorite("p1")
	store.SetTheme(true)
	store.SetFontSize(18)

	store.ResetIdentity()

	_, ok := store.Identity()
	assert.False(t, ok)
	_, ok = store.PetProfile()
	assert.False(t, ok)
	assert.Equal(t, []string{"p1"}, store.Favorites())
	assert.True(t, store.Preferences().Dark)
	assert.Equal(t, 18, store.Preferences().FontSizePx)

	// The cleared slots are gone from the medium too, not just from memory.
	reloaded := Open(medium)
	_, ok = reloaded.Identity()
	assert.False(t, ok)
	assert.Equal(t, []string{"p1"}, reloaded.Favorites())
	assert.True(t, reloaded.Preferences().Dark)
}

func TestPreferencesDefaultsAndPersistence(t *testing.T) {
	medium := storage.NewMemory()

	store := Open(medium)
	prefs := store.Preferences()
	assert.False(t, prefs.Dark)
	assert.Equal(t, DefaultFontSize, prefs.FontSizePx)
	assert.Equal(t, AmbienceNone, prefs.Ambience)

	store.SetTheme(true)
	store.SetFontSize(20)
	store.SetAmbience(AmbienceCafe)

	reloaded := Open(medium)
	assert.True(t, reloaded.Preferences().Dark)
	assert.Equal(t, 20, reloaded.Preferences().FontSizePx)
	// Ambience is session-local and must not come back after a reload.
	assert.Equal(t, AmbienceNone, reloaded.Preferences().Ambience)
}

func TestCorruptThemeAndFontSizeFallBack(t *testing.T) {
	medium := storage.NewMemory()
	require.NoError(t, medium.Set("furEver_darkMode", "maybe"))
	require.NoError(t, medium.Set("furEver_fontSize", "big"))

	prefs := Open(medium).Preferences()
	assert.False(t, prefs.Dark)
	assert.Equal(t, DefaultFontSize, prefs.FontSizePx)
}

// failingMedium accepts nothing but still reports reads; it simulates a
// disabled or quota-exhausted persistence layer.
type failingMedium struct{ storage.Medium }

func (f failingMedium) Set(key, value string) error { return assert.AnError }
func (f failingMedium) Delete(key string) error     { return assert.AnError }

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	store := Open(failingMedium{storage.NewMemory()})

	require.NoError(t, store.SetIdentity("Sam", RolePetOwner))
	store.ToggleFavorite("p1")
	store.SetTheme(true)

	id, ok := store.Identity()
	require.True(t, ok)
	assert.Equal(t, "Sam", id.Name)
	assert.Equal(t, []string{"p1"}, store.Favorites())
	assert.True(t, store.Preferences().Dark)
}

func TestHooksReceiveChanges(t *testing.T) {
	store := Open(storage.NewMemory())

	var got []Slot
	store.Subscribe(HookFunc(func(c Change) { got = append(got, c.Slot) }))

	require.NoError(t, store.SetIdentity("Sam", RoleShelter))
	store.SetTheme(true)
	store.ToggleFavorite("p1")
	store.ResetIdentity()

	assert.Equal(t, []Slot{
		SlotIdentity, SlotTheme, SlotFavorites, SlotIdentity, SlotPetProfile,
	}, got)
}

func TestParseRole(t *testing.T) {
	cases := map[string]struct {
		role Role
		ok   bool
	}{
		"PetOwner":     {RolePetOwner, true},
		"Pet Owner":    {RolePetOwner, true},
		"veterinarian": {RoleVeterinarian, true},
		" Shelter ":    {RoleShelter, true},
		"":             {"", false},
		"DogWalker":    {"", false},
	}
	for input, want := range cases {
		role, ok := ParseRole(input)
		assert.Equal(t, want.ok, ok, "input %q", input)
		assert.Equal(t, want.role, role, "input %q", input)
	}
}
