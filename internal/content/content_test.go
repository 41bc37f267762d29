package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipsAll(t *testing.T) {
	tips, err := Tips("")
	require.NoError(t, err)
	assert.NotEmpty(t, tips)

	for _, tip := range tips {
		assert.NotEmpty(t, tip.Title)
		assert.NotEmpty(t, tip.Body)
	}
}

func TestTipsBySpeciesIncludesGeneral(t *testing.T) {
	tips, err := Tips("dog")
	require.NoError(t, err)
	require.NotEmpty(t, tips)

	var sawDog, sawGeneral, sawOther bool
	for _, tip := range tips {
		switch tip.Species {
		case "Dog":
			sawDog = true
		case "General":
			sawGeneral = true
		default:
			sawOther = true
		}
	}
	assert.True(t, sawDog)
	assert.True(t, sawGeneral)
	assert.False(t, sawOther, "tips for other species must be filtered out")
}

func TestRenderText(t *testing.T) {
	md := []byte("# Feeding\n\nFeed **twice** a day.\n\n- fresh water\n- no table scraps\n")
	got := RenderText(md)

	assert.Contains(t, got, "FEEDING")
	assert.Contains(t, got, "Feed twice a day.")
	assert.Contains(t, got, "  - fresh water")
	assert.Contains(t, got, "  - no table scraps")
	assert.False(t, strings.Contains(got, "**"), "markup must not leak through")
	assert.False(t, strings.Contains(got, "#"), "markup must not leak through")
}

func TestRenderTextCollapsesLinks(t *testing.T) {
	md := []byte("See [our shelter](https://example.org) for details.\n")
	got := RenderText(md)

	assert.Contains(t, got, "our shelter")
	assert.NotContains(t, got, "](")
}

func TestAnnouncementsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Announcements())
}
