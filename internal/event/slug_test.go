package event

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Opening Night", "opening-night"},
		{"  Noche de Galerías!  ", "noche-de-galeras"},
		{"Art + Wine @ Roma Norte", "art-wine-roma-norte"},
		{"---", "event"},
		{"", "event"},
		{strings.Repeat("a", 120), strings.Repeat("a", 80)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestNewSlugAppendsRandomSuffix(t *testing.T) {
	slug, err := NewSlug("Opening Night")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(slug, "opening-night-"), "got %q", slug)

	suffix := strings.TrimPrefix(slug, "opening-night-")
	assert.Len(t, suffix, 6)
	for _, r := range suffix {
		assert.Contains(t, slugSuffixAlphabet, string(r))
	}
}

func TestNewSlugIsUnlikelyToRepeat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		slug, err := NewSlug("Opening Night")
		require.NoError(t, err)
		assert.False(t, seen[slug], "duplicate slug %q", slug)
		seen[slug] = true
	}
}
