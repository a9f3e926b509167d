package localset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIsIdempotent(t *testing.T) {
	s := New()

	assert.True(t, s.Add("evt-1"))
	assert.True(t, s.Add("evt-2"))
	assert.False(t, s.Add("evt-1"))

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []string{"evt-1", "evt-2"}, s.IDs())
}

func TestAddIgnoresBlank(t *testing.T) {
	s := New()

	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   "))
	assert.Equal(t, 0, s.Count())
}

func TestRemovePreservesOrder(t *testing.T) {
	s := FromIDs([]string{"a", "b", "c"})

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.IDs())
	assert.False(t, s.Has("b"))
	assert.True(t, s.Has("a"))
}

func TestClear(t *testing.T) {
	s := FromIDs([]string{"a", "b"})
	s.Clear()

	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Has("a"))

	// Still usable after clearing.
	assert.True(t, s.Add("c"))
	assert.Equal(t, 1, s.Count())
}

func TestMergeIsIdempotent(t *testing.T) {
	s := FromIDs([]string{"a"})
	incoming := []string{"a", "b", "c"}

	added := s.Merge(incoming)
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	added = s.Merge(incoming)
	assert.Equal(t, 0, added)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
}

func TestMergePreviewDoesNotMutate(t *testing.T) {
	s := FromIDs([]string{"a", "b"})

	already, fresh := s.MergePreview([]string{"b", "c", "c", " "})
	assert.Equal(t, []string{"b"}, already)
	assert.Equal(t, []string{"c"}, fresh)
	assert.Equal(t, 2, s.Count())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := FromIDs([]string{"evt-1", "evt-2"})

	decoded := Decode(s.Encode())
	assert.Equal(t, s.IDs(), decoded.IDs())
}

func TestDecodeMalformedResetsToEmpty(t *testing.T) {
	cases := []string{
		"",
		"not json",
		`{"a":1}`,
		`[1,2,3]`,
		`[["nested"]]`,
	}
	for _, raw := range cases {
		s := Decode(raw)
		require.NotNil(t, s, "input %q", raw)
		assert.Equal(t, 0, s.Count(), "input %q", raw)
	}
}

func TestDecodeDropsDuplicates(t *testing.T) {
	s := Decode(`["a","b","a",""]`)
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}
