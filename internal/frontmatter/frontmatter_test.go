package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetKeepsKeysSorted(t *testing.T) {
	fm := New()
	fm.Set("volume", "3")
	fm.Set("author", "B, A")
	fm.Set("doi", "10.1/x")
	fm.Set("author", "C, D")

	assert.Equal(t, []string{"author", "doi", "volume"}, fm.Keys())
	assert.Equal(t, 3, fm.Len())

	val, ok := fm.Get("author")
	require.True(t, ok)
	assert.Equal(t, "C, D", val)
}

func TestDelete(t *testing.T) {
	fm := FromMap(map[string]any{"a": 1, "b": 2, "c": 3})

	fm.Delete("b")
	fm.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, fm.Keys())
	assert.False(t, fm.Has("b"))
	assert.True(t, fm.Has("a"))
}

func TestClone_IsIndependent(t *testing.T) {
	orig := FromMap(map[string]any{"doi": "10.1/x", "tags": []any{"paper"}})

	clone := orig.Clone()
	clone.Set("title", Quoted("T"))
	clone.Delete("doi")

	assert.Equal(t, []string{"doi", "tags"}, orig.Keys())
	assert.Equal(t, []string{"tags", "title"}, clone.Keys())
	assert.Equal(t, "10.1/x", orig.GetString("doi"))
}

func TestKeys_ReturnsCopy(t *testing.T) {
	fm := FromMap(map[string]any{"a": 1, "b": 2})

	keys := fm.Keys()
	keys[0] = "zzz"

	assert.Equal(t, []string{"a", "b"}, fm.Keys())
}

func TestGetString(t *testing.T) {
	fm := FromMap(map[string]any{
		"doi":    "  10.1000/xyz  ",
		"title":  Quoted("Quoted Title"),
		"year":   2020,
		"tags":   []any{"a"},
		"absent": nil,
	})

	assert.Equal(t, "10.1000/xyz", fm.GetString("doi"))
	assert.Equal(t, "Quoted Title", fm.GetString("title"))
	assert.Equal(t, "", fm.GetString("year"))
	assert.Equal(t, "", fm.GetString("tags"))
	assert.Equal(t, "", fm.GetString("absent"))
	assert.Equal(t, "", fm.GetString("missing"))
}
