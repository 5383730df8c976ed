package taginput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraft_ZeroValueIsEmpty(t *testing.T) {
	var d Draft
	require.True(t, d.Empty())
	require.Equal(t, "", d.Text())
}

func TestDraft_SetTextIsVerbatim(t *testing.T) {
	d, changed := Draft{}.SetText("  spaced  ")
	require.True(t, changed)
	require.Equal(t, "  spaced  ", d.Text(), "no trimming")

	d, changed = d.SetText("  spaced  ")
	require.False(t, changed)
}

func TestDraft_CommitNonEmpty(t *testing.T) {
	d, _ := Draft{}.SetText("red")
	d, tags, ok := d.Commit(NewTagList("blue"))

	require.True(t, ok)
	require.True(t, d.Empty())
	require.Equal(t, []string{"blue", "red"}, tags.Values())
}

func TestDraft_CommitEmpty(t *testing.T) {
	before := NewTagList("blue")
	d, tags, ok := Draft{}.Commit(before)

	require.False(t, ok)
	require.True(t, d.Empty())
	require.Equal(t, before, tags)
}

func TestDraft_LoadText(t *testing.T) {
	d := Draft{}.LoadText("blue")
	require.Equal(t, "blue", d.Text())
}
