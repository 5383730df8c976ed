package taginput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagList_AddPreservesOrder(t *testing.T) {
	l := TagList{}.Add("red").Add("blue").Add("red")

	require.Equal(t, []string{"red", "blue", "red"}, l.Values(), "duplicates are kept in insertion order")
	require.Equal(t, 3, l.Len())
	require.Equal(t, 2, l.LastIndex())
}

func TestTagList_RemoveShiftsLaterTags(t *testing.T) {
	l := NewTagList("t0", "t1", "t2")

	out, ok := l.Remove(1)

	require.True(t, ok)
	require.Equal(t, []string{"t0", "t2"}, out.Values())
	require.Equal(t, "t2", out.At(1), "tag formerly at index 2 is now at index 1")
	require.Equal(t, "t0", out.At(0))
}

func TestTagList_RemoveOutOfRangeIsNoop(t *testing.T) {
	l := NewTagList("t0", "t1")

	for _, idx := range []int{-1, 2, 99} {
		out, ok := l.Remove(idx)
		require.False(t, ok, "index %d", idx)
		require.Equal(t, l, out, "index %d", idx)
	}

	out, ok := TagList{}.Remove(0)
	require.False(t, ok)
	require.Equal(t, 0, out.Len())
}

func TestTagList_IsImmutable(t *testing.T) {
	base := NewTagList("a", "b")
	added := base.Add("c")
	removed, _ := base.Remove(0)

	require.Equal(t, []string{"a", "b"}, base.Values())
	require.Equal(t, []string{"a", "b", "c"}, added.Values())
	require.Equal(t, []string{"b"}, removed.Values())

	vals := base.Values()
	vals[0] = "mutated"
	require.Equal(t, "a", base.At(0), "Values returns a copy")
}

func TestTagList_RevisionAdvancesOnMutation(t *testing.T) {
	l := TagList{}
	require.Equal(t, uint64(0), l.Revision())

	l = l.Add("a")
	r1 := l.Revision()
	l = l.Add("b")
	require.Greater(t, l.Revision(), r1)

	r2 := l.Revision()
	l, _ = l.Remove(5)
	require.Equal(t, r2, l.Revision(), "failed remove keeps the revision")

	l, _ = l.Remove(0)
	require.Greater(t, l.Revision(), r2)
}

func TestTagList_Last(t *testing.T) {
	_, ok := TagList{}.Last()
	require.False(t, ok)
	require.Equal(t, -1, TagList{}.LastIndex())

	last, ok := NewTagList("a", "b").Last()
	require.True(t, ok)
	require.Equal(t, "b", last)
}
