package taginput

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "req-" + strconv.Itoa(n)
	}
}

func testGate() Gate {
	return Gate{newID: sequentialIDs()}
}

func TestGate_RequestCapturesIndexAndRevision(t *testing.T) {
	tags := NewTagList("a", "b")

	g, p, ok := testGate().Request(tags, 1)

	require.True(t, ok)
	require.Equal(t, Pending{ID: "req-1", Index: 1, Text: "b", Revision: tags.Revision()}, p)
	got, ok := g.Pending()
	require.True(t, ok)
	require.Equal(t, p, got)
}

func TestGate_NewGateUsesUUIDs(t *testing.T) {
	_, p, ok := NewGate().Request(NewTagList("a"), 0)
	require.True(t, ok)
	require.Len(t, p.ID, 36)
}

func TestGate_OnlyOneOutstanding(t *testing.T) {
	tags := NewTagList("a", "b")
	g, _, _ := testGate().Request(tags, 1)

	g2, _, ok := g.Request(tags, 0)

	require.False(t, ok)
	p, _ := g2.Pending()
	require.Equal(t, 1, p.Index, "first request stays outstanding")
}

func TestGate_RefusesInvalidIndex(t *testing.T) {
	for _, idx := range []int{-1, 2} {
		g, _, ok := testGate().Request(NewTagList("a", "b"), idx)
		require.False(t, ok, "index %d", idx)
		_, pending := g.Pending()
		require.False(t, pending)
	}
}

func TestGate_ResolveConfirmed(t *testing.T) {
	tags := NewTagList("a", "b", "c")
	g, p, _ := testGate().Request(tags, 1)

	g, out, resolved, removed := g.Resolve(tags, p.ID, Confirmed)

	require.True(t, resolved)
	require.True(t, removed)
	require.Equal(t, []string{"a", "c"}, out.Values())
	_, pending := g.Pending()
	require.False(t, pending)
}

func TestGate_ResolveCancelled(t *testing.T) {
	tags := NewTagList("a", "b")
	g, p, _ := testGate().Request(tags, 1)

	g, out, resolved, removed := g.Resolve(tags, p.ID, Cancelled)

	require.True(t, resolved)
	require.False(t, removed)
	require.Equal(t, tags, out)
	_, pending := g.Pending()
	require.False(t, pending)
}

func TestGate_StaleConfirmationIsNoop(t *testing.T) {
	tags := NewTagList("a", "b")
	g, p, _ := testGate().Request(tags, 1)

	// List mutates between request and answer: index 1 would now be "x".
	mutated, _ := tags.Remove(1)
	mutated = mutated.Add("x")

	g, out, resolved, removed := g.Resolve(mutated, p.ID, Confirmed)

	require.True(t, resolved, "request is settled")
	require.False(t, removed, "unrelated tag must survive")
	require.Equal(t, []string{"a", "x"}, out.Values())
	_, pending := g.Pending()
	require.False(t, pending)
}

func TestGate_UnknownIDIsNoop(t *testing.T) {
	tags := NewTagList("a")
	g, _, _ := testGate().Request(tags, 0)

	g, out, resolved, _ := g.Resolve(tags, "someone-else", Confirmed)

	require.False(t, resolved)
	require.Equal(t, tags, out)
	_, pending := g.Pending()
	require.True(t, pending, "request still outstanding")
}

func TestGate_ResolveAfterCloseIsNoop(t *testing.T) {
	tags := NewTagList("a")
	g, p, _ := testGate().Request(tags, 0)

	g = g.Close()
	require.True(t, g.Closed())

	_, out, resolved, removed := g.Resolve(tags, p.ID, Confirmed)
	require.False(t, resolved)
	require.False(t, removed)
	require.Equal(t, tags, out)

	_, _, ok := g.Request(tags, 0)
	require.False(t, ok, "closed gate issues no requests")
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "confirmed", Confirmed.String())
	require.Equal(t, "cancelled", Cancelled.String())
}
