package taginput

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/taginput/internal/cachemanager"
	"github.com/zjrosen/taginput/internal/log"
)

// TagDescriptor is everything the chip renderer needs for one tag.
type TagDescriptor struct {
	Index int
	Text  string
	// OnRemove presses this tag's remove affordance. Nil when the affordance
	// is hidden.
	OnRemove tea.Cmd
}

// Removable reports whether the descriptor carries a remove affordance.
func (d TagDescriptor) Removable() bool { return d.OnRemove != nil }

// RemovePressedMsg is produced by a descriptor's OnRemove. Revision is the
// tag list revision the descriptor was built from; a press that arrives after
// the list changed is dropped.
type RemovePressedMsg struct {
	ControlID string
	Index     int
	Revision  uint64
}

type describeInput struct {
	tags TagList
	show bool
}

// RenderAdapter derives tag descriptors, memoized on the show flag and the
// tag list revision so unrelated re-renders reuse the same slice. Entries for
// a revision are evicted once a newer one is described.
type RenderAdapter struct {
	controlID string
	cache     *cachemanager.InMemoryCacheManager[string, []TagDescriptor]
	memo      *cachemanager.Memo[string, []TagDescriptor, describeInput]
	revision  uint64
	described bool
}

// NewRenderAdapter creates an adapter whose remove callbacks are addressed
// to controlID.
func NewRenderAdapter(controlID string) *RenderAdapter {
	a := &RenderAdapter{controlID: controlID}
	a.cache = cachemanager.NewInMemoryCacheManager[string, []TagDescriptor](
		"tag-descriptors", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	a.memo = cachemanager.NewMemo[string, []TagDescriptor, describeInput](a.cache, a.build, cachemanager.DefaultExpiration)
	return a
}

// Describe returns one descriptor per tag. The returned slice is shared
// between calls with the same inputs and must not be modified.
func (a *RenderAdapter) Describe(tags TagList, showRemove bool) []TagDescriptor {
	ctx := context.Background()
	if a.described && a.revision != tags.Revision() {
		_ = a.memo.Forget(ctx, describeKey(true, a.revision), describeKey(false, a.revision))
	}
	a.revision, a.described = tags.Revision(), true
	return a.memo.Get(ctx, describeKey(showRemove, tags.Revision()), describeInput{tags: tags, show: showRemove})
}

func describeKey(showRemove bool, revision uint64) string {
	return fmt.Sprintf("%t:%d", showRemove, revision)
}

// Reset drops every memoized descriptor set.
func (a *RenderAdapter) Reset() {
	_ = a.memo.Reset(context.Background())
	a.described = false
}

func (a *RenderAdapter) build(in describeInput) []TagDescriptor {
	log.Debug(log.CatRender, "building tag descriptors", "control", a.controlID, "count", in.tags.Len(), "revision", in.tags.Revision(), "show_remove", in.show)

	out := make([]TagDescriptor, in.tags.Len())
	for i := range out {
		out[i] = TagDescriptor{Index: i, Text: in.tags.At(i)}
		if in.show {
			out[i].OnRemove = a.removeCmd(i, in.tags.Revision())
		}
	}
	return out
}

func (a *RenderAdapter) removeCmd(index int, revision uint64) tea.Cmd {
	id := a.controlID
	return func() tea.Msg {
		return RemovePressedMsg{ControlID: id, Index: index, Revision: revision}
	}
}
