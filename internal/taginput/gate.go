package taginput

import "github.com/google/uuid"

// Outcome is how the user answered a confirmation prompt.
type Outcome int

const (
	Cancelled Outcome = iota
	Confirmed
)

func (o Outcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Pending is a removal waiting on a yes/no answer.
// Index and Revision are captured when the prompt is issued and never re-derived.
type Pending struct {
	ID       string
	Index    int
	Text     string
	Revision uint64
}

// Gate holds at most one outstanding confirmation.
type Gate struct {
	pending *Pending
	closed  bool
	newID   func() string
}

// NewGate creates a gate that tags requests with random UUIDs.
func NewGate() Gate {
	return Gate{newID: uuid.NewString}
}

// Pending returns the outstanding request, if any.
func (g Gate) Pending() (Pending, bool) {
	if g.pending == nil {
		return Pending{}, false
	}
	return *g.pending, true
}

// Closed reports whether the gate has been torn down.
func (g Gate) Closed() bool { return g.closed }

// Request issues a confirmation for the tag at index. It is refused when a
// request is already outstanding, when the gate is closed, or when index does
// not address a tag at issue time.
func (g Gate) Request(tags TagList, index int) (Gate, Pending, bool) {
	if g.closed || g.pending != nil || !tags.Valid(index) {
		return g, Pending{}, false
	}
	newID := g.newID
	if newID == nil {
		newID = uuid.NewString
	}
	p := Pending{
		ID:       newID(),
		Index:    index,
		Text:     tags.At(index),
		Revision: tags.Revision(),
	}
	g.pending = &p
	return g, p, true
}

// Resolve settles the outstanding request. On Confirmed it removes the
// captured index from tags, unless tags has changed since the prompt was
// issued. Unknown IDs and resolutions after Close leave everything unchanged.
// removed reports whether a tag was actually dropped.
func (g Gate) Resolve(tags TagList, id string, outcome Outcome) (next Gate, out TagList, resolved, removed bool) {
	if g.closed || g.pending == nil || g.pending.ID != id {
		return g, tags, false, false
	}
	p := *g.pending
	g.pending = nil
	if outcome != Confirmed {
		return g, tags, true, false
	}
	if tags.Revision() != p.Revision {
		return g, tags, true, false
	}
	out, removed = tags.Remove(p.Index)
	return g, out, true, removed
}

// Close tears the gate down. Any later resolution is a no-op.
func (g Gate) Close() Gate {
	g.pending = nil
	g.closed = true
	return g
}
