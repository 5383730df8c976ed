package taginput

// State is the complete interaction state of one control: committed tags,
// the draft and the confirmation gate. Transitions are pure; each returns the
// next state and the side effects the host must carry out.
type State struct {
	tags  TagList
	draft Draft
	gate  Gate
}

// TagEvent describes a tag that was added or removed.
type TagEvent struct {
	Index int
	Text  string
}

// Resolution describes a settled confirmation.
type Resolution struct {
	ID      string
	Outcome Outcome
	Removed bool
}

// Effects lists what the host has to do after a transition.
type Effects struct {
	TextChanged bool // notify OnChangeText with the new draft
	DraftReset  bool // draft rewritten by the control; resync the text field
	Blur        bool // text field must release focus
	Prompt      *Pending
	Added       *TagEvent
	Removed     *TagEvent
	Resolved    *Resolution
}

// NewState returns the empty state a control starts with when it mounts.
func NewState() State {
	return State{gate: NewGate()}
}

// Tags returns the committed tags.
func (s State) Tags() TagList { return s.tags }

// Draft returns the draft text.
func (s State) Draft() string { return s.draft.Text() }

// Pending returns the outstanding confirmation, if any.
func (s State) Pending() (Pending, bool) { return s.gate.Pending() }

// Closed reports whether the control has been torn down.
func (s State) Closed() bool { return s.gate.Closed() }

// ChangeText handles a text-change event from the field.
func (s State) ChangeText(text string) (State, Effects) {
	if s.Closed() {
		return s, Effects{}
	}
	var changed bool
	s.draft, changed = s.draft.SetText(text)
	return s, Effects{TextChanged: changed}
}

// Submit handles a submit event. A non-empty draft becomes the last tag; an
// empty draft releases focus. With blurOnSubmit every submit releases focus.
func (s State) Submit(blurOnSubmit bool) (State, Effects) {
	if s.Closed() {
		return s, Effects{}
	}
	text := s.draft.Text()
	var committed bool
	s.draft, s.tags, committed = s.draft.Commit(s.tags)
	if !committed {
		return s, Effects{Blur: true}
	}
	return s, Effects{
		DraftReset: true,
		Blur:       blurOnSubmit,
		Added:      &TagEvent{Index: s.tags.LastIndex(), Text: text},
	}
}

// Add commits text as a new tag without touching the draft.
func (s State) Add(text string) (State, Effects) {
	if s.Closed() {
		return s, Effects{}
	}
	s.tags = s.tags.Add(text)
	return s, Effects{Added: &TagEvent{Index: s.tags.LastIndex(), Text: text}}
}

// Backspace handles a backspace key press. Only a press on an empty draft
// reaches the deletion policy; otherwise it is plain text editing and belongs
// to the field.
func (s State) Backspace(mode DeletionMode) (State, Effects) {
	if s.Closed() || !s.draft.Empty() {
		return s, Effects{}
	}
	action := Decide(mode, s.tags)
	switch action.Kind {
	case ActionRemove:
		return s.remove(action.Index)
	case ActionRemoveAndEdit:
		text := s.tags.At(action.Index)
		var eff Effects
		s, eff = s.remove(action.Index)
		if eff.Removed != nil {
			s.draft = s.draft.LoadText(text)
			eff.DraftReset = true
		}
		return s, eff
	case ActionConfirm:
		return s.request(action.Index)
	}
	return s, Effects{}
}

// PressRemove handles a press on a tag's remove affordance drawn from the
// list at revision. A press against an older revision is ignored, since index
// may now address a different tag.
func (s State) PressRemove(index int, revision uint64, confirm bool) (State, Effects) {
	if s.Closed() || revision != s.tags.Revision() {
		return s, Effects{}
	}
	if confirm {
		return s.request(index)
	}
	return s.remove(index)
}

// Resolve settles the confirmation identified by id.
func (s State) Resolve(id string, outcome Outcome) (State, Effects) {
	p, _ := s.gate.Pending()
	var resolved, removed bool
	s.gate, s.tags, resolved, removed = s.gate.Resolve(s.tags, id, outcome)
	if !resolved {
		return s, Effects{}
	}
	eff := Effects{Resolved: &Resolution{ID: id, Outcome: outcome, Removed: removed}}
	if removed {
		eff.Removed = &TagEvent{Index: p.Index, Text: p.Text}
	}
	return s, eff
}

// Teardown discards the pending confirmation and freezes the state.
func (s State) Teardown() State {
	s.gate = s.gate.Close()
	return s
}

func (s State) remove(index int) (State, Effects) {
	if !s.tags.Valid(index) {
		return s, Effects{}
	}
	text := s.tags.At(index)
	s.tags, _ = s.tags.Remove(index)
	return s, Effects{Removed: &TagEvent{Index: index, Text: text}}
}

func (s State) request(index int) (State, Effects) {
	var p Pending
	var ok bool
	s.gate, p, ok = s.gate.Request(s.tags, index)
	if !ok {
		return s, Effects{}
	}
	return s, Effects{Prompt: &p}
}
