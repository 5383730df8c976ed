package taginput

import "fmt"

// DeletionMode selects what backspace does when the draft is empty.
// It is fixed for the lifetime of a control.
type DeletionMode int

const (
	ModeDelete        DeletionMode = iota // Drop the last tag
	ModeDeleteModify                      // Drop the last tag and load it into the draft
	ModeDeleteConfirm                     // Ask before dropping the last tag
)

// String returns the configuration spelling of the mode.
func (m DeletionMode) String() string {
	switch m {
	case ModeDelete:
		return "delete"
	case ModeDeleteModify:
		return "delete-modify"
	case ModeDeleteConfirm:
		return "delete-confirm"
	default:
		return fmt.Sprintf("DeletionMode(%d)", int(m))
	}
}

// ParseDeletionMode parses "delete", "delete-modify" or "delete-confirm".
// An empty string selects ModeDelete.
func ParseDeletionMode(s string) (DeletionMode, error) {
	switch s {
	case "", "delete":
		return ModeDelete, nil
	case "delete-modify":
		return ModeDeleteModify, nil
	case "delete-confirm":
		return ModeDeleteConfirm, nil
	default:
		return ModeDelete, fmt.Errorf("unknown tag backspace delete behavior %q (must be delete, delete-modify or delete-confirm)", s)
	}
}

// ActionKind is the removal behavior picked by Decide.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionRemove
	ActionRemoveAndEdit
	ActionConfirm
)

// Action is the outcome of a backspace-at-empty-draft decision.
// Index always refers to the tag at the highest index when the decision was made.
type Action struct {
	Kind  ActionKind
	Index int
}

// Decide picks the removal behavior for a backspace on an empty draft.
// Delete and DeleteModify do nothing on an empty list. DeleteConfirm always
// targets Len()-1, which is -1 for an empty list; the gate refuses that index.
func Decide(mode DeletionMode, tags TagList) Action {
	last := tags.LastIndex()
	switch mode {
	case ModeDelete:
		if last < 0 {
			return Action{Kind: ActionNone, Index: last}
		}
		return Action{Kind: ActionRemove, Index: last}
	case ModeDeleteModify:
		if last < 0 {
			return Action{Kind: ActionNone, Index: last}
		}
		return Action{Kind: ActionRemoveAndEdit, Index: last}
	case ModeDeleteConfirm:
		return Action{Kind: ActionConfirm, Index: last}
	}
	return Action{Kind: ActionNone, Index: last}
}
