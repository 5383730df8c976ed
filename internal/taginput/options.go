package taginput

import "github.com/zjrosen/taginput/internal/pubsub"

// Options configure a control. They are read once in New and do not change
// for the lifetime of the control.
type Options struct {
	// OnChangeText is called with the new draft after every user edit.
	// Drafts rewritten by the control itself (commit, delete-modify) do not
	// trigger it.
	OnChangeText func(text string)

	// ConfirmTagDelete routes remove-affordance presses through a
	// confirmation dialog.
	ConfirmTagDelete bool

	// BackspaceBehavior selects what backspace does on an empty draft.
	BackspaceBehavior DeletionMode

	// ShowRemoveButton draws a remove affordance on every tag.
	ShowRemoveButton bool

	// BlurOnSubmit releases focus after every submit, not only after a
	// submit with an empty draft.
	BlurOnSubmit bool

	Placeholder string
	Prompt      string
	Width       int // total box width including border (0 = 60)
	MaxTagWidth int // truncate long tags in chips (0 = no limit)

	// Broker receives control events. When nil the control creates and
	// owns one, closing it on Close.
	Broker *pubsub.Broker[Event]
}

const defaultWidth = 60

func (o Options) width() int {
	if o.Width <= 0 {
		return defaultWidth
	}
	return o.Width
}

// Event is the payload published for every control event.
type Event struct {
	ControlID string
	Index     int
	Text      string
	RequestID string
	Outcome   Outcome
}
