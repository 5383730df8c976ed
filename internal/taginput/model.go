// Package taginput provides a tag-entry control: a text field whose committed
// entries become an ordered list of tags that can be removed with the remove
// affordance or with backspace on an empty draft.
//
// The interaction rules live in State as pure transitions; Model wires them to
// bubbles/textinput, the confirmation modal and the chip renderer.
//
// Hosts must create a bubblezone manager (zone.NewGlobal) and call zone.Scan on
// their root view for mouse support on the remove affordance.
package taginput

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/taginput/internal/keys"
	"github.com/zjrosen/taginput/internal/log"
	"github.com/zjrosen/taginput/internal/pubsub"
	"github.com/zjrosen/taginput/internal/ui/modal"
	"github.com/zjrosen/taginput/internal/ui/styles"
	"github.com/zjrosen/taginput/internal/ui/tagchip"
)

// BlurMsg is sent when the control releases focus.
type BlurMsg struct {
	ControlID string
}

// Model is the tag input control.
type Model struct {
	id         string
	opts       Options
	keys       keys.InputKeyMap
	state      State
	input      textinput.Model
	dialog     *modal.Model
	render     *RenderAdapter
	broker     *pubsub.Broker[Event]
	ownsBroker bool
	selected   int // chip selected with the keyboard, -1 for none
	width      int
	height     int
}

// New creates a focused control with an empty tag list and draft.
func New(opts Options) Model {
	id := uuid.NewString()

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = opts.Prompt
	ti.Width = max(opts.width()/3, 10)
	ti.Focus()

	broker := opts.Broker
	owns := broker == nil
	if owns {
		broker = pubsub.NewBroker[Event]()
	}

	return Model{
		id:         id,
		opts:       opts,
		keys:       keys.Input,
		state:      NewState(),
		input:      ti,
		render:     NewRenderAdapter(id),
		broker:     broker,
		ownsBroker: owns,
		selected:   -1,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ID identifies this control in RemovePressedMsg and BlurMsg.
func (m Model) ID() string { return m.id }

// Tags returns the committed tags in display order.
func (m Model) Tags() []string { return m.state.Tags().Values() }

// Draft returns the uncommitted text.
func (m Model) Draft() string { return m.state.Draft() }

// Pending returns the confirmation currently awaiting an answer.
func (m Model) Pending() (Pending, bool) { return m.state.Pending() }

// Selected returns the keyboard-selected chip, or -1.
func (m Model) Selected() int { return m.selected }

// Focused reports whether the text field has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Events returns the broker the control publishes to.
func (m Model) Events() *pubsub.Broker[Event] { return m.broker }

// Descriptors returns the render descriptors for the current tags.
func (m Model) Descriptors() []TagDescriptor {
	return m.render.Describe(m.state.Tags(), m.opts.ShowRemoveButton)
}

// Focus gives the text field focus again after a blur.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.state.Closed() {
		return m, nil
	}
	return m, m.input.Focus()
}

// SetSize records the viewport size used to center the confirmation dialog.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	if m.dialog != nil {
		d := *m.dialog
		d.SetSize(width, height)
		m.dialog = &d
	}
	return m
}

// AddTag commits text as a tag without going through the draft.
func (m Model) AddTag(text string) (Model, tea.Cmd) {
	var eff Effects
	m.state, eff = m.state.Add(text)
	return m.apply(eff)
}

// Close tears the control down. A confirmation answered afterwards is ignored.
func (m Model) Close() Model {
	if p, ok := m.state.Pending(); ok {
		log.Debug(log.CatConfirm, "dropping pending confirmation on close", "control", m.id, "request", p.ID)
	}
	m.state = m.state.Teardown()
	m.dialog = nil
	m.input.Blur()
	m.render.Reset()
	if m.ownsBroker {
		m.broker.Close()
	}
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case modal.SubmitMsg:
		return m.resolve(msg.ID, Confirmed)

	case modal.CancelMsg:
		return m.resolve(msg.ID, Cancelled)

	case RemovePressedMsg:
		if msg.ControlID != m.id {
			return m, nil
		}
		if msg.Revision != m.state.Tags().Revision() {
			log.Debug(log.CatInput, "ignoring stale remove press", "control", m.id, "index", msg.Index, "revision", msg.Revision)
			return m, nil
		}
		var eff Effects
		m.state, eff = m.state.PressRemove(msg.Index, msg.Revision, m.opts.ConfirmTagDelete)
		return m.apply(eff)

	case tea.MouseMsg:
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			for _, d := range m.Descriptors() {
				if !d.Removable() {
					continue
				}
				if z := zone.Get(m.chipZoneID(d.Index)); z != nil && z.InBounds(msg) {
					return m, d.OnRemove
				}
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			// The dialog is modal: nothing reaches the field until it resolves.
			return m.updateDialog(msg)
		}
		if !m.input.Focused() || m.state.Closed() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Submit):
			var eff Effects
			m.state, eff = m.state.Submit(m.opts.BlurOnSubmit)
			return m.apply(eff)

		case key.Matches(msg, m.keys.Backspace) && m.state.Draft() == "":
			var eff Effects
			m.state, eff = m.state.Backspace(m.opts.BackspaceBehavior)
			if m.opts.BackspaceBehavior == ModeDeleteConfirm && eff.Prompt == nil {
				// Decide targets index -1 on an empty list; the gate refuses it.
				log.Debug(log.CatConfirm, "no confirmation issued", "control", m.id, "index", Decide(ModeDeleteConfirm, m.state.Tags()).Index)
			}
			return m.apply(eff)

		case key.Matches(msg, m.keys.SelectPrev):
			m.selected = m.prevSelection()
			return m, nil

		case key.Matches(msg, m.keys.SelectNext):
			m.selected = m.nextSelection()
			return m, nil

		case key.Matches(msg, m.keys.RemoveTag):
			descs := m.Descriptors()
			if m.selected >= 0 && m.selected < len(descs) && descs[m.selected].Removable() {
				return m, descs[m.selected].OnRemove
			}
			return m, nil
		}
	}

	if m.state.Closed() {
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		var eff Effects
		m.state, eff = m.state.ChangeText(m.input.Value())
		m.selected = -1
		m, _ = m.apply(eff)
	}
	return m, cmd
}

func (m Model) updateDialog(msg tea.Msg) (Model, tea.Cmd) {
	d, cmd := m.dialog.Update(msg)
	m.dialog = &d
	return m, cmd
}

func (m Model) resolve(id string, outcome Outcome) (Model, tea.Cmd) {
	var eff Effects
	m.state, eff = m.state.Resolve(id, outcome)
	if eff.Resolved == nil {
		log.Debug(log.CatConfirm, "ignoring unmatched confirmation", "control", m.id, "request", id, "outcome", outcome)
		return m, nil
	}
	return m.apply(eff)
}

// apply carries out the side effects of a transition.
func (m Model) apply(eff Effects) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if eff.TextChanged {
		text := m.state.Draft()
		if m.opts.OnChangeText != nil {
			m.opts.OnChangeText(text)
		}
		m.publish(pubsub.DraftChangedEvent, Event{Text: text})
	}

	if eff.DraftReset {
		m.input.SetValue(m.state.Draft())
		m.input.CursorEnd()
	}

	if eff.Added != nil {
		log.Debug(log.CatInput, "tag added", "control", m.id, "index", eff.Added.Index, "text", eff.Added.Text)
		m.publish(pubsub.TagAddedEvent, Event{Index: eff.Added.Index, Text: eff.Added.Text})
	}

	if eff.Removed != nil {
		log.Debug(log.CatInput, "tag removed", "control", m.id, "index", eff.Removed.Index, "text", eff.Removed.Text)
		m.publish(pubsub.TagRemovedEvent, Event{Index: eff.Removed.Index, Text: eff.Removed.Text})
		if m.selected >= m.state.Tags().Len() {
			m.selected = m.state.Tags().Len() - 1
		}
	}

	if eff.Resolved != nil {
		log.Debug(log.CatConfirm, "confirmation resolved", "control", m.id, "request", eff.Resolved.ID, "outcome", eff.Resolved.Outcome, "removed", eff.Resolved.Removed)
		m.dialog = nil
		m.publish(pubsub.ConfirmResolvedEvent, Event{RequestID: eff.Resolved.ID, Outcome: eff.Resolved.Outcome})
	}

	if eff.Prompt != nil {
		log.Debug(log.CatConfirm, "confirmation requested", "control", m.id, "request", eff.Prompt.ID, "index", eff.Prompt.Index)
		d := modal.New(modal.Config{
			ID:           eff.Prompt.ID,
			Title:        "Are you sure?",
			Message:      fmt.Sprintf("Do you want to delete the tag %q?", eff.Prompt.Text),
			ConfirmLabel: "OK",
		})
		d.SetSize(m.width, m.height)
		m.dialog = &d
		m.publish(pubsub.ConfirmRequestedEvent, Event{Index: eff.Prompt.Index, Text: eff.Prompt.Text, RequestID: eff.Prompt.ID})
	}

	if eff.Blur {
		m.input.Blur()
		m.selected = -1
		m.publish(pubsub.BlurredEvent, Event{})
		id := m.id
		cmds = append(cmds, func() tea.Msg { return BlurMsg{ControlID: id} })
	}

	return m, tea.Batch(cmds...)
}

func (m Model) publish(t pubsub.EventType, e Event) {
	e.ControlID = m.id
	m.broker.Publish(t, e)
}

func (m Model) prevSelection() int {
	n := m.state.Tags().Len()
	switch {
	case n == 0:
		return -1
	case m.selected < 0:
		return n - 1
	default:
		return max(m.selected-1, 0)
	}
}

func (m Model) nextSelection() int {
	if m.selected < 0 || m.selected+1 >= m.state.Tags().Len() {
		return -1
	}
	return m.selected + 1
}

func (m Model) chipZoneID(index int) string {
	return m.id + "-remove-" + strconv.Itoa(index)
}

// View renders the chips followed by the text field inside a bordered box.
func (m Model) View() string {
	descs := m.Descriptors()
	parts := make([]string, 0, len(descs)+1)
	for _, d := range descs {
		parts = append(parts, tagchip.Render(tagchip.Chip{
			Text:      d.Text,
			Removable: d.Removable(),
			Selected:  d.Index == m.selected,
			ZoneID:    m.chipZoneID(d.Index),
			MaxWidth:  m.opts.MaxTagWidth,
		}))
	}
	parts = append(parts, m.input.View())

	box := styles.InputStyle
	if m.input.Focused() {
		box = styles.InputFocusStyle
	}
	// Border and horizontal padding take four cells.
	inner := m.opts.width() - 4
	return box.Width(m.opts.width() - 2).Render(strings.Join(tagchip.Wrap(parts, inner), "\n"))
}

// Overlay draws the confirmation dialog over bg while one is open.
func (m Model) Overlay(bg string) string {
	if m.dialog == nil {
		return bg
	}
	return m.dialog.Overlay(bg)
}
