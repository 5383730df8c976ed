// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/taginput/internal/config"
	"github.com/zjrosen/taginput/internal/keys"
	"github.com/zjrosen/taginput/internal/log"
	"github.com/zjrosen/taginput/internal/pubsub"
	"github.com/zjrosen/taginput/internal/taginput"
	"github.com/zjrosen/taginput/internal/ui/styles"
	"github.com/zjrosen/taginput/internal/ui/toaster"
)

// ThemeChangedMsg carries a reloaded theme section from the config watcher.
type ThemeChangedMsg struct {
	Theme config.ThemeConfig
}

// Model is the root application state.
type Model struct {
	control taginput.Model
	cfg     config.Config

	help     help.Model
	keys     keys.Combined
	showHelp bool

	width   int
	height  int
	status  string
	toaster toaster.Model

	broker         *pubsub.Broker[taginput.Event]
	listener       *pubsub.ContinuousListener[taginput.Event]
	listenerCancel context.CancelFunc
}

// New creates the application around a single tag input built from cfg.
// initial tags are committed before the program starts.
func New(cfg config.Config, initial ...string) Model {
	broker := pubsub.NewBroker[taginput.Event]()
	ctx, cancel := context.WithCancel(context.Background())
	// Subscribe before the control exists so no event is missed.
	listener := pubsub.NewContinuousListener[taginput.Event](ctx, broker)

	opts := cfg.Options()
	opts.Broker = broker
	control := taginput.New(opts)
	for _, tag := range initial {
		control, _ = control.AddTag(tag)
	}

	return Model{
		control:        control,
		cfg:            cfg,
		help:           help.New(),
		toaster:        toaster.New(),
		keys:           keys.Combined{Input: keys.Input, App: keys.App},
		broker:         broker,
		listener:       listener,
		listenerCancel: cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.control.Init(), m.listener.Listen())
}

// Tags returns the committed tags.
func (m Model) Tags() []string { return m.control.Tags() }

// Output returns the committed tags joined by the configured separator.
func (m Model) Output() string {
	return strings.Join(m.control.Tags(), m.cfg.Output.Separator)
}

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.control = m.control.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[taginput.Event]:
		m.status = statusFor(msg, m.status)
		return m, m.listener.Listen()

	case ThemeChangedMsg:
		var cmd tea.Cmd
		if err := styles.ApplyTheme(msg.Theme.Styles()); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to apply reloaded theme", err)
			m.toaster, cmd = m.toaster.Show(fmt.Sprintf("theme not applied: %v", err), toaster.StyleError, toaster.DefaultDuration)
			return m, cmd
		}
		m.cfg.Theme = msg.Theme
		log.Info(log.CatConfig, "Applied reloaded theme", "preset", msg.Theme.Preset)
		m.toaster, cmd = m.toaster.Show("theme reloaded", toaster.StyleInfo, toaster.DefaultDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case taginput.BlurMsg:
		if msg.ControlID == m.control.ID() {
			log.Debug(log.CatUI, "control blurred", "control", msg.ControlID)
		}
		return m, nil

	case tea.KeyMsg:
		// An open confirmation owns the keyboard, including esc.
		if _, open := m.control.Pending(); !open {
			switch {
			case key.Matches(msg, m.keys.App.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.App.Focus) && !m.control.Focused():
				var cmd tea.Cmd
				m.control, cmd = m.control.Focus()
				m.status = ""
				return m, cmd
			case key.Matches(msg, m.keys.App.Help) && (msg.Type == tea.KeyF1 || !m.control.Focused()):
				// "?" is typed into a focused field; f1 always toggles.
				m.showHelp = !m.showHelp
				m.help.ShowAll = m.showHelp
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.control, cmd = m.control.Update(msg)
	return m, cmd
}

func statusFor(ev pubsub.Event[taginput.Event], current string) string {
	p := ev.Payload
	switch ev.Type {
	case pubsub.TagAddedEvent:
		return fmt.Sprintf("added %q", p.Text)
	case pubsub.TagRemovedEvent:
		return fmt.Sprintf("removed %q", p.Text)
	case pubsub.ConfirmRequestedEvent:
		return fmt.Sprintf("confirm removal of %q", p.Text)
	case pubsub.ConfirmResolvedEvent:
		if p.Outcome == taginput.Confirmed {
			return "removal confirmed"
		}
		return "removal cancelled"
	case pubsub.BlurredEvent:
		return "press tab to keep editing, esc to finish"
	}
	return current
}

// View implements tea.Model.
func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render("Tags")

	sections := []string{title, m.control.View()}
	if m.status != "" {
		// Status quotes tag text, which can be arbitrarily long.
		status := m.status
		if m.width > 0 {
			status = runewidth.Truncate(status, max(m.width-4, 10), "…")
		}
		sections = append(sections, styles.HintStyle.Render(status))
	}
	sections = append(sections, m.help.View(m.keys))

	view := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	view = m.toaster.Overlay(view, m.width, m.height)
	return zone.Scan(m.control.Overlay(view))
}

// Close releases resources held by the application.
func (m *Model) Close() {
	m.control = m.control.Close()
	if m.listenerCancel != nil {
		m.listenerCancel()
	}
	m.broker.Close()
}
