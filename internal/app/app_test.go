package app

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/taginput/internal/config"
	"github.com/zjrosen/taginput/internal/pubsub"
	"github.com/zjrosen/taginput/internal/taginput"
	"github.com/zjrosen/taginput/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func createTestModel(t *testing.T, mutate func(*config.Config), initial ...string) Model {
	t.Helper()
	cfg := config.Defaults()
	if mutate != nil {
		mutate(&cfg)
	}
	m := New(cfg, initial...)
	t.Cleanup(m.Close)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return newModel.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	newModel, cmd := m.Update(msg)
	return newModel.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_InitialTags(t *testing.T) {
	m := createTestModel(t, nil, "red", "blue")
	assert.Equal(t, []string{"red", "blue"}, m.Tags())
	assert.Equal(t, "red\nblue", m.Output())
}

func TestApp_OutputSeparator(t *testing.T) {
	m := createTestModel(t, func(c *config.Config) { c.Output.Separator = "," }, "a", "b", "c")
	assert.Equal(t, "a,b,c", m.Output())
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t, nil)

	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_EscQuits(t *testing.T) {
	m := createTestModel(t, nil)

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, isQuit(cmd))
}

func TestApp_EscCancelsOpenConfirmationInsteadOfQuitting(t *testing.T) {
	m := createTestModel(t, func(c *config.Config) { c.Input.BackspaceBehavior = "delete-confirm" }, "red")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	_, open := m.control.Pending()
	require.True(t, open)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, isQuit(cmd))

	m, _ = update(m, cmd())
	_, open = m.control.Pending()
	assert.False(t, open)
	assert.Equal(t, []string{"red"}, m.Tags())
}

func TestApp_TabRefocusesAfterBlur(t *testing.T) {
	m := createTestModel(t, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.control.Focused())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.control.Focused())
}

func TestApp_HelpToggle(t *testing.T) {
	m := createTestModel(t, nil)

	// "?" is text while the field is focused.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.showHelp)
	assert.Equal(t, "?", m.control.Draft())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showHelp)
	assert.True(t, m.help.ShowAll)
}

func TestApp_StatusFromEvents(t *testing.T) {
	tests := []struct {
		ev   pubsub.Event[taginput.Event]
		want string
	}{
		{pubsub.Event[taginput.Event]{Type: pubsub.TagAddedEvent, Payload: taginput.Event{Text: "red"}}, `added "red"`},
		{pubsub.Event[taginput.Event]{Type: pubsub.TagRemovedEvent, Payload: taginput.Event{Text: "red"}}, `removed "red"`},
		{pubsub.Event[taginput.Event]{Type: pubsub.ConfirmRequestedEvent, Payload: taginput.Event{Text: "red"}}, `confirm removal of "red"`},
		{pubsub.Event[taginput.Event]{Type: pubsub.ConfirmResolvedEvent, Payload: taginput.Event{Outcome: taginput.Confirmed}}, "removal confirmed"},
		{pubsub.Event[taginput.Event]{Type: pubsub.ConfirmResolvedEvent, Payload: taginput.Event{Outcome: taginput.Cancelled}}, "removal cancelled"},
		{pubsub.Event[taginput.Event]{Type: pubsub.DraftChangedEvent, Payload: taginput.Event{Text: "r"}}, "unchanged"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.ev, "unchanged"))
		})
	}
}

func TestApp_ThemeChanged(t *testing.T) {
	m := createTestModel(t, nil)
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })

	m, cmd := update(m, ThemeChangedMsg{Theme: config.ThemeConfig{Preset: "high-contrast"}})
	require.NotNil(t, cmd)
	assert.Equal(t, "theme reloaded", m.toaster.Message())
	assert.Equal(t, "high-contrast", m.cfg.Theme.Preset)
	assert.Contains(t, m.View(), "theme reloaded")

	m, _ = update(m, ThemeChangedMsg{Theme: config.ThemeConfig{Preset: "no-such-theme"}})
	assert.Contains(t, m.toaster.Message(), "theme not applied")
	assert.Equal(t, "high-contrast", m.cfg.Theme.Preset)
}

func TestApp_ViewShowsDialogOverlay(t *testing.T) {
	m := createTestModel(t, func(c *config.Config) { c.Input.BackspaceBehavior = "delete-confirm" }, "red")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})

	view := m.View()
	assert.Contains(t, view, "Are you sure?")
	assert.Contains(t, view, `Do you want to delete the tag "red"?`)
}

func TestApp_Program(t *testing.T) {
	cfg := config.Defaults()
	m := New(cfg)
	t.Cleanup(m.Close)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Type("red")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Type("blue")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("blue"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	assert.Equal(t, []string{"red"}, final.Tags())
	assert.Equal(t, "red", strings.TrimSpace(final.Output()))
}

func TestApp_LongStatusIsTruncated(t *testing.T) {
	m := createTestModel(t, nil)
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 24})
	m.status = strings.Repeat("x", 100)

	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "xxx") {
			assert.Contains(t, line, "…")
			assert.LessOrEqual(t, lipgloss.Width(strings.TrimSpace(line)), 26)
		}
	}
}
