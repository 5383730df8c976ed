// Package modal provides the yes/no confirmation dialog shown before a tag is
// removed.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/taginput/internal/ui/overlay"
	"github.com/zjrosen/taginput/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonDanger    ButtonVariant = iota // Red (destructive actions)
	ButtonSecondary                      // Grey
)

// Config controls modal appearance.
type Config struct {
	ID             string // Echoed back in SubmitMsg/CancelMsg so callers can match answers
	Title          string
	Message        string
	ConfirmLabel   string // Default "Confirm"
	CancelLabel    string // Default "Cancel"
	ConfirmVariant ButtonVariant
	MinWidth       int // Minimum content width (0 = default 40)
}

// SubmitMsg is sent when the user confirms.
type SubmitMsg struct {
	ID string
}

// CancelMsg is sent when the user cancels (Esc, n, or the Cancel button).
type CancelMsg struct {
	ID string
}

// Field identifies which button is focused.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the confirmation dialog state.
type Model struct {
	config       Config
	focusedField Field
	width        int
	height       int
}

// New creates a dialog with focus on the confirm button.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	return Model{config: cfg, focusedField: FieldConfirm}
}

// ID returns the request ID this dialog answers.
func (m Model) ID() string { return m.config.ID }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "left", "right", "h", "l":
			m.focusedField = 1 - m.focusedField
			return m, nil
		case "y":
			return m, m.submit()
		case "n", "esc":
			return m, m.cancel()
		case "enter":
			if m.focusedField == FieldCancel {
				return m, m.cancel()
			}
			return m, m.submit()
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		if z := zone.Get(m.zoneID("confirm")); z != nil && z.InBounds(msg) {
			return m, m.submit()
		}
		if z := zone.Get(m.zoneID("cancel")); z != nil && z.InBounds(msg) {
			return m, m.cancel()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) submit() tea.Cmd {
	id := m.config.ID
	return func() tea.Msg { return SubmitMsg{ID: id} }
}

func (m Model) cancel() tea.Cmd {
	id := m.config.ID
	return func() tea.Msg { return CancelMsg{ID: id} }
}

func (m Model) zoneID(button string) string {
	return "modal-" + button + "-" + m.config.ID
}

// View renders the dialog box without a background.
func (m Model) View() string {
	contentWidth := max(40, m.config.MinWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth)
		content.WriteString(msgStyle.Render(m.config.Message))
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.config.Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(result.String())
}

func (m Model) renderButtons() string {
	confirmStyle := styles.DangerButtonStyle
	if m.focusedField == FieldConfirm {
		confirmStyle = styles.DangerButtonFocusedStyle
	}
	if m.config.ConfirmVariant == ButtonSecondary {
		confirmStyle = styles.SecondaryButtonStyle
		if m.focusedField == FieldConfirm {
			confirmStyle = styles.SecondaryButtonFocusedStyle
		}
	}

	cancelStyle := styles.SecondaryButtonStyle
	if m.focusedField == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	confirmBtn := zone.Mark(m.zoneID("confirm"), confirmStyle.Render(m.config.ConfirmLabel))
	cancelBtn := zone.Mark(m.zoneID("cancel"), cancelStyle.Render(m.config.CancelLabel))
	return cancelBtn + "  " + confirmBtn
}

// Overlay renders the modal centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize updates the viewport size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusedField returns the focused button.
func (m Model) FocusedField() Field {
	return m.focusedField
}
