// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextMutedColor   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	BorderDefaultColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	TagTextColor       lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	TagBgColor         lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	TagSelectedBgColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	TagRemoveColor     lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	ButtonTextColor             lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonSecondaryBgColor      lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	OverlayTitleColor  lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	ToastBorderInfoColor  lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderErrorColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	TagStyle         lipgloss.Style
	TagSelectedStyle lipgloss.Style
	TagRemoveStyle   lipgloss.Style
	InputStyle       lipgloss.Style
	InputFocusStyle  lipgloss.Style
	HintStyle        lipgloss.Style

	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle           lipgloss.Style
	DangerButtonFocusedStyle    lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	TagStyle = lipgloss.NewStyle().
		Foreground(TagTextColor).
		Background(TagBgColor).
		Padding(0, 1)
	TagSelectedStyle = TagStyle.
		Background(TagSelectedBgColor).
		Bold(true)
	TagRemoveStyle = lipgloss.NewStyle().
		Foreground(TagRemoveColor).
		Bold(true)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor).
		Padding(0, 1)
	InputFocusStyle = InputStyle.BorderForeground(BorderFocusColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	baseButtonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(ButtonTextColor)
	SecondaryButtonStyle = baseButtonStyle.Background(ButtonSecondaryBgColor)
	SecondaryButtonFocusedStyle = baseButtonStyle.
		Background(ButtonSecondaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)
	DangerButtonStyle = baseButtonStyle.Background(ButtonDangerBgColor)
	DangerButtonFocusedStyle = baseButtonStyle.
		Background(ButtonDangerFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)
}
