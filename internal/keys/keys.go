// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// InputKeyMap holds the bindings the tag input reacts to. Everything not
// bound here is forwarded to the text field.
type InputKeyMap struct {
	Submit     key.Binding
	Backspace  key.Binding
	SelectPrev key.Binding
	SelectNext key.Binding
	RemoveTag  key.Binding
}

// AppKeyMap holds the bindings handled by the hosting application.
type AppKeyMap struct {
	Focus key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// Input is the default tag input keymap.
var Input = InputKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add tag"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("⌫", "delete last tag"),
	),
	SelectPrev: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+←", "select previous tag"),
	),
	SelectNext: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+→", "select next tag"),
	),
	RemoveTag: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "remove selected tag"),
	),
}

// App is the default application keymap.
var App = AppKeyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus input"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "done"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k InputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Backspace, k.RemoveTag}
}

// FullHelp returns keybindings for the full help view.
func (k InputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Backspace},
		{k.SelectPrev, k.SelectNext, k.RemoveTag},
	}
}

// Combined merges the input and app keymaps for a single help view.
type Combined struct {
	Input InputKeyMap
	App   AppKeyMap
}

// ShortHelp returns keybindings for the short help view.
func (c Combined) ShortHelp() []key.Binding {
	return append(c.Input.ShortHelp(), c.App.Help, c.App.Quit)
}

// FullHelp returns keybindings for the full help view.
func (c Combined) FullHelp() [][]key.Binding {
	return append(c.Input.FullHelp(), []key.Binding{c.App.Focus, c.App.Help, c.App.Quit})
}
