package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Word bindings accept both alt and ctrl modifiers; terminals disagree on
// which one they send.
type KeyMap struct {
	Left, Right                     key.Binding
	WordLeft, WordRight             key.Binding
	SelectLeft, SelectRight         key.Binding
	SelectWordLeft, SelectWordRight key.Binding

	Enter key.Binding
	Blur  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Blur:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "unfocus")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.WordLeft, k.WordRight, k.Enter, k.Blur}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.WordLeft, k.WordRight},
		{k.SelectLeft, k.SelectRight, k.SelectWordLeft, k.SelectWordRight},
		{k.Enter, k.Blur},
	}
}

func (k KeyMap) isZero() bool {
	for _, b := range []key.Binding{k.Left, k.Right, k.WordLeft, k.WordRight, k.Enter} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
