package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagclip/pkg/session"
)

// KeyMap holds the form's key bindings
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next / new attribute"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy & close"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "add attribute"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("^x", "remove attribute"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Commit, k.Cancel, k.AddRow, k.RemoveRow}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Commit, k.Cancel},
		{k.AddRow, k.RemoveRow},
	}
}

// keyEvent maps a terminal key press onto the keys the session reacts to.
// Alt is the only modifier a terminal reports for these keys; ctrl+c is
// treated as an unmodified escape.
func keyEvent(msg tea.KeyMsg) session.KeyEvent {
	switch msg.Type {
	case tea.KeyEsc:
		return session.KeyEvent{Key: session.KeyEscape, Modified: msg.Alt}
	case tea.KeyCtrlC:
		return session.KeyEvent{Key: session.KeyEscape}
	case tea.KeyTab:
		return session.KeyEvent{Key: session.KeyTab, Modified: msg.Alt}
	case tea.KeyShiftTab:
		return session.KeyEvent{Key: session.KeyTab, Modified: true}
	case tea.KeyEnter:
		return session.KeyEvent{Key: session.KeyEnter, Modified: msg.Alt}
	}
	return session.KeyEvent{}
}
