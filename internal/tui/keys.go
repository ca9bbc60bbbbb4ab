// This file defines the keyboard bindings for the grid editor and the
// help line rendered in the footer.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the grid editor.
type KeyMap struct {
	// Navigation keys
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// General UI control
	Quit  key.Binding
	Enter key.Binding
	Esc   key.Binding
	Yes   key.Binding
	No    key.Binding

	// Grid actions
	Edit      key.Binding
	AddRow    key.Binding
	DeleteRow key.Binding
	Mark      key.Binding

	// History actions
	Undo     key.Binding
	Redo     key.Binding
	Timeline key.Binding
	Restart  key.Binding

	// Search and file actions
	Find   key.Binding
	Next   key.Binding
	Save   key.Binding
	Reload key.Binding
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first row"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last row"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "no"),
	),

	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit cell"),
	),
	AddRow: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add row"),
	),
	DeleteRow: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete row(s)"),
	),
	Mark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "mark row"),
	),

	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "redo"),
	),
	Timeline: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "timeline"),
	),
	Restart: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "restart edits"),
	),

	Find: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload file"),
	),
}
