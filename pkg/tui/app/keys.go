package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	View     key.Binding
	Add      key.Binding
	Filter   key.Binding
	Dates    key.Binding
	Clear    key.Binding
	Grab     key.Binding
	Drop     key.Binding
	Delete   key.Binding
	Trash    key.Binding
	Restore  key.Binding
	Purge    key.Binding
	ListUp   key.Binding
	ListDown key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "list/date view"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add here"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "keyword"),
		),
		Dates: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "date filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "trash"),
		),
		Trash: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "show trash"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Purge: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete forever"),
		),
		ListUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "list up"),
		),
		ListDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "list down"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.View, k.Grab, k.Trash, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Add},
		{k.View, k.Filter, k.Dates, k.Clear},
		{k.Grab, k.Drop, k.Delete, k.Cancel},
		{k.Trash, k.Restore, k.Purge},
		{k.ListUp, k.ListDown, k.Help, k.Quit},
	}
}
