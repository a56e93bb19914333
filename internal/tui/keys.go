package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the TUI key bindings.
type KeyMap struct {
	Advance key.Binding
	Back    key.Binding
	Split   key.Binding
	Select  key.Binding
	Toggle  key.Binding
	Remove  key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "advance")),
		Back:    key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "back")),
		Split:   key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "add block")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select last")),
		Toggle:  key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "select/delete")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete last")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Split, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Back, k.Split},
		{k.Select, k.Toggle, k.Remove},
		{k.Reset, k.Help, k.Quit},
	}
}
