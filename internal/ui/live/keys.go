package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the live quiz.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextQ    key.Binding
	PrevQ    key.Binding
	Select   key.Binding
	Clear    key.Binding
	Grade    key.Binding
	Reset    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextQ:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next question")),
		PrevQ:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous question")),
		Select:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Clear:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear")),
		Grade:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grade")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Grade, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextQ, k.PrevQ},
		{k.Select, k.Clear, k.Grade, k.Reset},
		{k.PageUp, k.PageDown, k.Quit},
	}
}
