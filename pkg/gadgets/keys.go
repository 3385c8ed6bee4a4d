package gadgets

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings used by Options.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

// DefaultKeyMap returns arrow keys, vi keys and w/s for movement, and enter
// or space to choose.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j/s", "move down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "choose"),
		),
	}
}
