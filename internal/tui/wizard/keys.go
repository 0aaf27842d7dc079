package wizard

import "charm.land/bubbles/v2/key"

// keyMap holds the wizard's key bindings.
type keyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Advance   key.Binding
	Retreat   key.Binding
	FocusBar  key.Binding
	FocusBarR key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	AddIdea   key.Binding
	Edit      key.Binding
	Clear     key.Binding
	Export    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Advance:   key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "next")),
	Retreat:   key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "back")),
	FocusBar:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "buttons")),
	FocusBarR: key.NewBinding(key.WithKeys("shift+tab")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "lower")),
	Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "higher")),
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	AddIdea:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add idea")),
	Edit:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit in $EDITOR")),
	Clear:     key.NewBinding(key.WithKeys("0", "backspace", "delete"), key.WithHelp("0", "clear")),
	Export:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
}
