package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	paste     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	clear     key.Binding
}

// Letters are typed into the TIN input, so every action outside the country
// list is bound to a control chord.
var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	clear:     key.NewBinding(key.WithKeys("ctrl+l")),
}
