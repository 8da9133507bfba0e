package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	esc   key.Binding
	tab   key.Binding
	quit  key.Binding
	copy  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	copy:  key.NewBinding(key.WithKeys("c")),
}
