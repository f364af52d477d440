package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit    key.Binding
	variant key.Binding
	copy    key.Binding
}

var keys = keyMap{
	quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	variant: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "library/binary")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.variant, k.copy, k.quit}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
