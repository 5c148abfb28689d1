package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	SwitchGroup key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	Toggle      key.Binding
	Remove      key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchGroup: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch group"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/unselect"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "backspace", "delete"),
			key.WithHelp("x", "unselect"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchGroup, k.Toggle, k.Left, k.Right, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchGroup, k.Toggle, k.Remove},
		{k.Left, k.Right, k.Home, k.End},
		{k.Help},
	}
}
