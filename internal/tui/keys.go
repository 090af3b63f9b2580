package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Jump      key.Binding
	Toggle    key.Binding
	SpacePrev key.Binding
	SpaceNext key.Binding
	Animate   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "gift -1")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "gift +1")),
		Jump:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "gift +1, no animation")),
		Toggle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "switch window size")),
		SpacePrev: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "space -1")),
		SpaceNext: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "space +1")),
		Animate:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle animation")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump, k.Toggle},
		{k.SpacePrev, k.SpaceNext, k.Animate},
		{k.Help, k.Quit},
	}
}
