package walker

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Move    key.Binding
	Horse   key.Binding
	EndTurn key.Binding
	Tips    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next link"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous link"),
		),
		Move: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "move"),
		),
		Horse: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "use horse"),
		),
		EndTurn: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end turn"),
		),
		Tips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Move, k.Horse, k.EndTurn, k.Tips, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Move},
		{k.Horse, k.EndTurn},
		{k.Tips, k.Quit},
	}
}
