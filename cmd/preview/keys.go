package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reload key.Binding
	Dark   key.Binding
	Links  key.Binding
	Quit   key.Binding
	Log    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Dark, k.Links, k.Log, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Reload: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "re-render"),
	),
	Dark: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle dark colors"),
	),
	Links: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "toggle link targets"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Log: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "toggle log"),
	),
}
