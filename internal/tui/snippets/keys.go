package snippets

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	toggleFocus key.Binding
	activate    key.Binding
	copy        key.Binding
	paste       key.Binding
	edit        key.Binding
	remove      key.Binding
	refresh     key.Binding
	exitNaming  key.Binding
	quit        key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "copy / create"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "copy and paste"),
		),
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "trash (press twice)"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		exitNaming: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
