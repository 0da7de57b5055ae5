package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
	Clear  key.Binding
	Filter key.Binding
	About  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Rename: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	About:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Add, k.Rename, k.Delete, k.Clear, k.Filter, k.About, k.Quit}
}
