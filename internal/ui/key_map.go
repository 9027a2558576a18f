package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up             key.Binding
	down           key.Binding
	prevPage       key.Binding
	nextPage       key.Binding
	toggle         key.Binding
	selectedToDest key.Binding
	selectedToSrc  key.Binding
	allToDest      key.Binding
	allToSrc       key.Binding
	focus          key.Binding
	search         key.Binding
	confirm        key.Binding
	cancel         key.Binding
	help           key.Binding
	quit           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		prevPage:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		nextPage:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "select")),
		selectedToDest: key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move selected")),
		selectedToSrc:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "return selected")),
		allToDest:      key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "move all")),
		allToSrc:       key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "return all")),
		focus:          key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		confirm:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:           key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focus, k.toggle, k.selectedToDest, k.confirm, k.cancel, k.help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.prevPage, k.nextPage},
		{k.toggle, k.selectedToDest, k.selectedToSrc, k.allToDest, k.allToSrc},
		{k.focus, k.search, k.confirm, k.cancel, k.help, k.quit},
	}
}
