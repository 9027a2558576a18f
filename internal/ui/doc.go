// Package ui renders the dual-list picker as a terminal interface using bubbletea's Elm architecture.
//
// The widgets are small state holders with a View method, composed by [Modal]:
//  1. [Dropdown] : pick the context the selection is for
//  2. [SearchBox] : filter both lists by caption
//  3. [DualList] : page through the source and target lists and move items between them
//
// [Modal] implements the standard Init/Update/View pattern. Transfers happen synchronously inside Update and the
// result comes back through the Msg union so the status line can report it.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, tab, enter, esc) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
