package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/dlx/internal/transfer"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTransferred MsgKind = iota
	MsgFilterChanged
	MsgContextChanged
	MsgInvalid
)

// Kind returns the message kind.
func (m Msg) Kind() MsgKind { return m.kind }

// transferredMsg is the constructor for [MsgTransferred]
func transferredMsg(res transfer.Result, err error) Msg {
	return Msg{
		kind: MsgTransferred,
		data: struct {
			result transfer.Result
			err    error
		}{res, err},
	}
}

// filterChangedMsg is the constructor for [MsgFilterChanged]
func filterChangedMsg(text string, matches int) Msg {
	return Msg{
		kind: MsgFilterChanged,
		data: struct {
			text    string
			matches int
		}{text, matches},
	}
}

// contextChangedMsg is the constructor for [MsgContextChanged]
func contextChangedMsg(value string) Msg {
	return Msg{kind: MsgContextChanged, data: value}
}

// invalidMsg is the constructor for [MsgInvalid]
func invalidMsg(err error) Msg {
	return Msg{kind: MsgInvalid, data: err}
}

func send(msg Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
