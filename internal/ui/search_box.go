package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBox is a single-line text input that reports every change of its text.
type SearchBox struct {
	input    textinput.Model
	onSearch func(text string)
}

// NewSearchBox creates a search box with the given placeholder.
func NewSearchBox(placeholder string) *SearchBox {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "/ "
	input.CharLimit = 256
	return &SearchBox{input: input}
}

// OnSearch registers fn to be called with the text whenever it changes.
func (s *SearchBox) OnSearch(fn func(text string)) { s.onSearch = fn }

func (s *SearchBox) Text() string        { return s.input.Value() }
func (s *SearchBox) Placeholder() string { return s.input.Placeholder }
func (s *SearchBox) Focused() bool       { return s.input.Focused() }

// SetText replaces the text.
func (s *SearchBox) SetText(text string) {
	prev := s.input.Value()
	s.input.SetValue(text)
	s.changed(prev)
}

// Clear empties the text. onSearch fires with "" even when the text was already empty.
func (s *SearchBox) Clear() {
	s.input.SetValue("")
	if s.onSearch != nil {
		s.onSearch("")
	}
}

func (s *SearchBox) Focus() tea.Cmd { return s.input.Focus() }
func (s *SearchBox) Blur()          { s.input.Blur() }

// Update forwards msg to the text input and reports a change.
func (s *SearchBox) Update(msg tea.Msg) tea.Cmd {
	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.changed(prev)
	return cmd
}

func (s *SearchBox) View() string {
	return s.input.View()
}

func (s *SearchBox) changed(prev string) {
	if s.input.Value() != prev && s.onSearch != nil {
		s.onSearch(s.input.Value())
	}
}
