package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
	th "github.com/desertthunder/dlx/internal/testing"
	"github.com/desertthunder/dlx/internal/transfer"
)

type harness struct {
	modal     *Modal
	recorder  *transfer.Recorder
	confirmed []models.Item
	context   string
	cancelled int
}

func newHarness(t *testing.T, required bool, source []models.Item) *harness {
	t.Helper()
	cfg := shared.DefaultConfig()
	cfg.Modal.Required = required

	h := &harness{recorder: &transfer.Recorder{}}
	m, err := NewModal(ModalOptions{
		Config:     cfg.Modal,
		Pagination: cfg.Pagination,
		Source:     source,
		Observer:   h.recorder,
		OnConfirm: func(items []models.Item, context string) {
			h.confirmed, h.context = items, context
		},
		OnCancel: func() { h.cancelled++ },
	})
	if err != nil {
		t.Fatalf("failed to create modal: %v", err)
	}
	h.modal = m
	return h
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// press sends msg and feeds back any message the modal produced itself. Commands from the text input are not run.
func (h *harness) press(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := h.modal.Update(msg)
	if cmd == nil || h.modal.area == searchArea {
		return cmd
	}
	if out, ok := cmd().(Msg); ok {
		_, cmd = h.modal.Update(out)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func ids(items []models.Item) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestModal(t *testing.T) {
	t.Run("labels default when blank", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Modal.CancelButtonLabel = ""
		cfg.Modal.ConfirmButtonLabel = " "
		m, err := NewModal(ModalOptions{Config: cfg.Modal, Pagination: cfg.Pagination})
		if err != nil {
			t.Fatal(err)
		}
		if m.CancelLabel() != "Cancelar" || m.ConfirmLabel() != "Confirmar" {
			t.Errorf("unexpected labels %q %q", m.CancelLabel(), m.ConfirmLabel())
		}

		cfg.Modal.CancelButtonLabel = "Back"
		m, _ = NewModal(ModalOptions{Config: cfg.Modal, Pagination: cfg.Pagination})
		if m.CancelLabel() != "Back" {
			t.Errorf("custom label should be kept, got %q", m.CancelLabel())
		}
	})

	t.Run("rejects bad pagination", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Pagination.MaxPageButtons = 0
		if _, err := NewModal(ModalOptions{Config: cfg.Modal, Pagination: cfg.Pagination}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("select and move with keys", func(t *testing.T) {
		h := newHarness(t, false, th.Items("A", "B", "C"))
		h.press(t, tea.KeyMsg{Type: tea.KeyDown})
		h.press(t, tea.KeyMsg{Type: tea.KeySpace})
		h.press(t, runes(">"))

		dual := h.modal.DualList()
		if got := ids(dual.Coordinator().SourceItems()); !reflect.DeepEqual(got, []string{"A", "C"}) {
			t.Errorf("source = %v", got)
		}
		if got := ids(h.modal.DestinationItems()); !reflect.DeepEqual(got, []string{"B"}) {
			t.Errorf("destination = %v", got)
		}
		if dual.List(TargetPane).IsSelected("B") {
			t.Error("moved item should be deselected")
		}
		if !strings.Contains(h.modal.Status(), "selectedToDestination: 1 moved") {
			t.Errorf("unexpected status %q", h.modal.Status())
		}
	})

	t.Run("move all and back", func(t *testing.T) {
		h := newHarness(t, false, th.Numbered(4))
		h.press(t, runes("}"))
		if len(h.modal.DestinationItems()) != 4 {
			t.Fatalf("expected everything moved")
		}
		h.press(t, runes("{"))
		if len(h.modal.DestinationItems()) != 0 {
			t.Errorf("expected everything back")
		}
		if !reflect.DeepEqual(h.recorder.Transfers, []transfer.Kind{transfer.AllToDestination, transfer.AllToSource}) {
			t.Errorf("observer saw %v", h.recorder.Transfers)
		}
	})

	t.Run("paging keys", func(t *testing.T) {
		h := newHarness(t, false, th.Numbered(12))
		h.press(t, runes("l"))
		src := h.modal.DualList().List(SourcePane)
		if src.CurrentPage() != 2 {
			t.Errorf("expected page 2, got %d", src.CurrentPage())
		}
		h.press(t, tea.KeyMsg{Type: tea.KeyLeft})
		if src.CurrentPage() != 1 {
			t.Errorf("expected page 1, got %d", src.CurrentPage())
		}
	})

	t.Run("tab cycles focus", func(t *testing.T) {
		h := newHarness(t, false, th.Numbered(2))
		tab := tea.KeyMsg{Type: tea.KeyTab}

		h.press(t, tab)
		if h.modal.area != listsArea || h.modal.DualList().Focus() != TargetPane {
			t.Fatal("expected target pane")
		}
		h.press(t, tab)
		if h.modal.area != dropdownArea {
			t.Fatal("expected dropdown")
		}
		h.press(t, tab)
		if h.modal.area != searchArea || !h.modal.SearchBox().Focused() {
			t.Fatal("expected search")
		}
		h.press(t, tea.KeyMsg{Type: tea.KeyShiftTab})
		if h.modal.area != dropdownArea {
			t.Fatal("expected dropdown after shift+tab")
		}
	})

	t.Run("typing filters both lists", func(t *testing.T) {
		h := newHarness(t, false, th.Numbered(12))
		h.press(t, runes("/"))
		for _, r := range "item1" {
			h.press(t, runes(string(r)))
		}

		dual := h.modal.DualList()
		if dual.List(SourcePane).FilteredCount() != 4 || dual.List(TargetPane).Filter() != "item1" {
			t.Errorf("filter not applied: %d", dual.List(SourcePane).FilteredCount())
		}

		h.press(t, tea.KeyMsg{Type: tea.KeyEsc})
		if h.modal.area != listsArea || h.modal.Closed() {
			t.Error("esc in search should return to the lists")
		}
		if dual.List(SourcePane).Filter() != "item1" {
			t.Error("filter should survive leaving the search box")
		}
	})

	t.Run("filter status", func(t *testing.T) {
		h := newHarness(t, false, th.Numbered(3))
		h.modal.Update(filterChangedMsg("item", 3))
		if h.modal.Status() != `3 matching "item"` {
			t.Errorf("unexpected status %q", h.modal.Status())
		}
		h.modal.Update(filterChangedMsg("", 3))
		if h.modal.Status() != "" {
			t.Errorf("expected status cleared, got %q", h.modal.Status())
		}
	})

	t.Run("required context blocks confirm", func(t *testing.T) {
		h := newHarness(t, true, th.Items("A"))
		h.press(t, runes("}"))

		cmd := h.press(t, tea.KeyMsg{Type: tea.KeyEnter})
		if isQuit(cmd) || h.modal.Closed() || h.confirmed != nil {
			t.Fatal("confirm without context should not close")
		}
		if h.modal.area != dropdownArea {
			t.Error("focus should move to the dropdown")
		}

		h.press(t, runes("j"))
		if h.modal.Context() != "default" {
			t.Fatalf("expected default context, got %q", h.modal.Context())
		}

		_, cmd = h.modal.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !isQuit(cmd) {
			t.Error("confirm should quit")
		}
		if h.context != "default" || !reflect.DeepEqual(ids(h.confirmed), []string{"A"}) {
			t.Errorf("onConfirm got %v %q", h.confirmed, h.context)
		}
		items, context, ok := h.modal.Result()
		if !ok || context != "default" || len(items) != 1 {
			t.Errorf("unexpected result %v %q %v", items, context, ok)
		}
	})

	t.Run("cancel resets everything", func(t *testing.T) {
		h := newHarness(t, false, th.Items("A", "B"))
		h.press(t, runes("}"))
		h.modal.Dropdown().SetValue("default")

		_, cmd := h.modal.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !isQuit(cmd) {
			t.Error("cancel should quit")
		}
		if h.cancelled != 1 {
			t.Errorf("onCancel called %d times", h.cancelled)
		}
		if h.modal.Context() != "" || len(h.modal.DestinationItems()) != 0 {
			t.Error("cancel should clear the context and return every item")
		}
		if last, _ := h.recorder.Last(); last != transfer.AllToSource {
			t.Errorf("expected allToSource, got %v", last)
		}
		if _, _, ok := h.modal.Result(); ok {
			t.Error("cancelled modal has no result")
		}
	})

	t.Run("ctrl+c cancels from the search box", func(t *testing.T) {
		h := newHarness(t, false, th.Items("A"))
		h.press(t, runes("/"))
		_, cmd := h.modal.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !isQuit(cmd) || h.cancelled != 1 {
			t.Error("ctrl+c should cancel")
		}
	})

	t.Run("UpdateDualList", func(t *testing.T) {
		h := newHarness(t, false, th.Items("A"))
		h.modal.SearchBox().SetText("b")

		if err := h.modal.UpdateDualList(th.Items("B1", "B2", "C"), th.Items("B3"), 2); err != nil {
			t.Fatal(err)
		}

		dual := h.modal.DualList()
		if dual.List(SourcePane).PageSize() != 2 || dual.List(SourcePane).FilteredCount() != 2 {
			t.Errorf("new lists should use the page size and keep the filter")
		}
		if got, _ := h.modal.Lists().Lookup(h.modal.ID() + ".target"); got != dual.List(TargetPane) {
			t.Error("registry should point at the new target list")
		}

		h.modal.SearchBox().SetText("")
		if dual.List(SourcePane).FilteredCount() != 3 {
			t.Error("search box should drive the rebuilt lists")
		}

		h.press(t, runes("}"))
		if len(h.recorder.Transfers) == 0 {
			t.Error("observer should carry over")
		}
	})

	t.Run("View", func(t *testing.T) {
		h := newHarness(t, false, th.Items("Apple"))
		h.modal.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		view := h.modal.View()
		for _, want := range []string{"Dialog Modal", "Selecione uma opção", "Source List", "Target List", "Apple", "Cancelar", "Confirmar"} {
			if !strings.Contains(view, want) {
				t.Errorf("view missing %q", want)
			}
		}
	})

	t.Run("Init sets the title", func(t *testing.T) {
		h := newHarness(t, false, nil)
		if h.modal.Init() == nil {
			t.Error("expected a window title command")
		}
	})
}
