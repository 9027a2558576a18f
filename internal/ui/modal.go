package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/paging"
	"github.com/desertthunder/dlx/internal/shared"
	"github.com/desertthunder/dlx/internal/transfer"
)

const (
	defaultCancelLabel  = "Cancelar"
	defaultConfirmLabel = "Confirmar"
)

// area is the widget that owns the keyboard.
type area int

const (
	dropdownArea area = iota
	searchArea
	listsArea
)

// ModalOptions configures [NewModal].
type ModalOptions struct {
	Config     shared.ModalConfig
	Pagination shared.PaginationConfig
	Source     []models.Item
	Target     []models.Item
	Observer   transfer.Observer
	Logger     *log.Logger
	OnConfirm  func(items []models.Item, context string)
	OnCancel   func()
}

// Modal is the picker dialog: a context dropdown, a search box and a dual list, closed with confirm or cancel.
type Modal struct {
	id           string
	title        string
	cancelLabel  string
	confirmLabel string

	dropdown *Dropdown
	search   *SearchBox
	dual     *DualList

	sourceTitle string
	targetTitle string
	pagination  paging.Options
	observer    transfer.Observer
	registry    *paging.Registry
	logger      *log.Logger
	onConfirm   func(items []models.Item, context string)
	onCancel    func()

	keys      keyMap
	help      help.Model
	area      area
	width     int
	status    string
	statusErr bool
	confirmed bool
	closed    bool
}

// NewModal builds the dialog from configuration and the initial items of both lists.
func NewModal(opts ModalOptions) (*Modal, error) {
	cfg := opts.Config
	options := make([]Option, len(cfg.Contexts))
	for i, c := range cfg.Contexts {
		options[i] = Option{ID: c.ID, Caption: c.Caption}
	}

	dropdown, err := NewDropdown(cfg.ID+".context", cfg.DropdownDescription, cfg.Required, options)
	if err != nil {
		return nil, err
	}

	m := &Modal{
		id:           cfg.ID,
		title:        cfg.Title,
		cancelLabel:  labelOr(cfg.CancelButtonLabel, defaultCancelLabel),
		confirmLabel: labelOr(cfg.ConfirmButtonLabel, defaultConfirmLabel),
		dropdown:     dropdown,
		search:       NewSearchBox(cfg.SearchPlaceholder),
		sourceTitle:  cfg.SourceListTitle,
		targetTitle:  cfg.TargetListTitle,
		pagination:   paging.FromConfig(opts.Pagination),
		observer:     opts.Observer,
		registry:     paging.NewRegistry(),
		logger:       opts.Logger,
		onConfirm:    opts.OnConfirm,
		onCancel:     opts.OnCancel,
		keys:         newKeyMap(),
		help:         help.New(),
		area:         listsArea,
		width:        80,
	}

	if err := m.UpdateDualList(opts.Source, opts.Target, opts.Pagination.ItemsPerPage); err != nil {
		return nil, err
	}
	m.search.OnSearch(func(text string) { m.dual.Filter(text) })

	return m, nil
}

func (m *Modal) ID() string                      { return m.id }
func (m *Modal) Title() string                   { return m.title }
func (m *Modal) CancelLabel() string             { return m.cancelLabel }
func (m *Modal) ConfirmLabel() string            { return m.confirmLabel }
func (m *Modal) Dropdown() *Dropdown             { return m.dropdown }
func (m *Modal) SearchBox() *SearchBox           { return m.search }
func (m *Modal) DualList() *DualList             { return m.dual }
func (m *Modal) Lists() *paging.Registry         { return m.registry }
func (m *Modal) Context() string                 { return m.dropdown.Value() }
func (m *Modal) Status() string                  { return m.status }
func (m *Modal) Closed() bool                    { return m.closed }
func (m *Modal) Confirmed() bool                 { return m.confirmed }
func (m *Modal) DestinationItems() []models.Item { return m.dual.DestinationItems() }

// UpdateDualList replaces both lists, keeping titles, observer, pagination options and the current search.
func (m *Modal) UpdateDualList(source, target []models.Item, itemsPerPage int) error {
	if itemsPerPage <= 0 {
		itemsPerPage = paging.DefaultPageSize
	}

	dual, err := NewDualList(DualListOptions{
		ID:           m.id,
		SourceTitle:  m.sourceTitle,
		TargetTitle:  m.targetTitle,
		Source:       source,
		Target:       target,
		ItemsPerPage: itemsPerPage,
		Pagination:   m.pagination,
		Observer:     m.observer,
		Registry:     m.registry,
		Logger:       m.logger,
	})
	if err != nil {
		return err
	}

	if m.dual != nil {
		dual.SetFocus(m.dual.Focus())
	}
	m.dual = dual
	if text := m.search.Text(); text != "" {
		m.dual.Filter(text)
	}
	return nil
}

// Confirm validates the dropdown and hands the target items and context to the confirm callback.
func (m *Modal) Confirm() error {
	if err := m.dropdown.Validate(); err != nil {
		return err
	}
	m.confirmed = true
	m.closed = true
	if m.onConfirm != nil {
		m.onConfirm(m.dual.DestinationItems(), m.dropdown.Value())
	}
	return nil
}

// Cancel clears the dropdown, returns every target item to the source list and calls the cancel callback.
func (m *Modal) Cancel() error {
	m.dropdown.SetValue("")
	if _, err := m.dual.MoveAllToSource(); err != nil {
		return err
	}
	m.confirmed = false
	m.closed = true
	if m.onCancel != nil {
		m.onCancel()
	}
	return nil
}

// Result returns the target items and context once the dialog has been confirmed.
func (m *Modal) Result() ([]models.Item, string, bool) {
	if !m.confirmed {
		return nil, "", false
	}
	return m.dual.DestinationItems(), m.dropdown.Value(), true
}

// Init sets the terminal title.
func (m *Modal) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update handles incoming messages and updates the model state.
func (m *Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m.cancel()
		}
		switch m.area {
		case dropdownArea:
			return m.handleDropdownKeys(msg)
		case searchArea:
			return m.handleSearchKeys(msg)
		default:
			return m.handleListKeys(msg)
		}

	case Msg:
		m.handleMsg(msg)
		return m, nil
	}

	if m.area == searchArea {
		return m, m.search.Update(msg)
	}
	return m, nil
}

// View renders the dialog.
func (m *Modal) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(styles.title.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.dropdown.View(m.area == dropdownArea))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.dual.View(m.width, m.area == listsArea))
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styles.err.Render(m.status))
		} else {
			b.WriteString(styles.ok.Render(m.status))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Modal) handleDropdownKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prev := m.dropdown.Value()
	switch {
	case key.Matches(msg, m.keys.cancel):
		return m.cancel()
	case key.Matches(msg, m.keys.confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.focus):
		return m, m.cycleFocus(msg.String() == "shift+tab")
	case key.Matches(msg, m.keys.search):
		return m, m.setArea(searchArea)
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.down), key.Matches(msg, m.keys.nextPage):
		m.dropdown.Next()
	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.prevPage):
		m.dropdown.Prev()
	}

	if value := m.dropdown.Value(); value != prev {
		return m, send(contextChangedMsg(value))
	}
	return m, nil
}

func (m *Modal) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.focus):
		return m, m.cycleFocus(msg.String() == "shift+tab")
	case key.Matches(msg, m.keys.confirm), key.Matches(msg, m.keys.cancel):
		return m, m.setArea(listsArea)
	}

	prev := m.search.Text()
	cmd := m.search.Update(msg)
	if text := m.search.Text(); text != prev {
		matches := m.dual.List(SourcePane).FilteredCount() + m.dual.List(TargetPane).FilteredCount()
		return m, tea.Batch(cmd, send(filterChangedMsg(text, matches)))
	}
	return m, cmd
}

func (m *Modal) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		return m.cancel()
	case key.Matches(msg, m.keys.confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.focus):
		return m, m.cycleFocus(msg.String() == "shift+tab")
	case key.Matches(msg, m.keys.search):
		return m, m.setArea(searchArea)
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.up):
		m.dual.MoveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.dual.MoveCursor(1)
	case key.Matches(msg, m.keys.prevPage):
		m.dual.PrevPage()
	case key.Matches(msg, m.keys.nextPage):
		m.dual.NextPage()
	case key.Matches(msg, m.keys.toggle):
		if _, err := m.dual.ToggleCurrent(); err != nil {
			return m, send(invalidMsg(err))
		}
	case key.Matches(msg, m.keys.selectedToDest):
		return m, send(transferredMsg(m.dual.TransferSelected(transfer.ToDestination)))
	case key.Matches(msg, m.keys.selectedToSrc):
		return m, send(transferredMsg(m.dual.TransferSelected(transfer.ToSource)))
	case key.Matches(msg, m.keys.allToDest):
		return m, send(transferredMsg(m.dual.TransferAll(transfer.ToDestination)))
	case key.Matches(msg, m.keys.allToSrc):
		return m, send(transferredMsg(m.dual.TransferAll(transfer.ToSource)))
	}
	return m, nil
}

func (m *Modal) handleMsg(msg Msg) {
	switch msg.kind {
	case MsgTransferred:
		data := msg.data.(struct {
			result transfer.Result
			err    error
		})
		if data.err != nil {
			m.setStatus(data.err)
			return
		}
		m.status, m.statusErr = fmt.Sprintf("%s: %d moved", data.result.Kind, data.result.Count()), false

	case MsgFilterChanged:
		data := msg.data.(struct {
			text    string
			matches int
		})
		if data.text == "" {
			m.status = ""
		} else {
			m.status = fmt.Sprintf("%d matching %q", data.matches, data.text)
		}
		m.statusErr = false

	case MsgContextChanged:
		value := msg.data.(string)
		m.status, m.statusErr = "context: "+labelOr(value, "none"), false

	case MsgInvalid:
		err := msg.data.(error)
		m.setStatus(err)
		if errors.Is(err, shared.ErrValidation) && m.dropdown.Validate() != nil {
			m.area = dropdownArea
			m.search.Blur()
		}
	}
}

func (m *Modal) confirm() (tea.Model, tea.Cmd) {
	if err := m.Confirm(); err != nil {
		return m, send(invalidMsg(err))
	}
	return m, tea.Quit
}

func (m *Modal) cancel() (tea.Model, tea.Cmd) {
	if err := m.Cancel(); err != nil {
		return m, send(invalidMsg(err))
	}
	return m, tea.Quit
}

// cycleFocus walks dropdown → search → source → target and around.
func (m *Modal) cycleFocus(reverse bool) tea.Cmd {
	type stop struct {
		area area
		pane Pane
	}
	stops := []stop{{dropdownArea, SourcePane}, {searchArea, SourcePane}, {listsArea, SourcePane}, {listsArea, TargetPane}}

	current := 0
	for i, s := range stops {
		if s.area == m.area && (s.area != listsArea || s.pane == m.dual.Focus()) {
			current = i
			break
		}
	}

	step := 1
	if reverse {
		step = len(stops) - 1
	}
	next := stops[(current+step)%len(stops)]
	if next.area == listsArea {
		m.dual.SetFocus(next.pane)
	}
	return m.setArea(next.area)
}

func (m *Modal) setArea(a area) tea.Cmd {
	m.area = a
	if a == searchArea {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *Modal) setStatus(err error) {
	m.status, m.statusErr = err.Error(), true
}

func (m *Modal) renderButtons() string {
	cancel := styles.pane.Render(m.cancelLabel)
	confirm := styles.focused.Render(m.confirmLabel)
	return lipgloss.JoinHorizontal(lipgloss.Center, cancel, " ", confirm)
}

func labelOr(label, fallback string) string {
	if strings.TrimSpace(label) == "" {
		return fallback
	}
	return label
}
