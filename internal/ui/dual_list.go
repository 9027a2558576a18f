package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/paging"
	"github.com/desertthunder/dlx/internal/transfer"
)

// Pane identifies one side of a [DualList].
type Pane int

const (
	SourcePane Pane = iota
	TargetPane
)

func (p Pane) other() Pane { return 1 - p }

// DualListOptions configures [NewDualList].
type DualListOptions struct {
	ID           string
	SourceTitle  string
	TargetTitle  string
	Source       []models.Item
	Target       []models.Item
	ItemsPerPage int
	Pagination   paging.Options
	Observer     transfer.Observer
	Registry     *paging.Registry
	Logger       *log.Logger
}

// DualList shows a source and a target list side by side, each paginated, and moves items between them.
type DualList struct {
	id          string
	sourceTitle string
	targetTitle string
	coord       *transfer.Coordinator
	registry    *paging.Registry
	focus       Pane
	cursor      [2]int
	hint        string
}

// NewDualList builds both collections, registers them under "<id>.source" and "<id>.target" and pairs them
// with a coordinator. Transfers are logged at debug level when a logger is given.
func NewDualList(opts DualListOptions) (*DualList, error) {
	source, err := paging.New(opts.Source, opts.ItemsPerPage, opts.Pagination)
	if err != nil {
		return nil, fmt.Errorf("source list: %w", err)
	}
	target, err := paging.New(opts.Target, opts.ItemsPerPage, opts.Pagination)
	if err != nil {
		return nil, fmt.Errorf("target list: %w", err)
	}

	var obs transfer.Observer = opts.Observer
	if opts.Logger != nil {
		obs = transfer.Multi(newLogObserver(opts.Logger, opts.ID), opts.Observer)
	}
	coord, err := transfer.New(source, target, obs)
	if err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = paging.NewRegistry()
	}
	registry.Replace(opts.ID+".source", source)
	registry.Replace(opts.ID+".target", target)

	return &DualList{
		id:          opts.ID,
		sourceTitle: opts.SourceTitle,
		targetTitle: opts.TargetTitle,
		coord:       coord,
		registry:    registry,
	}, nil
}

func (d *DualList) ID() string                         { return d.id }
func (d *DualList) Coordinator() *transfer.Coordinator { return d.coord }
func (d *DualList) Registry() *paging.Registry         { return d.registry }
func (d *DualList) Focus() Pane                        { return d.focus }
func (d *DualList) Cursor() int                        { return d.cursor[d.focus] }
func (d *DualList) Hint() string                       { return d.hint }

// List returns the collection shown in pane.
func (d *DualList) List(pane Pane) *paging.Collection {
	if pane == TargetPane {
		return d.coord.Destination()
	}
	return d.coord.Source()
}

// SetFocus moves keyboard focus to pane.
func (d *DualList) SetFocus(pane Pane) {
	d.focus = pane
	d.clampCursor(pane)
}

// SwitchFocus moves focus to the other pane.
func (d *DualList) SwitchFocus() { d.SetFocus(d.focus.other()) }

// MoveCursor moves the cursor within the focused page.
func (d *DualList) MoveCursor(delta int) {
	d.cursor[d.focus] += delta
	d.clampCursor(d.focus)
}

// NextPage and PrevPage page the focused list, resetting the cursor to the top.
func (d *DualList) NextPage() bool { return d.page(d.List(d.focus).NextPage) }
func (d *DualList) PrevPage() bool { return d.page(d.List(d.focus).PrevPage) }

// CurrentItem is the item under the cursor in the focused pane.
func (d *DualList) CurrentItem() (models.Item, bool) {
	visible := d.List(d.focus).VisibleItems()
	i := d.cursor[d.focus]
	if i < 0 || i >= len(visible) {
		return models.Item{}, false
	}
	return visible[i], true
}

// ToggleCurrent flips the selection of the item under the cursor.
func (d *DualList) ToggleCurrent() (bool, error) {
	item, ok := d.CurrentItem()
	if !ok {
		return false, nil
	}
	return d.List(d.focus).ToggleSelection(item.ID)
}

func (d *DualList) TransferSelected(dir transfer.Direction) (transfer.Result, error) {
	return d.after(d.coord.TransferSelected(dir))
}

func (d *DualList) TransferAll(dir transfer.Direction) (transfer.Result, error) {
	return d.after(d.coord.TransferAll(dir))
}

// MoveAllToSource returns every target item to the source list.
func (d *DualList) MoveAllToSource() (transfer.Result, error) {
	return d.after(d.coord.MoveAllToSource())
}

// Filter applies text to both lists. When nothing matches anywhere, a "did you mean" hint is prepared from the
// closest caption.
func (d *DualList) Filter(text string) int {
	d.coord.Filter(text)
	d.Update()

	matches := d.coord.Source().FilteredCount() + d.coord.Destination().FilteredCount()
	d.hint = ""
	if matches == 0 && text != "" {
		all := append(d.coord.SourceItems(), d.coord.DestinationItems()...)
		if item, ok := paging.Suggest(text, all); ok {
			d.hint = item.Caption
		}
	}
	return matches
}

// DestinationItems returns every target item, ignoring the filter.
func (d *DualList) DestinationItems() []models.Item { return d.coord.DestinationItems() }

// Update re-clamps both paginations and cursors.
func (d *DualList) Update() {
	for _, pane := range []Pane{SourcePane, TargetPane} {
		d.List(pane).Refresh()
		d.clampCursor(pane)
	}
}

// View renders both panes side by side. focused is false while another widget has the keyboard.
func (d *DualList) View(width int, focused bool) string {
	paneWidth := max((width-4)/2, 24)
	left := d.renderPane(SourcePane, d.sourceTitle, paneWidth, focused)
	right := d.renderPane(TargetPane, d.targetTitle, paneWidth, focused)
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if d.hint != "" {
		view += "\n" + styles.warn.Render(fmt.Sprintf("No matches. Did you mean %q?", d.hint))
	}
	return view
}

func (d *DualList) renderPane(pane Pane, title string, width int, focused bool) string {
	list := d.List(pane)
	active := focused && d.focus == pane

	var b strings.Builder
	b.WriteString(styles.title.UnsetMarginBottom().Render(title))
	b.WriteString(styles.muted.Render(fmt.Sprintf(" (%d)", list.FilteredCount())))
	b.WriteString("\n\n")

	entries := list.Visible()
	if len(entries) == 0 {
		b.WriteString(styles.muted.Render("empty"))
		b.WriteString("\n")
	}
	for i, e := range entries {
		check := "[ ]"
		if e.Selected {
			check = styles.ok.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", check, e.Caption)
		if active && i == d.cursor[pane] {
			line = styles.cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := max(len(entries), 1); i < list.PageSize(); i++ {
		b.WriteString("\n")
	}
	b.WriteString(renderPager(list.Layout(), list.CurrentPage()))

	style := styles.pane
	if active {
		style = styles.focused
	}
	return style.Width(width).Render(b.String())
}

func (d *DualList) page(step func() bool) bool {
	if !step() {
		return false
	}
	d.cursor[d.focus] = 0
	return true
}

func (d *DualList) after(res transfer.Result, err error) (transfer.Result, error) {
	d.Update()
	return res, err
}

func (d *DualList) clampCursor(pane Pane) {
	n := len(d.List(pane).VisibleItems())
	d.cursor[pane] = min(max(d.cursor[pane], 0), max(n-1, 0))
}
