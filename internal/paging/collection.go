package paging

import (
	"fmt"
	"strings"

	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
)

// Entry is an item together with its transient selection flag.
type Entry struct {
	models.Item
	Selected bool
}

// Collection is an ordered, filterable, paginated set of items.
type Collection struct {
	entries  []Entry
	ids      map[string]struct{}
	filter   string
	needle   string
	pageSize int
	page     int
	opts     Options
	guard    Guard
}

// Guard vets an item before it is added. A non-nil error rejects the whole batch.
type Guard func(item models.Item) error

// New creates a collection seeded with items in order.
//
// It fails with [shared.ErrValidation] when pageSize is not positive, opts are invalid, or items
// contain a blank or duplicate ID.
func New(items []models.Item, pageSize int, opts Options) (*Collection, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", shared.ErrValidation, pageSize)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Collection{
		ids:      make(map[string]struct{}, len(items)),
		pageSize: pageSize,
		page:     1,
		opts:     opts,
	}
	if err := c.AddAll(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem appends a new item built from id and caption.
func (c *Collection) AddItem(id, caption string) error {
	return c.Add(models.NewItem(id, caption))
}

// Add appends item to the end of the collection.
func (c *Collection) Add(item models.Item) error {
	return c.AddAll(item)
}

// AddAll appends items in order. Either every item is added or none is.
func (c *Collection) AddAll(items ...models.Item) error {
	if err := c.CanAdd(items...); err != nil {
		return err
	}
	for _, item := range items {
		c.entries = append(c.entries, Entry{Item: item})
		c.ids[item.ID] = struct{}{}
	}
	c.clamp()
	return nil
}

// CanAdd reports whether [Collection.AddAll] would accept items.
func (c *Collection) CanAdd(items ...models.Item) error {
	batch := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := c.ids[item.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %q", shared.ErrValidation, item.ID)
		}
		if _, dup := batch[item.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %q", shared.ErrValidation, item.ID)
		}
		if c.guard != nil {
			if err := c.guard(item); err != nil {
				return err
			}
		}
		batch[item.ID] = struct{}{}
	}
	return nil
}

// SetGuard installs g, consulted by [Collection.CanAdd] for every item. Nil removes it.
func (c *Collection) SetGuard(g Guard) { c.guard = g }

// RemoveItem removes the item with the given id and returns it.
//
// When the removal empties the current page and it is not the first, the collection steps back one page.
func (c *Collection) RemoveItem(id string) (models.Item, error) {
	i := c.indexOf(id)
	if i < 0 {
		return models.Item{}, fmt.Errorf("%w: %q", shared.ErrNotFound, id)
	}

	removed := c.entries[i].Item
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.ids, id)

	if c.page > 1 && len(c.window()) == 0 {
		c.page--
	}
	c.clamp()
	return removed, nil
}

// RemoveAll removes every item whose ID is in ids and returns them in collection order.
// Unknown IDs are skipped. The current page is clamped afterwards but not otherwise moved.
func (c *Collection) RemoveAll(ids []string) []models.Item {
	if len(ids) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var removed []models.Item
	kept := c.entries[:0]
	for _, e := range c.entries {
		if _, ok := wanted[e.ID]; ok {
			removed = append(removed, e.Item)
			delete(c.ids, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	c.clamp()
	return removed
}

// Clear removes every item.
func (c *Collection) Clear() {
	c.entries = nil
	c.ids = make(map[string]struct{})
	c.page = 1
}

// SetFilter sets the caption filter (case-insensitive substring, empty disables) and returns to page 1.
func (c *Collection) SetFilter(text string) {
	c.filter = text
	c.needle = strings.ToLower(text)
	c.page = 1
}

// Filter returns the current filter text.
func (c *Collection) Filter() string { return c.filter }

// SetPage moves to page n when 1 <= n <= TotalPages and reports whether it did.
// Out-of-range pages are ignored.
func (c *Collection) SetPage(n int) bool {
	if n < 1 || n > c.TotalPages() {
		return false
	}
	c.page = n
	return true
}

// NextPage advances one page if there is one.
func (c *Collection) NextPage() bool { return c.SetPage(c.page + 1) }

// PrevPage goes back one page if there is one.
func (c *Collection) PrevPage() bool { return c.SetPage(c.page - 1) }

// VisibleItems returns the filter matches on the current page, in insertion order.
func (c *Collection) VisibleItems() []models.Item {
	window := c.window()
	items := make([]models.Item, len(window))
	for i, e := range window {
		items[i] = e.Item
	}
	return items
}

// Visible returns the current page with selection flags, for renderers.
func (c *Collection) Visible() []Entry {
	return c.window()
}

// SelectedItems returns every selected item regardless of page or filter.
func (c *Collection) SelectedItems() []models.Item {
	var items []models.Item
	for _, e := range c.entries {
		if e.Selected {
			items = append(items, e.Item)
		}
	}
	return items
}

// ToggleSelection flips the selection flag of id and returns the new value.
func (c *Collection) ToggleSelection(id string) (bool, error) {
	i := c.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %q", shared.ErrNotFound, id)
	}
	c.entries[i].Selected = !c.entries[i].Selected
	return c.entries[i].Selected, nil
}

// SetSelected sets the selection flag of id.
func (c *Collection) SetSelected(id string, selected bool) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", shared.ErrNotFound, id)
	}
	c.entries[i].Selected = selected
	return nil
}

// ClearSelection deselects every item.
func (c *Collection) ClearSelection() {
	for i := range c.entries {
		c.entries[i].Selected = false
	}
}

// IsSelected reports whether id is present and selected.
func (c *Collection) IsSelected(id string) bool {
	i := c.indexOf(id)
	return i >= 0 && c.entries[i].Selected
}

// Contains reports whether an item with id is present.
func (c *Collection) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Items returns every item in insertion order, ignoring the filter.
func (c *Collection) Items() []models.Item {
	items := make([]models.Item, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.Item
	}
	return items
}

// Len is the number of items, ignoring the filter.
func (c *Collection) Len() int { return len(c.entries) }

// FilteredCount is the number of items matching the filter.
func (c *Collection) FilteredCount() int {
	n := 0
	for _, e := range c.entries {
		if c.matches(e) {
			n++
		}
	}
	return n
}

// TotalPages is ceil(FilteredCount / PageSize).
func (c *Collection) TotalPages() int { return TotalPages(c.FilteredCount(), c.pageSize) }

// CurrentPage is the 1-based page being shown.
func (c *Collection) CurrentPage() int { return c.page }

// PageSize is the number of items per page.
func (c *Collection) PageSize() int { return c.pageSize }

// Options returns the pager options the collection was built with.
func (c *Collection) Options() Options { return c.opts }

// Layout computes the pager for the current state.
func (c *Collection) Layout() Layout {
	return ComputeLayout(c.page, c.TotalPages(), c.opts)
}

// Refresh re-applies the page clamp. Mutating methods already do this.
func (c *Collection) Refresh() { c.clamp() }

func (c *Collection) matches(e Entry) bool {
	return c.needle == "" || strings.Contains(strings.ToLower(e.Caption), c.needle)
}

// window returns the filtered entries ranked [(page-1)*size, page*size).
func (c *Collection) window() []Entry {
	start := (c.page - 1) * c.pageSize
	end := start + c.pageSize

	var out []Entry
	rank := 0
	for _, e := range c.entries {
		if !c.matches(e) {
			continue
		}
		if rank >= start && rank < end {
			out = append(out, e)
		}
		rank++
		if rank >= end {
			break
		}
	}
	return out
}

func (c *Collection) indexOf(id string) int {
	if _, ok := c.ids[id]; !ok {
		return -1
	}
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) clamp() {
	last := max(1, c.TotalPages())
	c.page = min(max(c.page, 1), last)
}
