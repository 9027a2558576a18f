package paging

import (
	"fmt"
	"sort"

	"github.com/desertthunder/dlx/internal/shared"
)

const (
	DefaultMaxPageButtons = 6
	DefaultPageSize       = 5
)

// Options controls how many page buttons a pager shows and which ones are always present.
type Options struct {
	MaxPageButtons        int  // Budget shared by page-number and prev/next buttons
	AlwaysShowNavButtons  bool // Render prev/next even when they are disabled
	AlwaysShowEdgeButtons bool // Always include the first and last page
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxPageButtons:        DefaultMaxPageButtons,
		AlwaysShowNavButtons:  true,
		AlwaysShowEdgeButtons: true,
	}
}

// FromConfig maps the [pagination] config table to [Options].
func FromConfig(c shared.PaginationConfig) Options {
	return Options{
		MaxPageButtons:        c.MaxPageButtons,
		AlwaysShowNavButtons:  c.AlwaysShowNavButtons,
		AlwaysShowEdgeButtons: c.AlwaysShowEdgeButtons,
	}
}

// OptionsFromMap reads the recognized keys (maxPageButtons, alwaysShowNavButtons, alwaysShowEdgeButtons)
// over the defaults. Unknown keys and values of the wrong type are ignored.
func OptionsFromMap(m map[string]any) Options {
	opts := DefaultOptions()
	if n, ok := asInt(m["maxPageButtons"]); ok {
		opts.MaxPageButtons = n
	}
	if b, ok := m["alwaysShowNavButtons"].(bool); ok {
		opts.AlwaysShowNavButtons = b
	}
	if b, ok := m["alwaysShowEdgeButtons"].(bool); ok {
		opts.AlwaysShowEdgeButtons = b
	}
	return opts
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Validate requires at least one button.
func (o Options) Validate() error {
	if o.MaxPageButtons < 1 {
		return fmt.Errorf("%w: maxPageButtons must be at least 1, got %d", shared.ErrValidation, o.MaxPageButtons)
	}
	return nil
}

// Layout is the derived state of a pager.
type Layout struct {
	ShowPrev     bool  `json:"show_prev"`
	ShowNext     bool  `json:"show_next"`
	PrevDisabled bool  `json:"prev_disabled"`
	NextDisabled bool  `json:"next_disabled"`
	Pages        []int `json:"pages"` // Ascending page numbers to render
}

// Empty reports whether there is nothing to render.
func (l Layout) Empty() bool {
	return len(l.Pages) == 0 && !l.ShowPrev && !l.ShowNext
}

// ComputeLayout selects the page buttons for currentPage out of totalPages.
//
// The current page is always present. With edge buttons the first and last pages are added, then the
// remaining budget is filled by alternating one page forward (up to totalPages-1) and one page
// backward (down to 2) around the current page.
//
// The budget subtracts one slot for "prev" when it is shown, but one slot for "next" only when nav
// buttons are forced on, regardless of whether "next" is actually shown.
func ComputeLayout(currentPage, totalPages int, opts Options) Layout {
	if totalPages <= 0 {
		return Layout{}
	}

	layout := Layout{
		PrevDisabled: currentPage == 1,
		NextDisabled: currentPage == totalPages,
	}
	layout.ShowPrev = opts.AlwaysShowNavButtons || !layout.PrevDisabled
	layout.ShowNext = opts.AlwaysShowNavButtons || !layout.NextDisabled

	seen := map[int]bool{currentPage: true}
	pages := []int{currentPage}
	insert := func(n int) bool {
		if seen[n] {
			return false
		}
		seen[n] = true
		pages = append(pages, n)
		return true
	}

	if opts.AlwaysShowEdgeButtons {
		if currentPage != 1 {
			insert(1)
		}
		if currentPage != totalPages {
			insert(totalPages)
		}
	}

	remaining := opts.MaxPageButtons - btoi(layout.ShowPrev) - btoi(opts.AlwaysShowNavButtons) - len(pages)

	forward, backward := currentPage+1, currentPage-1
	for remaining > 0 && (forward <= totalPages-1 || backward >= 2) {
		if forward <= totalPages-1 {
			if insert(forward) {
				remaining--
			}
			forward++
		}
		if remaining > 0 && backward >= 2 {
			if insert(backward) {
				remaining--
			}
			backward--
		}
	}

	sort.Ints(pages)
	layout.Pages = pages
	return layout
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// TotalPages is ceil(count / pageSize), or 0 when there is nothing to page.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
