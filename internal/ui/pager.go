package ui

import (
	"strconv"
	"strings"

	"github.com/desertthunder/dlx/internal/paging"
)

// renderPager draws layout as a single line of buttons. Gaps between non-adjacent pages become "…".
func renderPager(layout paging.Layout, current int) string {
	if layout.Empty() {
		return ""
	}

	var parts []string
	if layout.ShowPrev {
		parts = append(parts, navButton("‹", layout.PrevDisabled))
	}
	for i, p := range layout.Pages {
		if i > 0 && p-layout.Pages[i-1] > 1 {
			parts = append(parts, styles.muted.Render("…"))
		}
		label := strconv.Itoa(p)
		if p == current {
			parts = append(parts, styles.current.Render(label))
		} else {
			parts = append(parts, label)
		}
	}
	if layout.ShowNext {
		parts = append(parts, navButton("›", layout.NextDisabled))
	}
	return strings.Join(parts, " ")
}

func navButton(label string, disabled bool) string {
	if disabled {
		return styles.muted.Render(label)
	}
	return label
}
