package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/dlx/internal/paging"
	"github.com/desertthunder/dlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Layout prints the page buttons for --current and --total.
func (r *Runner) Layout(ctx context.Context, cmd *cli.Command) error {
	current := cmd.Int("current")
	total := cmd.Int("total")

	opts := paging.FromConfig(r.config.Pagination)
	if cmd.IsSet("max") {
		opts.MaxPageButtons = cmd.Int("max")
	}
	opts.AlwaysShowNavButtons = cmd.Bool("nav")
	opts.AlwaysShowEdgeButtons = cmd.Bool("edge")

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	if total > 0 && (current < 1 || current > total) {
		return fmt.Errorf("%w: --current must be between 1 and %d, got %d", shared.ErrInvalidFlag, total, current)
	}

	layout := paging.ComputeLayout(current, total, opts)
	r.logger.Debug("computed layout", "current", current, "total", total, "pages", layout.Pages)

	if cmd.Bool("json") {
		return r.writeJSON(layout, true)
	}
	return r.writePlain("%s\n", formatLayout(layout, current))
}

// formatLayout renders a layout as plain text, e.g. "‹ 1 … [5] 6 … 10 ›". Disabled nav buttons are shown as "·".
func formatLayout(layout paging.Layout, current int) string {
	if layout.Empty() {
		return "(no pages)"
	}

	var parts []string
	if layout.ShowPrev {
		parts = append(parts, navLabel("‹", layout.PrevDisabled))
	}
	for i, p := range layout.Pages {
		if i > 0 && p-layout.Pages[i-1] > 1 {
			parts = append(parts, "…")
		}
		if p == current {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		} else {
			parts = append(parts, fmt.Sprint(p))
		}
	}
	if layout.ShowNext {
		parts = append(parts, navLabel("›", layout.NextDisabled))
	}
	return strings.Join(parts, " ")
}

func navLabel(label string, disabled bool) string {
	if disabled {
		return "·"
	}
	return label
}
