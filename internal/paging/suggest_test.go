package paging

import (
	"testing"

	"github.com/desertthunder/dlx/internal/models"
)

func TestSuggest(t *testing.T) {
	items := []models.Item{
		models.NewItem("1", "item1"),
		models.NewItem("2", "Apple"),
		models.NewItem("3", "Banana"),
	}

	tc := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "transposition", query: "itme1", want: "1", found: true},
		{name: "case insensitive", query: "APPEL", want: "2", found: true},
		{name: "exact", query: "banana", want: "3", found: true},
		{name: "too far", query: "zzzz", found: false},
		{name: "blank", query: "   ", found: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.query, items)
			if ok != tt.found {
				t.Fatalf("Suggest(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && got.ID != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.query, got.ID, tt.want)
			}
		})
	}

	t.Run("no items", func(t *testing.T) {
		if _, ok := Suggest("item", nil); ok {
			t.Error("expected no suggestion")
		}
	})

	t.Run("ties go to the earlier item", func(t *testing.T) {
		got, ok := Suggest("ab", []models.Item{models.NewItem("x", "aa"), models.NewItem("y", "bb")})
		if !ok || got.ID != "x" {
			t.Errorf("expected x, got %+v %v", got, ok)
		}
	})
}
