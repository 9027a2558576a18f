package paging

import (
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/dlx/internal/shared"
)

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry()
		c := mustNew(t, numbered(3), 5)
		if err := r.Register("source", c); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		got, ok := r.Lookup("source")
		if !ok || got != c {
			t.Error("expected to find the registered collection")
		}
		if _, err := r.Get("source"); err != nil {
			t.Errorf("Get failed: %v", err)
		}
	})

	t.Run("rejects bad registrations", func(t *testing.T) {
		r := NewRegistry()
		c := mustNew(t, nil, 5)
		_ = r.Register("taken", c)

		tc := []struct {
			name string
			id   string
			c    *Collection
		}{
			{name: "blank id", id: "  ", c: c},
			{name: "nil collection", id: "x", c: nil},
			{name: "duplicate", id: "taken", c: c},
		}
		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if err := r.Register(tt.id, tt.c); !errors.Is(err, shared.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		r := NewRegistry()
		if _, ok := r.Lookup("nope"); ok {
			t.Error("Lookup should miss")
		}
		if _, err := r.Get("nope"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("replace and remove", func(t *testing.T) {
		r := NewRegistry()
		first := mustNew(t, numbered(1), 5)
		second := mustNew(t, numbered(2), 5)

		r.Replace("b", first)
		r.Replace("b", second)
		r.Replace("a", first)

		if got, _ := r.Lookup("b"); got != second {
			t.Error("Replace should overwrite")
		}
		if !reflect.DeepEqual(r.IDs(), []string{"a", "b"}) {
			t.Errorf("IDs() = %v", r.IDs())
		}
		if !r.Remove("a") || r.Remove("a") {
			t.Error("Remove should report presence once")
		}
	})
}
