package paging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/desertthunder/dlx/internal/shared"
)

// Registry maps stable list IDs to their collections so hosts can find a list without holding on to
// whatever rendered it.
type Registry struct {
	lists map[string]*Collection
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{lists: make(map[string]*Collection)}
}

// Register stores c under id. IDs must be non-blank and unused.
func (r *Registry) Register(id string, c *Collection) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: list id is required", shared.ErrValidation)
	}
	if c == nil {
		return fmt.Errorf("%w: list %q is nil", shared.ErrValidation, id)
	}
	if _, exists := r.lists[id]; exists {
		return fmt.Errorf("%w: list %q already registered", shared.ErrValidation, id)
	}
	r.lists[id] = c
	return nil
}

// Replace stores c under id, overwriting any previous entry.
func (r *Registry) Replace(id string, c *Collection) {
	r.lists[id] = c
}

// Lookup returns the collection registered under id.
func (r *Registry) Lookup(id string) (*Collection, bool) {
	c, ok := r.lists[id]
	return c, ok
}

// Get is [Registry.Lookup] returning [shared.ErrNotFound] for unknown IDs.
func (r *Registry) Get(id string) (*Collection, error) {
	c, ok := r.lists[id]
	if !ok {
		return nil, fmt.Errorf("%w: list %q", shared.ErrNotFound, id)
	}
	return c, nil
}

// Remove drops id and reports whether it was present.
func (r *Registry) Remove(id string) bool {
	_, ok := r.lists[id]
	delete(r.lists, id)
	return ok
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.lists))
	for id := range r.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
