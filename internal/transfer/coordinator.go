package transfer

import (
	"fmt"

	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/paging"
	"github.com/desertthunder/dlx/internal/shared"
)

// Result describes a completed transfer.
type Result struct {
	Kind  Kind
	Moved []models.Item
}

// Count is the number of items moved.
func (r Result) Count() int { return len(r.Moved) }

// Coordinator owns a source and destination collection and moves items between them.
type Coordinator struct {
	source      *paging.Collection
	destination *paging.Collection
	observer    Observer
	moving      bool
}

// New pairs source and destination. A nil obs discards notifications.
//
// The collections must be distinct and must not share any item ID. New installs a guard on both so that
// adding an ID already held by the other list fails with [shared.ErrValidation].
func New(source, destination *paging.Collection, obs Observer) (*Coordinator, error) {
	if source == nil || destination == nil {
		return nil, fmt.Errorf("%w: source and destination are required", shared.ErrValidation)
	}
	if source == destination {
		return nil, fmt.Errorf("%w: source and destination must differ", shared.ErrValidation)
	}
	for _, item := range source.Items() {
		if destination.Contains(item.ID) {
			return nil, fmt.Errorf("%w: item %q is in both lists", shared.ErrValidation, item.ID)
		}
	}
	if obs == nil {
		obs = noopObserver{}
	}
	c := &Coordinator{source: source, destination: destination, observer: obs}
	source.SetGuard(c.exclusive(destination))
	destination.SetGuard(c.exclusive(source))
	return c, nil
}

func (c *Coordinator) Source() *paging.Collection      { return c.source }
func (c *Coordinator) Destination() *paging.Collection { return c.destination }

// SetObserver replaces the observer. Nil discards notifications.
func (c *Coordinator) SetObserver(obs Observer) {
	if obs == nil {
		obs = noopObserver{}
	}
	c.observer = obs
}

// TransferAll moves every item out of the origin collection, selected or not.
func (c *Coordinator) TransferAll(dir Direction) (Result, error) {
	return c.move(dir, false)
}

// TransferSelected moves only the selected items of the origin collection.
func (c *Coordinator) TransferSelected(dir Direction) (Result, error) {
	return c.move(dir, true)
}

// MoveAllToSource empties the destination back into the source.
func (c *Coordinator) MoveAllToSource() (Result, error) {
	return c.TransferAll(ToSource)
}

// Filter applies text to both collections and notifies the observer.
func (c *Coordinator) Filter(text string) {
	c.source.SetFilter(text)
	c.destination.SetFilter(text)
	c.observer.OnFilterChange(text)
}

// DestinationItems returns every destination item in order, ignoring the filter.
func (c *Coordinator) DestinationItems() []models.Item {
	return c.destination.Items()
}

// SourceItems returns every source item in order, ignoring the filter.
func (c *Coordinator) SourceItems() []models.Item {
	return c.source.Items()
}

func (c *Coordinator) move(dir Direction, selectedOnly bool) (Result, error) {
	from, to, err := c.pair(dir)
	if err != nil {
		return Result{}, err
	}
	kind := kindFor(dir, selectedOnly)

	var moving []models.Item
	if selectedOnly {
		moving = from.SelectedItems()
	} else {
		moving = from.Items()
	}

	c.moving = true
	err = to.AddAll(moving...)
	c.moving = false
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", kind, err)
	}

	ids := make([]string, len(moving))
	for i, item := range moving {
		ids[i] = item.ID
	}
	moved := from.RemoveAll(ids)

	c.observer.OnTransfer(kind)
	return Result{Kind: kind, Moved: moved}, nil
}

func (c *Coordinator) pair(dir Direction) (from, to *paging.Collection, err error) {
	switch dir {
	case ToDestination:
		return c.source, c.destination, nil
	case ToSource:
		return c.destination, c.source, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown direction %d", shared.ErrValidation, int(dir))
	}
}

// exclusive rejects IDs held by other, except for the items a transfer is moving into place.
func (c *Coordinator) exclusive(other *paging.Collection) paging.Guard {
	return func(item models.Item) error {
		if !c.moving && other.Contains(item.ID) {
			return fmt.Errorf("%w: item %q is already in the other list", shared.ErrValidation, item.ID)
		}
		return nil
	}
}
