package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/dlx/internal/shared"
)

// Model defines the base interface for all persistent models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Item is an entry of a list. It is replaced rather than edited.
type Item struct {
	ID      string `json:"id"`
	Caption string `json:"caption"`
}

// NewItem builds an [Item].
func NewItem(id, caption string) Item {
	return Item{ID: id, Caption: caption}
}

// Validate requires a non-blank ID.
func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: item id is required", shared.ErrValidation)
	}
	return nil
}

// CatalogItem is an [Item] stored in the catalog database.
type CatalogItem struct {
	id        string
	sequence  int
	caption   string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

var _ Model = (*CatalogItem)(nil)

// NewCatalogItem creates a catalog entry for item. A blank item ID is filled in by the repository.
func NewCatalogItem(sequence int, item Item) *CatalogItem {
	now := time.Now()
	return &CatalogItem{
		id:        item.ID,
		sequence:  sequence,
		caption:   item.Caption,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreCatalogItem rebuilds a catalog entry from stored columns.
func RestoreCatalogItem(id string, sequence int, caption string, createdAt, updatedAt time.Time, deletedAt *time.Time) *CatalogItem {
	return &CatalogItem{
		id:        id,
		sequence:  sequence,
		caption:   caption,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (c *CatalogItem) ID() string            { return c.id }
func (c *CatalogItem) Sequence() int         { return c.sequence }
func (c *CatalogItem) Caption() string       { return c.caption }
func (c *CatalogItem) CreatedAt() time.Time  { return c.createdAt }
func (c *CatalogItem) UpdatedAt() time.Time  { return c.updatedAt }
func (c *CatalogItem) DeletedAt() *time.Time { return c.deletedAt }
func (c *CatalogItem) IsDeleted() bool       { return c.deletedAt != nil }

func (c *CatalogItem) SetID(id string)           { c.id = id }
func (c *CatalogItem) SetSequence(sequence int)  { c.sequence = sequence }
func (c *CatalogItem) SetCaption(caption string) { c.caption = caption }
func (c *CatalogItem) SetUpdatedAt(t time.Time)  { c.updatedAt = t }

// Item returns the list value for this entry.
func (c *CatalogItem) Item() Item {
	return Item{ID: c.id, Caption: c.caption}
}

// Validate checks the ID and caption.
func (c *CatalogItem) Validate() error {
	if err := c.Item().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.caption) == "" {
		return fmt.Errorf("%w: caption is required", shared.ErrValidation)
	}
	return nil
}
