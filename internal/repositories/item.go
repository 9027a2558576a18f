package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
)

const itemColumns = "id, sequence, caption, created_at, updated_at, deleted_at"

// ItemRepository implements models.Repository[*models.CatalogItem].
type ItemRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.CatalogItem] = (*ItemRepository)(nil)

// NewItemRepository creates a new ItemRepository with the given database connection
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts item with the next sequence number. A blank ID is replaced with a generated one.
func (r *ItemRepository) Create(item *models.CatalogItem) error {
	sequence, err := NextSequence(r.db, "items")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	if strings.TrimSpace(item.ID()) == "" {
		item.SetID(shared.GenerateID())
	}
	item.SetSequence(sequence)

	if err := item.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO items (id, sequence, caption, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, item.ID(), item.Sequence(), item.Caption(), item.CreatedAt(), item.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// Get retrieves an item by ID, excluding soft-deleted items
func (r *ItemRepository) Get(id string) (*models.CatalogItem, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE id = ? AND deleted_at IS NULL"
	return r.scan(r.db.QueryRow(query, id))
}

// GetByCaption returns the first live item with exactly this caption.
func (r *ItemRepository) GetByCaption(caption string) (*models.CatalogItem, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE caption = ? AND deleted_at IS NULL ORDER BY sequence ASC LIMIT 1"
	return r.scan(r.db.QueryRow(query, caption))
}

// Update changes the caption of a live item.
func (r *ItemRepository) Update(item *models.CatalogItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	now := time.Now()
	item.SetUpdatedAt(now)

	result, err := r.db.Exec(
		"UPDATE items SET caption = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		item.Caption(), now, item.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return expectRow(result, item.ID())
}

// Delete soft-deletes an item by ID
func (r *ItemRepository) Delete(id string) error {
	result, err := r.db.Exec("UPDATE items SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return expectRow(result, id)
}

// List retrieves live items in sequence order.
//
// Supported criteria: "caption" (case-insensitive substring), "limit" (int) and "offset" (int, needs a limit).
func (r *ItemRepository) List(criteria map[string]any) ([]*models.CatalogItem, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE deleted_at IS NULL"
	args := []any{}

	if caption, ok := criteria["caption"].(string); ok && caption != "" {
		query += " AND instr(lower(caption), lower(?)) > 0"
		args = append(args, caption)
	}

	query += " ORDER BY sequence ASC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
		if offset, ok := criteria["offset"].(int); ok && offset > 0 {
			query += " OFFSET ?"
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.CatalogItem
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

// Items lists live items as plain [models.Item] values for seeding a collection.
func (r *ItemRepository) Items() ([]models.Item, error) {
	stored, err := r.List(nil)
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, len(stored))
	for i, s := range stored {
		items[i] = s.Item()
	}
	return items, nil
}

// Count returns the number of live items.
func (r *ItemRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM items WHERE deleted_at IS NULL").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *ItemRepository) scan(row scanner) (*models.CatalogItem, error) {
	var (
		id        string
		sequence  int
		caption   string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &caption, &createdAt, &updatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: catalog item", shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	var deleted *time.Time
	if deletedAt.Valid {
		deleted = &deletedAt.Time
	}

	return models.RestoreCatalogItem(id, sequence, caption, createdAt, updatedAt, deleted), nil
}

func expectRow(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s (or already deleted)", shared.ErrNotFound, id)
	}
	return nil
}
