package repositories

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
)

// ImportResult counts what an import did.
type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

// Importer upserts plain items into the catalog.
//
// Items with a known ID get their caption replaced; soft-deleted rows with that ID are brought back.
// Blank IDs get a generated one. Rows with a blank caption are skipped.
type Importer struct {
	repo   *ItemRepository
	logger *log.Logger
}

// NewImporter creates an Importer. A nil logger discards import logs.
func NewImporter(repo *ItemRepository, logger *log.Logger) *Importer {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &Importer{repo: repo, logger: logger}
}

// Import writes items in order.
func (im *Importer) Import(items []models.Item) (ImportResult, error) {
	var res ImportResult

	for _, item := range items {
		if strings.TrimSpace(item.Caption) == "" {
			im.logger.Warn("skipping item without caption", "id", item.ID)
			res.Skipped++
			continue
		}

		if item.ID != "" {
			existing, err := im.repo.Get(item.ID)
			switch {
			case err == nil:
				existing.SetCaption(item.Caption)
				if err := im.repo.Update(existing); err != nil {
					return res, fmt.Errorf("failed to update %s: %w", item.ID, err)
				}
				res.Updated++
				continue
			case !errors.Is(err, shared.ErrNotFound):
				return res, err
			}

			revived, err := im.revive(item)
			if err != nil {
				return res, err
			}
			if revived {
				res.Updated++
				continue
			}
		}

		if err := im.repo.Create(models.NewCatalogItem(0, item)); err != nil {
			return res, fmt.Errorf("failed to import %q: %w", item.Caption, err)
		}
		res.Created++
	}

	im.logger.Info("catalog import finished", "created", res.Created, "updated", res.Updated, "skipped", res.Skipped)
	return res, nil
}

// revive clears deleted_at on a soft-deleted row with the item's ID.
func (im *Importer) revive(item models.Item) (bool, error) {
	result, err := im.repo.db.Exec(
		"UPDATE items SET caption = ?, deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL",
		item.Caption, time.Now(), item.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to restore %s: %w", item.ID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
