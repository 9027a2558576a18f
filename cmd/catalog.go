package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/dlx/internal/formatter"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/paging"
	"github.com/desertthunder/dlx/internal/repositories"
	"github.com/desertthunder/dlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// catalogPage is the JSON shape of `catalog list --json`.
type catalogPage struct {
	Filter     string        `json:"filter,omitempty"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Matches    int           `json:"matches"`
	Items      []models.Item `json:"items"`
	Layout     paging.Layout `json:"layout"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// CatalogImport loads items from a CSV file into the catalog.
func (r *Runner) CatalogImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	if path == "" {
		return fmt.Errorf("%w: --file is required", shared.ErrMissingArgument)
	}

	items, err := formatter.ReadCSVFile(path)
	if err != nil {
		return err
	}

	repo, err := r.catalog()
	if err != nil {
		return err
	}

	r.logger.Info("importing catalog items", "file", path, "rows", len(items))
	res, err := repositories.NewImporter(repo, r.logger).Import(items)
	if err != nil {
		return fmt.Errorf("import failed after %d items: %w", res.Created+res.Updated, err)
	}

	r.writePlain("✓ Imported %s\n", path)
	r.writePlain("  Created: %d\n  Updated: %d\n  Skipped: %d\n", res.Created, res.Updated, res.Skipped)
	return nil
}

// CatalogList prints one page of catalog items through the same pagination the picker uses.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	filter := cmd.String("filter")
	page := cmd.Int("page")
	useJSON := cmd.Bool("json")

	repo, err := r.catalog()
	if err != nil {
		return err
	}
	items, err := repo.Items()
	if err != nil {
		return err
	}

	list, err := paging.New(items, r.config.Pagination.ItemsPerPage, paging.FromConfig(r.config.Pagination))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}
	list.SetFilter(filter)
	if page != 1 && !list.SetPage(page) {
		r.logger.Warn("page out of range, showing page 1", "page", page, "total", list.TotalPages())
	}

	result := catalogPage{
		Filter:     filter,
		Page:       list.CurrentPage(),
		TotalPages: list.TotalPages(),
		Matches:    list.FilteredCount(),
		Items:      list.VisibleItems(),
		Layout:     list.Layout(),
	}
	if result.Items == nil {
		result.Items = []models.Item{}
	}
	if result.Matches == 0 && filter != "" {
		if s, ok := paging.Suggest(filter, items); ok {
			result.Suggestion = s.Caption
		}
	}

	if useJSON {
		return r.writeJSON(result, true)
	}
	return r.printCatalogPage(result)
}

// CatalogRemove soft-deletes a catalog item.
func (r *Runner) CatalogRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	if id == "" {
		return fmt.Errorf("%w: --id is required", shared.ErrMissingArgument)
	}

	repo, err := r.catalog()
	if err != nil {
		return err
	}
	if err := repo.Delete(id); err != nil {
		return err
	}

	r.logger.Info("removed catalog item", "id", id)
	r.writePlain("✓ Removed %s\n", id)
	return nil
}

func (r *Runner) printCatalogPage(p catalogPage) error {
	title := "Catalog"
	if p.Filter != "" {
		title = fmt.Sprintf("Catalog (filter: %q)", p.Filter)
	}
	r.writePlainHeader(title)

	if len(p.Items) == 0 {
		r.writePlain("No items.\n")
		if p.Suggestion != "" {
			r.writePlain("Did you mean %q?\n", p.Suggestion)
		}
		return nil
	}

	for _, item := range p.Items {
		if err := r.writePlain("  %-36s  %s\n", item.ID, item.Caption); err != nil {
			return err
		}
	}
	return r.writePlainln("Page %d of %d (%d items): %s", p.Page, p.TotalPages, p.Matches, formatLayout(p.Layout, p.Page))
}
