// Package repositories implements SQLite persistence for the item catalog.
//
// The catalog is where pickers are seeded from when no file is given. Rows are soft deleted via deleted_at and
// excluded from queries by default.
//
//   - [ItemRepository] : CRUD and filtered listing for [models.CatalogItem]
//   - [Importer] : bulk upsert of plain items, used by `catalog import`
//
// Sequence numbers give the catalog a stable insertion order independent of IDs and timestamps.
// [NextSequence] increments the per-table counter kept in a dedicated sequence table.
package repositories
