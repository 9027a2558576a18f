// Package models defines the entities shared by the list engine, the picker UI and the item catalog.
//
// There are two kinds of types:
//
//  1. Values handed between components
//     - [Item] : an identifier and a caption. Identity is the ID; captions may repeat.
//
//  2. Persistent entities backed by the catalog database
//     - [CatalogItem] : an [Item] with sequence number, timestamps and soft delete.
//
// Persistent entities implement [Model]; [Repository] describes their CRUD access.
package models
