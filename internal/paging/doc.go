// Package paging implements the filtering and pagination engine behind every list of the picker.
//
// A [Collection] owns an ordered set of items, each with a selection flag, a case-insensitive caption
// filter, a page size and a current page. Every mutation keeps the current page inside
// [1, max(1, TotalPages)], so the derived views ([Collection.VisibleItems], [Collection.Layout]) are
// always consistent with the data.
//
// [ComputeLayout] is the pure function that decides which page-number buttons a pager shows. Given the
// same (current page, total pages, [Options]) it always returns the same [Layout].
//
// A Collection is not safe for concurrent use. The picker drives it from a single event loop.
package paging
