// Package transfer moves items between a source and a destination [paging.Collection].
//
// A [Coordinator] owns both collections. Every move is checked before either collection is touched, so an
// item is never in both lists or in neither, and the [Observer] only sees consistent state.
//
// Coordinators are not safe for concurrent use; callers serialize access (the TUI event loop does this).
package transfer
