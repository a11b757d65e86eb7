// Package session owns the authoritative state of one form-builder editing
// session: the field tree plus the data schema, UI layout schema and form data
// derived from it.
//
// Every transition resolves its input, asks the tree package for the next
// tree, recomputes both schemas from that tree and replaces the whole state
// at once. Transitions are serialised by a mutex and never fail: malformed
// input degrades to a no-op or to an append at the end of the root, and stale
// ids are ignored. The gesture layer reports drags through DragStart,
// DragOver, DragEnd and DragCancel; renderers read Snapshot, Selected and
// Inspect.
package session
