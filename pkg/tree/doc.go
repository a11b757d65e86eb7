// Package tree defines the field tree edited by the form builder: a single
// root container whose ordered children hold layout containers and input
// fields. Nodes are immutable once they are part of a tree. The mutators in
// this package (InsertNew, Move, Rename, DeleteSubtree) return a new root that
// shares every untouched subtree with the previous one, so callers may keep
// old roots as snapshots and compare subtrees by pointer to detect change.
package tree
