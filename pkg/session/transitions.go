package session

import (
	"github.com/goliatone/go-formbuilder/pkg/address"
	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// DropNewComponent creates a node of kind/typ at the drop target raw and
// returns its id. Unknown kind/type pairs are ignored.
func (s *Session) DropNewComponent(kind tree.Kind, typ tree.FieldType, raw string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropNew(kind, typ, raw)
}

func (s *Session) dropNew(kind tree.Kind, typ tree.FieldType, raw string) (string, bool) {
	if !tree.ValidType(kind, typ) {
		return "", false
	}
	node, ok := tree.NewNode(s.nextID(), kind, typ, tree.DefaultTitle(kind, typ))
	if !ok {
		return "", false
	}

	target := address.ResolveString(s.state.Tree, raw)
	root := tree.InsertNew(s.state.Tree, node, target.Parent, target.Index)
	if root == s.state.Tree {
		return "", false
	}

	next := s.reproject(root)
	if node.IsDataField() {
		next.FormData = formdata.Seed(s.state.FormData, node.ID)
	}
	s.commit(next, "drop new component", "node", node.ID, "kind", kind, "type", typ, "parent", target.Parent, "index", target.Index)
	return node.ID, true
}

// DropExistingNode moves id to the drop target raw. Dropping a node onto
// itself or into its own subtree leaves the state unchanged, as do targets
// that resolve to the node's current position.
func (s *Session) DropExistingNode(id, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropExisting(id, raw)
}

func (s *Session) dropExisting(id, raw string) bool {
	node, ok := s.lookup(id)
	if !ok || node == s.state.Tree {
		return false
	}
	if a, err := address.Parse(raw); err == nil && a.Kind == address.KindNode && a.Node == id {
		return false
	}

	target := address.ResolveString(s.state.Tree, raw)
	if tree.Contains(node, target.Parent) {
		return false
	}
	root := tree.Move(s.state.Tree, id, target.Parent, target.Index)
	if root == s.state.Tree {
		return false
	}

	s.commit(s.reproject(root), "move node", "node", id, "parent", target.Parent, "index", target.Index)
	return true
}

// RenameSelected retitles the selected node.
func (s *Session) RenameSelected(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rename(s.state.Selection, title)
}

// Rename retitles the node id.
func (s *Session) Rename(id, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rename(id, title)
}

func (s *Session) rename(id, title string) bool {
	if _, ok := s.lookup(id); !ok {
		return false
	}
	if s.sanitize != nil {
		title = s.sanitize(title)
	}
	root := tree.Rename(s.state.Tree, id, title)
	if root == s.state.Tree {
		return false
	}
	s.commit(s.reproject(root), "rename node", "node", id)
	return true
}

// DeleteSelected removes the selected node and its descendants and returns
// every removed id.
func (s *Session) DeleteSelected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(s.state.Selection)
}

// Delete removes id and its descendants and returns every removed id.
func (s *Session) Delete(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(id)
}

func (s *Session) delete(id string) []string {
	root, removed := tree.DeleteSubtree(s.state.Tree, id)
	if len(removed) == 0 {
		return nil
	}

	next := s.reproject(root)
	next.FormData = formdata.Reconcile(s.state.FormData, removed)
	for _, gone := range removed {
		if gone == next.Selection {
			next.Selection = ""
			break
		}
	}
	s.commit(next, "delete subtree", "node", id, "removed", len(removed))
	return removed
}

// Select shows id in the inspector; an empty id clears the selection. The id
// is not validated here: Selected resolves it on read.
func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selection = id
}

// ClearAll resets the session to its seeded state and drops any drag in
// progress.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = dragState{}
	s.commit(initialState(), "clear all")
}

// SetValue stores a preview value for the data field id. Containers,
// placeholders and unknown ids are ignored.
func (s *Session) SetValue(id string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.lookup(id)
	if !ok || !node.IsDataField() {
		return false
	}
	next := s.state
	next.FormData = formdata.Set(s.state.FormData, id, value)
	s.commit(next, "set value", "node", id)
	return true
}

// SetRequired adds or removes the data field id from the schema's required
// list.
func (s *Session) SetRequired(id string, required bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.lookup(id)
	if !ok || !node.IsDataField() || s.state.DataSchema.IsRequired(id) == required {
		return false
	}
	next := s.state
	next.DataSchema = s.state.DataSchema.WithRequired(id, required)
	s.commit(next, "set required", "node", id, "required", required)
	return true
}
