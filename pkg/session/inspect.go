package session

import "github.com/goliatone/go-formbuilder/pkg/tree"

// Inspection is what the inspector panel displays for the selection.
type Inspection struct {
	ID       string
	Title    string
	Kind     tree.Kind
	Type     tree.FieldType
	Category string
	Required bool
}

// Selected resolves the selection against the current tree. A stale or empty
// selection reports false.
func (s *Session) Selected() (*tree.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(s.state.Selection)
}

// Inspect describes the selected node.
func (s *Session) Inspect() (Inspection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.lookup(s.state.Selection)
	if !ok {
		return Inspection{}, false
	}
	return Inspection{
		ID:       node.ID,
		Title:    node.Title,
		Kind:     node.Kind,
		Type:     node.Type,
		Category: node.Category(),
		Required: s.state.DataSchema.IsRequired(node.ID),
	}, true
}
