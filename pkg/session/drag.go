package session

import (
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Descriptor identifies what is being dragged: a new component from the
// palette (Kind and Type set) or an existing node (NodeID set).
type Descriptor struct {
	NodeID string
	Kind   tree.Kind
	Type   tree.FieldType
}

// NewComponent describes a palette drag.
func NewComponent(kind tree.Kind, typ tree.FieldType) Descriptor {
	return Descriptor{Kind: kind, Type: typ}
}

// FromPaletteItem describes a drag of item.
func FromPaletteItem(item palette.Item) Descriptor {
	return NewComponent(item.Kind, item.Type)
}

// ExistingNode describes a drag of the node id.
func ExistingNode(id string) Descriptor {
	return Descriptor{NodeID: id}
}

// IsNew reports whether d comes from the palette.
func (d Descriptor) IsNew() bool {
	return d.NodeID == ""
}

// DropResult reports the outcome of DragEnd.
type DropResult struct {
	// NodeID is the created or moved node.
	NodeID    string
	Committed bool
}

type dragState struct {
	active  *Descriptor
	hovered string
}

// DragStart begins a gesture. A gesture already in progress is replaced.
func (s *Session) DragStart(d Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = dragState{active: &d}
}

// DragOver records the address currently under the pointer so the editor
// can highlight it.
func (s *Session) DragOver(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag.active == nil {
		return
	}
	s.drag.hovered = raw
}

// DragEnd finishes the gesture at raw. An empty raw means the pointer was
// released outside any drop target and nothing changes.
func (s *Session) DragEnd(raw string) DropResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.drag.active
	s.drag = dragState{}
	if active == nil || raw == "" {
		return DropResult{}
	}

	if active.IsNew() {
		id, ok := s.dropNew(active.Kind, active.Type, raw)
		return DropResult{NodeID: id, Committed: ok}
	}
	ok := s.dropExisting(active.NodeID, raw)
	return DropResult{NodeID: active.NodeID, Committed: ok}
}

// DragCancel abandons the gesture without touching the tree.
func (s *Session) DragCancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = dragState{}
}

// Hovered returns the address under the pointer, if a drag is in progress.
func (s *Session) Hovered() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.hovered
}

// Dragging returns the descriptor of the gesture in progress.
func (s *Session) Dragging() (Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag.active == nil {
		return Descriptor{}, false
	}
	return *s.drag.active, true
}
