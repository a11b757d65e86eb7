package tree

import "strings"

// RootID is the fixed identity of the root container.
const RootID = "root_vertical_layout"

// Kind separates layout containers from input fields.
type Kind string

const (
	KindContainer Kind = "container"
	KindField     Kind = "field"
)

// FieldType carries the value type of a field or the layout direction of a
// container.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	// FieldTypeEmpty marks the placeholder drawn for an empty drop target. It
	// never contributes to the derived schemas or form data.
	FieldTypeEmpty FieldType = "empty"

	DirectionColumn FieldType = "column"
	DirectionRow    FieldType = "row"
)

// Node is one element of the field tree. Children is non-nil for containers
// (possibly empty) and nil for fields.
type Node struct {
	ID       string    `json:"id" yaml:"id"`
	Kind     Kind      `json:"kind" yaml:"kind"`
	Type     FieldType `json:"type" yaml:"type"`
	Title    string    `json:"title" yaml:"title"`
	Children []*Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewRoot returns the seeded, empty root container.
func NewRoot() *Node {
	return &Node{
		ID:       RootID,
		Kind:     KindContainer,
		Type:     DirectionColumn,
		Title:    "Form",
		Children: []*Node{},
	}
}

// NewNode builds a detached node for insertion. It reports false when the
// kind/type pair is not one the builder knows how to project.
func NewNode(id string, kind Kind, typ FieldType, title string) (*Node, bool) {
	id = strings.TrimSpace(id)
	if id == "" || !ValidType(kind, typ) {
		return nil, false
	}
	node := &Node{ID: id, Kind: kind, Type: typ, Title: title}
	if kind == KindContainer {
		node.Children = []*Node{}
	}
	return node, true
}

// ValidType reports whether typ is allowed for kind.
func ValidType(kind Kind, typ FieldType) bool {
	switch kind {
	case KindContainer:
		return typ == DirectionColumn || typ == DirectionRow
	case KindField:
		switch typ {
		case FieldTypeString, FieldTypeNumber, FieldTypeBoolean, FieldTypeEmpty:
			return true
		}
	}
	return false
}

// DefaultTitle is the label given to freshly dropped components.
func DefaultTitle(kind Kind, typ FieldType) string {
	if kind == KindContainer {
		if typ == DirectionRow {
			return "New Horizontal Layout"
		}
		return "New Vertical Layout"
	}
	return "New " + string(typ)
}

// IsContainer reports whether n holds children.
func (n *Node) IsContainer() bool {
	return n != nil && n.Kind == KindContainer
}

// IsPlaceholder reports whether n is the reserved empty drop-target field.
func (n *Node) IsPlaceholder() bool {
	return n != nil && n.Kind == KindField && n.Type == FieldTypeEmpty
}

// IsDataField reports whether n contributes a data schema property and a form
// data entry.
func (n *Node) IsDataField() bool {
	return n != nil && n.Kind == KindField && !n.IsPlaceholder()
}

// Category mirrors the palette grouping shown by the inspector.
func (n *Node) Category() string {
	if n.IsContainer() {
		return "layout"
	}
	return "field"
}

// withChildren returns a shallow copy of n that owns children.
func (n *Node) withChildren(children []*Node) *Node {
	out := *n
	out.Children = children
	return &out
}

// withTitle returns a shallow copy of n carrying title.
func (n *Node) withTitle(title string) *Node {
	out := *n
	out.Title = title
	return &out
}
