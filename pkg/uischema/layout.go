package uischema

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// ElementType names a UI layout element.
type ElementType string

const (
	TypeVerticalLayout   ElementType = "VerticalLayout"
	TypeHorizontalLayout ElementType = "HorizontalLayout"
	TypeControl          ElementType = "Control"
)

// ScopePrefix is prepended to a field id to reference its data schema
// property.
const ScopePrefix = "#/properties/"

// ControlOptions carries renderer hints for a control.
type ControlOptions struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Element is one node of the UI layout schema. Layouts use Elements; controls
// use Scope, Label and Options.
type Element struct {
	Type     ElementType
	Scope    string
	Label    string
	Options  *ControlOptions
	Elements []Element
}

// Empty returns the layout of a form without components.
func Empty() Element {
	return Element{Type: TypeVerticalLayout, Elements: []Element{}}
}

// Project mirrors root into a layout tree. Containers become layouts of the
// matching direction, fields become controls scoped to their property, and
// empty placeholders are left out.
func Project(root *tree.Node) Element {
	if !root.IsContainer() {
		return Empty()
	}
	element, _ := project(root)
	return element
}

func project(n *tree.Node) (Element, bool) {
	switch {
	case n.IsContainer():
		layout := Element{Type: layoutType(n.Type), Elements: make([]Element, 0, len(n.Children))}
		for _, child := range n.Children {
			if projected, ok := project(child); ok {
				layout.Elements = append(layout.Elements, projected)
			}
		}
		return layout, true
	case n.IsDataField():
		control := Element{Type: TypeControl, Scope: Scope(n.ID), Label: n.Title}
		if n.Type == tree.FieldTypeString {
			control.Options = &ControlOptions{Format: string(tree.FieldTypeString)}
		}
		return control, true
	default:
		return Element{}, false
	}
}

func layoutType(direction tree.FieldType) ElementType {
	if direction == tree.DirectionRow {
		return TypeHorizontalLayout
	}
	return TypeVerticalLayout
}

// Scope builds the property reference for a field id.
func Scope(id string) string {
	return ScopePrefix + id
}

// IDFromScope extracts the field id from a control scope.
func IDFromScope(scope string) (string, bool) {
	id, ok := strings.CutPrefix(scope, ScopePrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Controls lists every control below e in document order.
func (e Element) Controls() []Element {
	var out []Element
	e.walk(func(el Element) {
		if el.Type == TypeControl {
			out = append(out, el)
		}
	})
	return out
}

// Control finds the control bound to the field id.
func (e Element) Control(id string) (Element, bool) {
	scope := Scope(id)
	for _, control := range e.Controls() {
		if control.Scope == scope {
			return control, true
		}
	}
	return Element{}, false
}

func (e Element) walk(fn func(Element)) {
	fn(e)
	for _, child := range e.Elements {
		child.walk(fn)
	}
}

type layoutView struct {
	Type     ElementType `json:"type" yaml:"type"`
	Elements []Element   `json:"elements" yaml:"elements"`
}

type controlView struct {
	Type    ElementType     `json:"type" yaml:"type"`
	Scope   string          `json:"scope" yaml:"scope"`
	Label   string          `json:"label,omitempty" yaml:"label,omitempty"`
	Options *ControlOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

func (e Element) view() any {
	if e.Type == TypeControl {
		return controlView{Type: e.Type, Scope: e.Scope, Label: e.Label, Options: e.Options}
	}
	elements := e.Elements
	if elements == nil {
		elements = []Element{}
	}
	return layoutView{Type: e.Type, Elements: elements}
}

// MarshalJSON emits the JSON Forms shape: layouts always carry an elements
// array, controls never do.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.view())
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (e Element) MarshalYAML() (any, error) {
	return e.view(), nil
}
