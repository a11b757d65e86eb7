package schema

import (
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Property describes one field of the data schema.
type Property struct {
	ValueType tree.FieldType `json:"type" yaml:"type"`
	Title     string         `json:"title" yaml:"title"`
}

// DataSchema is the JSON-Schema-like object describing the form's data,
// keyed by field id and independent of layout.
type DataSchema struct {
	Type       string              `json:"type" yaml:"type"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
	Required   []string            `json:"required" yaml:"required"`
}

// Empty returns the schema of a form without fields.
func Empty() DataSchema {
	return DataSchema{
		Type:       "object",
		Properties: map[string]Property{},
		Required:   []string{},
	}
}

// Project derives the data schema from root. Every reachable field except the
// empty placeholder contributes one property. Required ids are carried over
// from prev while they still name a property.
func Project(root *tree.Node, prev DataSchema) DataSchema {
	out := Empty()
	tree.Walk(root, func(node *tree.Node, _ int) bool {
		if node.IsDataField() {
			if _, seen := out.Properties[node.ID]; !seen {
				out.Properties[node.ID] = Property{ValueType: node.Type, Title: node.Title}
			}
		}
		return true
	})
	for _, id := range prev.Required {
		if _, ok := out.Properties[id]; ok && !out.IsRequired(id) {
			out.Required = append(out.Required, id)
		}
	}
	return out
}

// IsRequired reports whether id is listed as required.
func (d DataSchema) IsRequired(id string) bool {
	for _, existing := range d.Required {
		if existing == id {
			return true
		}
	}
	return false
}

// WithRequired returns a copy with id added to or removed from the required
// list. Ids without a property are ignored.
func (d DataSchema) WithRequired(id string, required bool) DataSchema {
	out := d.Clone()
	if _, ok := out.Properties[id]; !ok {
		return out
	}
	if required {
		if !out.IsRequired(id) {
			out.Required = append(out.Required, id)
		}
		return out
	}
	filtered := out.Required[:0]
	for _, existing := range out.Required {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	out.Required = filtered
	return out
}

// PropertyIDs lists property keys in sorted order.
func (d DataSchema) PropertyIDs() []string {
	ids := make([]string, 0, len(d.Properties))
	for id := range d.Properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy.
func (d DataSchema) Clone() DataSchema {
	out := DataSchema{
		Type:       d.Type,
		Properties: make(map[string]Property, len(d.Properties)),
		Required:   append([]string{}, d.Required...),
	}
	for id, prop := range d.Properties {
		out.Properties[id] = prop
	}
	return out
}
