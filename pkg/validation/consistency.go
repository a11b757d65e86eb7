package validation

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// CheckConsistency compares the derived artifacts against root: ids are
// unique, every reachable data field has exactly one property and one form
// data entry, and the UI layout mirrors the tree. An empty result means the
// four agree.
func CheckConsistency(root *tree.Node, ds schema.DataSchema, ui uischema.Element, data formdata.Data) []SchemaIssue {
	var issues []SchemaIssue
	if err := tree.Validate(root); err != nil {
		for _, e := range unjoin(err) {
			issues = append(issues, SchemaIssue{Path: "tree", Message: e.Error()})
		}
		if !root.IsContainer() {
			return issues
		}
	}

	fields := make(map[string]*tree.Node)
	tree.Walk(root, func(node *tree.Node, _ int) bool {
		if node.IsDataField() {
			fields[node.ID] = node
		}
		return true
	})

	issues = append(issues, checkSchema(fields, ds)...)
	issues = append(issues, checkData(fields, data)...)
	issues = append(issues, checkLayout("uischema", uischema.Project(root), ui)...)
	return issues
}

func checkSchema(fields map[string]*tree.Node, ds schema.DataSchema) []SchemaIssue {
	var issues []SchemaIssue
	for _, id := range sortedKeys(fields) {
		node := fields[id]
		path := "#/properties/" + pointerSegment(id)
		prop, ok := ds.Properties[id]
		switch {
		case !ok:
			issues = append(issues, issueAt(path, "field has no property"))
		case prop.ValueType != node.Type:
			issues = append(issues, issueAt(path+"/type", fmt.Sprintf("property type %q, field type %q", prop.ValueType, node.Type)))
		case prop.Title != node.Title:
			issues = append(issues, issueAt(path+"/title", fmt.Sprintf("property title %q, field title %q", prop.Title, node.Title)))
		}
	}
	for _, id := range ds.PropertyIDs() {
		if _, ok := fields[id]; !ok {
			issues = append(issues, issueAt("#/properties/"+pointerSegment(id), "property has no field"))
		}
	}
	for i, id := range ds.Required {
		if _, ok := fields[id]; !ok {
			issues = append(issues, SchemaIssue{Path: fmt.Sprintf("#/required/%d", i), Field: id, Message: "required id is not a field"})
		}
	}
	return issues
}

func checkData(fields map[string]*tree.Node, data formdata.Data) []SchemaIssue {
	var issues []SchemaIssue
	for _, id := range sortedKeys(fields) {
		if _, ok := data[id]; !ok {
			issues = append(issues, SchemaIssue{Path: "data/" + pointerSegment(id), Field: id, Message: "field has no data entry"})
		}
	}
	for _, id := range data.Keys() {
		if _, ok := fields[id]; !ok {
			issues = append(issues, SchemaIssue{Path: "data/" + pointerSegment(id), Field: id, Message: "data entry has no field"})
		}
	}
	return issues
}

func checkLayout(path string, want, got uischema.Element) []SchemaIssue {
	if want.Type != got.Type {
		return []SchemaIssue{{Path: path, Message: fmt.Sprintf("element type %q, want %q", got.Type, want.Type)}}
	}
	if want.Type == uischema.TypeControl {
		id, _ := uischema.IDFromScope(want.Scope)
		switch {
		case want.Scope != got.Scope:
			return []SchemaIssue{{Path: path, Field: id, Message: fmt.Sprintf("control scope %q, want %q", got.Scope, want.Scope)}}
		case want.Label != got.Label:
			return []SchemaIssue{{Path: path, Field: id, Message: fmt.Sprintf("control label %q, want %q", got.Label, want.Label)}}
		case formatOf(want) != formatOf(got):
			return []SchemaIssue{{Path: path, Field: id, Message: fmt.Sprintf("control format %q, want %q", formatOf(got), formatOf(want))}}
		}
		return nil
	}
	if len(want.Elements) != len(got.Elements) {
		return []SchemaIssue{{Path: path, Message: fmt.Sprintf("layout has %d elements, want %d", len(got.Elements), len(want.Elements))}}
	}
	var issues []SchemaIssue
	for i := range want.Elements {
		issues = append(issues, checkLayout(fmt.Sprintf("%s/elements/%d", path, i), want.Elements[i], got.Elements[i])...)
	}
	return issues
}

func formatOf(e uischema.Element) string {
	if e.Options == nil {
		return ""
	}
	return e.Options.Format
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func sortedKeys(fields map[string]*tree.Node) []string {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
