// Package outline renders the editing view of a form tree as text and lists
// the drop targets a terminal user can pick from.
package outline

import (
	"embed"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/address"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const outlineTemplate = "templates/outline.tpl"

// Row is one node of the outline.
type Row struct {
	ID       string
	Title    string
	Label    string
	Depth    int
	Indent   string
	Selected bool
}

// Target is a drop target offered to the user.
type Target struct {
	Address string
	Label   string
}

// Renderer executes the outline template.
type Renderer struct {
	tmpl *pongo2.Template
}

// New loads the embedded outline template.
func New() (*Renderer, error) {
	set := pongo2.NewSet("formbuilder", pongo2.NewFSLoader(templatesFS))
	tmpl, err := set.FromFile(outlineTemplate)
	if err != nil {
		return nil, fmt.Errorf("outline: load template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render draws root below its title, marking the selected node.
func (r *Renderer) Render(root *tree.Node, selected string) (string, error) {
	if root == nil {
		return "", fmt.Errorf("outline: %w", tree.ErrInvalidNode)
	}
	out, err := r.tmpl.Execute(pongo2.Context{
		"title":  root.Title,
		"fields": len(tree.DataFieldIDs(root)),
		"rows":   Rows(root, selected),
	})
	if err != nil {
		return "", fmt.Errorf("outline: execute template: %w", err)
	}
	return out, nil
}

// Rows lists every node below root in pre-order.
func Rows(root *tree.Node, selected string) []Row {
	var rows []Row
	tree.Walk(root, func(node *tree.Node, depth int) bool {
		if node == root {
			return true
		}
		rows = append(rows, Row{
			ID:       node.ID,
			Title:    node.Title,
			Label:    Label(node),
			Depth:    depth - 1,
			Indent:   strings.Repeat("  ", depth-1),
			Selected: node.ID == selected,
		})
		return true
	})
	return rows
}

// Label names the component kind of n.
func Label(n *tree.Node) string {
	switch {
	case n.IsContainer() && n.Type == tree.DirectionRow:
		return "Horizontal Layout"
	case n.IsContainer():
		return "Vertical Layout"
	}
	switch n.Type {
	case tree.FieldTypeString:
		return "Text"
	case tree.FieldTypeNumber:
		return "Number"
	case tree.FieldTypeBoolean:
		return "Checkbox"
	default:
		return "Placeholder"
	}
}

// Targets lists every gap of every container in root, in tree order.
// Containers inside exclude's subtree are skipped so a node is never offered
// a spot inside itself.
func Targets(root *tree.Node, exclude string) []Target {
	var skip *tree.Node
	if exclude != "" {
		skip = tree.Find(root, exclude)
	}

	var targets []Target
	tree.Walk(root, func(node *tree.Node, depth int) bool {
		if skip != nil && node == skip {
			return false
		}
		if !node.IsContainer() {
			return true
		}
		indent := strings.Repeat("  ", depth)
		for i, child := range node.Children {
			targets = append(targets, Target{
				Address: address.Gap(node.ID, i).String(),
				Label:   fmt.Sprintf("%s%s: before %q", indent, node.Title, child.Title),
			})
		}
		targets = append(targets, Target{
			Address: address.Gap(node.ID, len(node.Children)).String(),
			Label:   fmt.Sprintf("%s%s: at end", indent, node.Title),
		})
		return true
	})
	return targets
}
