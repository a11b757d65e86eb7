package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Field builds a detached field node.
func Field(id string, typ tree.FieldType, title string) *tree.Node {
	return &tree.Node{ID: id, Kind: tree.KindField, Type: typ, Title: title}
}

// Column builds a vertical container holding children.
func Column(id, title string, children ...*tree.Node) *tree.Node {
	return container(id, tree.DirectionColumn, title, children)
}

// Row builds a horizontal container holding children.
func Row(id, title string, children ...*tree.Node) *tree.Node {
	return container(id, tree.DirectionRow, title, children)
}

// Root builds a seeded root carrying children.
func Root(children ...*tree.Node) *tree.Node {
	root := tree.NewRoot()
	root.Children = append([]*tree.Node{}, children...)
	return root
}

func container(id string, dir tree.FieldType, title string, children []*tree.Node) *tree.Node {
	return &tree.Node{
		ID:       id,
		Kind:     tree.KindContainer,
		Type:     dir,
		Title:    title,
		Children: append([]*tree.Node{}, children...),
	}
}

// Shape renders the id structure of n compactly, e.g. "root(a,b(c))", so
// tests can compare layouts with a single string.
func Shape(n *tree.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	writeShape(&b, n)
	return b.String()
}

func writeShape(b *strings.Builder, n *tree.Node) {
	id := n.ID
	if id == tree.RootID {
		id = "root"
	}
	b.WriteString(id)
	if !n.IsContainer() {
		return
	}
	b.WriteByte('(')
	for i, child := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		writeShape(b, child)
	}
	b.WriteByte(')')
}

// RequireValidTree fails the test when root breaks a structural invariant.
func RequireValidTree(t *testing.T, root *tree.Node) {
	t.Helper()

	if err := tree.Validate(root); err != nil {
		t.Fatalf("invalid tree %s: %v", Shape(root), err)
	}
}

// MustLoadTree loads a JSON tree fixture.
func MustLoadTree(t *testing.T, path string) *tree.Node {
	t.Helper()

	root, err := LoadTree(path)
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}
	return root
}

// LoadTree reads a JSON tree fixture, returning an error for callers managing
// setup outside of *testing.T.
func LoadTree(path string) (*tree.Node, error) {
	if path == "" {
		return nil, errors.New("testsupport: tree path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read tree: %w", err)
	}
	var root tree.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("testsupport: decode tree: %w", err)
	}
	normaliseChildren(&root)
	return &root, nil
}

// normaliseChildren restores the empty children slice that JSON omits for
// empty containers.
func normaliseChildren(n *tree.Node) {
	if n.Kind == tree.KindContainer && n.Children == nil {
		n.Children = []*tree.Node{}
	}
	for _, child := range n.Children {
		normaliseChildren(child)
	}
}
