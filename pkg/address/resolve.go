package address

import "github.com/goliatone/go-formbuilder/pkg/tree"

// Target is a resolved insertion point: a live container and a slot among its
// current children.
type Target struct {
	Parent string
	Index  int
}

// Resolve maps a to a container in root.
//
// Gap addresses keep their slot, clamped to the container's child count, and
// fall back to the same slot in the root when the container is missing or is
// a field. Node addresses append to the named container, or to the root when
// the node is a field or absent.
func Resolve(root *tree.Node, a Address) Target {
	if root == nil {
		return Target{Parent: tree.RootID}
	}
	switch a.Kind {
	case KindGap:
		container := tree.Find(root, a.Container)
		if !container.IsContainer() {
			container = root
		}
		return Target{Parent: container.ID, Index: clamp(a.Index, len(container.Children))}
	default:
		node := tree.Find(root, a.Node)
		if node.IsContainer() {
			return Target{Parent: node.ID, Index: len(node.Children)}
		}
		return appendToRoot(root)
	}
}

// ResolveString parses raw and resolves it, degrading malformed input to an
// append at the end of the root.
func ResolveString(root *tree.Node, raw string) Target {
	a, err := Parse(raw)
	if err != nil {
		if root == nil {
			return Target{Parent: tree.RootID}
		}
		return appendToRoot(root)
	}
	return Resolve(root, a)
}

func appendToRoot(root *tree.Node) Target {
	return Target{Parent: root.ID, Index: len(root.Children)}
}

func clamp(index, max int) int {
	if index < 0 {
		return 0
	}
	if index > max {
		return max
	}
	return index
}
