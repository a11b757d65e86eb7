package tree

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn stops the walk below the current node only.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Find returns the first node with id in depth-first order, or nil.
func Find(n *Node, id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := Find(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the container holding id and the child's position in it.
// The root has no parent.
func FindParent(n *Node, id string) (*Node, int, bool) {
	if n == nil || id == "" {
		return nil, -1, false
	}
	for i, child := range n.Children {
		if child.ID == id {
			return n, i, true
		}
		if parent, idx, ok := FindParent(child, id); ok {
			return parent, idx, true
		}
	}
	return nil, -1, false
}

// Contains reports whether id is n itself or one of its descendants.
func Contains(n *Node, id string) bool {
	return Find(n, id) != nil
}

// SubtreeIDs lists the ids of n and every descendant in pre-order.
func SubtreeIDs(n *Node) []string {
	var ids []string
	Walk(n, func(node *Node, _ int) bool {
		ids = append(ids, node.ID)
		return true
	})
	return ids
}

// DataFieldIDs lists the ids of the reachable fields that carry data, in
// pre-order.
func DataFieldIDs(n *Node) []string {
	var ids []string
	Walk(n, func(node *Node, _ int) bool {
		if node.IsDataField() {
			ids = append(ids, node.ID)
		}
		return true
	})
	return ids
}

// Count returns the number of nodes in n, including n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node, int) bool {
		total++
		return true
	})
	return total
}
