package tree

// InsertNew places node as a child of the container parentID at index,
// clamped to [0, len(children)]. When parentID does not name a live container
// the node is appended to the root. A node whose id is already in the tree is
// rejected and root is returned unchanged.
func InsertNew(root, node *Node, parentID string, index int) *Node {
	if root == nil || node == nil || node.ID == "" {
		return root
	}
	for _, id := range SubtreeIDs(node) {
		if Contains(root, id) {
			return root
		}
	}

	target := Find(root, parentID)
	if !target.IsContainer() {
		target = root
		index = len(root.Children)
	}

	next, ok := updateContainer(root, target.ID, func(children []*Node) []*Node {
		return insertAt(children, clamp(index, len(children)), node)
	})
	if !ok {
		return root
	}
	return next
}

// Move relocates the node id under parentID. slot is a gap position in the
// destination's current children, which is what the editor renders between
// siblings. When the node moves forward inside its own container the slot is
// shifted down by one, because removing the node first shifts every later
// sibling. Moves that would leave the node where it is, moves of the root, and
// moves into the node's own subtree return root unchanged.
func Move(root *Node, id, parentID string, slot int) *Node {
	if root == nil || id == "" || id == root.ID {
		return root
	}
	source, srcIdx, ok := FindParent(root, id)
	if !ok {
		return root
	}
	node := source.Children[srcIdx]

	dest := Find(root, parentID)
	if !dest.IsContainer() {
		dest = root
		slot = len(root.Children)
	}
	if Contains(node, dest.ID) {
		return root
	}

	if dest.ID == source.ID {
		if slot > srcIdx {
			slot--
		}
		slot = clamp(slot, len(source.Children)-1)
		if slot == srcIdx {
			return root
		}
	}

	removed, ok := updateContainer(root, source.ID, func(children []*Node) []*Node {
		return removeAt(children, srcIdx)
	})
	if !ok {
		return root
	}
	next, ok := updateContainer(removed, dest.ID, func(children []*Node) []*Node {
		return insertAt(children, clamp(slot, len(children)), node)
	})
	if !ok {
		return root
	}
	return next
}

// Rename sets the title of the first node matching id. Missing ids and
// unchanged titles return root as is.
func Rename(root *Node, id, title string) *Node {
	if root == nil || id == "" {
		return root
	}
	next, _ := rename(root, id, title)
	return next
}

// rename reports whether id was found below n; the returned node is n itself
// when nothing changed.
func rename(n *Node, id, title string) (*Node, bool) {
	if n.ID == id {
		if n.Title == title {
			return n, true
		}
		return n.withTitle(title), true
	}
	for i, child := range n.Children {
		updated, found := rename(child, id, title)
		if !found {
			continue
		}
		if updated == child {
			return n, true
		}
		children := make([]*Node, len(n.Children))
		copy(children, n.Children)
		children[i] = updated
		return n.withChildren(children), true
	}
	return n, false
}

// DeleteSubtree removes id and all of its descendants. It returns the new root
// and every removed id. The root itself is never removed; missing ids yield
// the same root and no removed ids.
func DeleteSubtree(root *Node, id string) (*Node, []string) {
	if root == nil || id == "" || id == root.ID {
		return root, nil
	}
	parent, idx, ok := FindParent(root, id)
	if !ok {
		return root, nil
	}
	removedIDs := SubtreeIDs(parent.Children[idx])

	next, ok := updateContainer(root, parent.ID, func(children []*Node) []*Node {
		return removeAt(children, idx)
	})
	if !ok {
		return root, nil
	}
	return next, removedIDs
}

// updateContainer rebuilds the path from n down to the container id, handing
// fn the container's current children. fn must return a fresh slice; the
// slice it receives is shared with the previous tree.
func updateContainer(n *Node, id string, fn func([]*Node) []*Node) (*Node, bool) {
	if !n.IsContainer() {
		return n, false
	}
	if n.ID == id {
		return n.withChildren(fn(n.Children)), true
	}
	for i, child := range n.Children {
		updated, ok := updateContainer(child, id, fn)
		if !ok {
			continue
		}
		children := make([]*Node, len(n.Children))
		copy(children, n.Children)
		children[i] = updated
		return n.withChildren(children), true
	}
	return n, false
}

func insertAt(children []*Node, index int, node *Node) []*Node {
	out := make([]*Node, 0, len(children)+1)
	out = append(out, children[:index]...)
	out = append(out, node)
	out = append(out, children[index:]...)
	return out
}

func removeAt(children []*Node, index int) []*Node {
	out := make([]*Node, 0, len(children)-1)
	out = append(out, children[:index]...)
	out = append(out, children[index+1:]...)
	return out
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
