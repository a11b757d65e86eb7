package tree

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of a tree: the root is a
// container, ids are unique and non-empty, containers own a children slice,
// fields own none, and every kind/type pair is known. The mutators maintain
// these rules by construction; Validate exists for tests and debug tooling.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: root is nil", ErrInvalidNode)
	}
	if !root.IsContainer() {
		return fmt.Errorf("%w: root %q is not a container", ErrInvalidNode, root.ID)
	}

	var errs []error
	seen := make(map[string]struct{})
	Walk(root, func(node *Node, _ int) bool {
		if node.ID == "" {
			errs = append(errs, fmt.Errorf("%w: empty id", ErrInvalidNode))
		} else if _, dup := seen[node.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, node.ID))
		}
		seen[node.ID] = struct{}{}

		if !ValidType(node.Kind, node.Type) {
			errs = append(errs, fmt.Errorf("%w: %q has kind %q with type %q", ErrInvalidNode, node.ID, node.Kind, node.Type))
		}
		switch node.Kind {
		case KindContainer:
			if node.Children == nil {
				errs = append(errs, fmt.Errorf("%w: container %q has nil children", ErrInvalidNode, node.ID))
			}
		case KindField:
			if node.Children != nil {
				errs = append(errs, fmt.Errorf("%w: field %q has children", ErrInvalidNode, node.ID))
			}
		}
		return true
	})
	return errors.Join(errs...)
}
