package tree

import "errors"

var (
	// ErrDuplicateID is reported by Validate when two nodes share an id.
	ErrDuplicateID = errors.New("tree: duplicate node id")
	// ErrInvalidNode is reported by Validate when a node violates the
	// container/field shape rules.
	ErrInvalidNode = errors.New("tree: invalid node")
)
