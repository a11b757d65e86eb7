package address

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned by Parse for empty input and for strings that use
// the gap prefix without a valid index and container id.
var ErrMalformed = errors.New("address: malformed drop target")

// GapPrefix starts every serialised gap address.
const GapPrefix = "dropzone-"

var gapPattern = regexp.MustCompile(`^dropzone-(\d+)-(.+)$`)

// Kind tags the address variant.
type Kind int

const (
	// KindNode targets an existing node directly.
	KindNode Kind = iota
	// KindGap targets a slot between the children of a container.
	KindGap
)

// Address is a tagged union: Container and Index are set for gaps, Node for
// node addresses.
type Address struct {
	Kind      Kind
	Container string
	Index     int
	Node      string
}

// Gap addresses slot index of container.
func Gap(container string, index int) Address {
	return Address{Kind: KindGap, Container: container, Index: index}
}

// OnNode addresses the node id.
func OnNode(id string) Address {
	return Address{Kind: KindNode, Node: id}
}

// Parse reads the gesture-layer string form.
func Parse(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Address{}, ErrMalformed
	}
	if !strings.HasPrefix(trimmed, GapPrefix) {
		return OnNode(trimmed), nil
	}

	matches := gapPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	// The pattern only admits digits, so the one possible failure is an
	// index too large for int; it saturates and the resolver clamps it.
	index, err := strconv.Atoi(matches[1])
	if err != nil {
		index = math.MaxInt
	}
	return Gap(matches[2], index), nil
}

// String serialises the address into the gesture-layer form.
func (a Address) String() string {
	if a.Kind == KindGap {
		return GapPrefix + strconv.Itoa(a.Index) + "-" + a.Container
	}
	return a.Node
}
