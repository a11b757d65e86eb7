// Package address turns the drop-target identifiers produced by the gesture
// layer into insertion points in the field tree.
//
// Two forms exist. A gap address, serialised as "dropzone-{index}-{containerId}",
// names a container and the slot between its children. A node address is the
// bare id of an existing node. Resolution never fails: anything that cannot be
// resolved lands at the end of the root container so a drop is never lost.
package address
