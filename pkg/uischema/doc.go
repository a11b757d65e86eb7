// Package uischema derives the UI layout schema shown by the live preview.
// The layout shadows the container structure of the field tree: each
// container becomes a VerticalLayout or HorizontalLayout and each field
// becomes a Control whose scope points at the field's data schema property.
// The layout is always recomputed from the whole tree, never patched.
package uischema
