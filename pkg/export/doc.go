// Package export serialises a builder snapshot: the data schema, the UI
// layout and the form data, as JSON or YAML, or the data schema alone as an
// OpenAPI 3 component.
package export
