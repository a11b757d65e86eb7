// Package formbuilder is the entry point for embedding the form builder. It
// re-exports the session constructor and the export helpers so callers can
// drive a builder and serialise its artifacts without importing every
// sub-package.
package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Session aliases session.Session.
type Session = session.Session

// State aliases session.State.
type State = session.State

// Bundle aliases export.Bundle.
type Bundle = export.Bundle

// NewSession starts a builder with an empty root.
func NewSession(options ...session.Option) *Session {
	return session.New(options...)
}

// DefaultPalette returns the bundled component palette.
func DefaultPalette() *palette.Palette {
	return palette.Default()
}

// Export encodes the current artifacts of s in format.
func Export(ctx context.Context, s *Session, format export.Format) ([]byte, error) {
	return export.Encode(ctx, format, export.FromState(s.Snapshot()))
}

// Check reports drift between the tree of st and its derived artifacts.
func Check(st State) []validation.SchemaIssue {
	return validation.CheckConsistency(st.Tree, st.DataSchema, st.UILayout, st.FormData)
}
