package formbuilder_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

func TestQuickStart(t *testing.T) {
	s := formbuilder.NewSession()
	pal := formbuilder.DefaultPalette()

	row, ok := pal.Lookup("horizontal")
	if !ok {
		t.Fatalf("palette is missing the horizontal layout")
	}
	text, _ := pal.Lookup("text")

	s.DragStart(session.FromPaletteItem(row))
	layout := s.DragEnd(tree.RootID)
	s.DragStart(session.FromPaletteItem(text))
	field := s.DragEnd(layout.NodeID)
	if !layout.Committed || !field.Committed {
		t.Fatalf("drops not committed: %+v %+v", layout, field)
	}

	if issues := formbuilder.Check(s.Snapshot()); len(issues) != 0 {
		t.Fatalf("unexpected issues: %#v", issues)
	}

	out, err := formbuilder.Export(context.Background(), s, export.FormatJSON)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got struct {
		Schema struct {
			Properties map[string]struct {
				Type string `json:"type"`
			} `json:"properties"`
		} `json:"schema"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Schema.Properties[field.NodeID].Type != "string" {
		t.Fatalf("unexpected schema: %s", out)
	}
	if diff := cmp.Diff(map[string]any{field.NodeID: nil}, got.Data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}
