package address_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/address"
	ts "github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

func TestResolveString(t *testing.T) {
	root := ts.Root(
		ts.Field("a", tree.FieldTypeString, "A"),
		ts.Column("box", "Box",
			ts.Field("x", tree.FieldTypeString, "X"),
			ts.Field("y", tree.FieldTypeString, "Y"),
		),
	)

	testCases := []struct {
		name string
		raw  string
		want address.Target
	}{
		{name: "gap in root", raw: "dropzone-1-" + tree.RootID, want: address.Target{Parent: tree.RootID, Index: 1}},
		{name: "gap in container", raw: "dropzone-0-box", want: address.Target{Parent: "box", Index: 0}},
		{name: "gap after last child", raw: "dropzone-2-box", want: address.Target{Parent: "box", Index: 2}},
		{name: "gap index clamps", raw: "dropzone-9-box", want: address.Target{Parent: "box", Index: 2}},
		{name: "overflowing gap index stays in its container", raw: "dropzone-99999999999999999999-box", want: address.Target{Parent: "box", Index: 2}},
		{name: "gap in missing container falls back to root slot", raw: "dropzone-1-ghost", want: address.Target{Parent: tree.RootID, Index: 1}},
		{name: "gap on field falls back to root slot", raw: "dropzone-0-a", want: address.Target{Parent: tree.RootID, Index: 0}},
		{name: "gap fallback clamps to root", raw: "dropzone-7-ghost", want: address.Target{Parent: tree.RootID, Index: 2}},
		{name: "node container appends", raw: "box", want: address.Target{Parent: "box", Index: 2}},
		{name: "root node appends", raw: tree.RootID, want: address.Target{Parent: tree.RootID, Index: 2}},
		{name: "node field appends to root", raw: "x", want: address.Target{Parent: tree.RootID, Index: 2}},
		{name: "missing node appends to root", raw: "ghost", want: address.Target{Parent: tree.RootID, Index: 2}},
		{name: "malformed appends to root", raw: "dropzone-?-box", want: address.Target{Parent: tree.RootID, Index: 2}},
		{name: "empty appends to root", raw: "", want: address.Target{Parent: tree.RootID, Index: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, address.ResolveString(root, tc.raw)); diff != "" {
				t.Fatalf("ResolveString(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestResolve_NilRoot(t *testing.T) {
	want := address.Target{Parent: tree.RootID}
	if got := address.Resolve(nil, address.OnNode("x")); got != want {
		t.Fatalf("Resolve(nil) = %+v, want %+v", got, want)
	}
	if got := address.ResolveString(nil, ""); got != want {
		t.Fatalf("ResolveString(nil) = %+v, want %+v", got, want)
	}
}
