package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	ts "github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

func abc() *tree.Node {
	return ts.Root(
		ts.Field("a", tree.FieldTypeString, "A"),
		ts.Field("b", tree.FieldTypeNumber, "B"),
		ts.Field("c", tree.FieldTypeBoolean, "C"),
	)
}

func TestInsertNew(t *testing.T) {
	tests := []struct {
		name   string
		root   *tree.Node
		parent string
		index  int
		want   string
	}{
		{name: "empty root", root: ts.Root(), parent: tree.RootID, index: 0, want: "root(n)"},
		{name: "before first", root: abc(), parent: tree.RootID, index: 0, want: "root(n,a,b,c)"},
		{name: "middle", root: abc(), parent: tree.RootID, index: 1, want: "root(a,n,b,c)"},
		{name: "after last", root: abc(), parent: tree.RootID, index: 3, want: "root(a,b,c,n)"},
		{name: "negative clamps", root: abc(), parent: tree.RootID, index: -4, want: "root(n,a,b,c)"},
		{name: "overflow clamps", root: abc(), parent: tree.RootID, index: 42, want: "root(a,b,c,n)"},
		{
			name:   "nested container",
			root:   ts.Root(ts.Column("box", "Box", ts.Field("x", tree.FieldTypeString, "X"))),
			parent: "box",
			index:  0,
			want:   "root(box(n,x))",
		},
		{name: "unknown parent appends to root", root: abc(), parent: "ghost", index: 0, want: "root(a,b,c,n)"},
		{name: "field parent appends to root", root: abc(), parent: "b", index: 0, want: "root(a,b,c,n)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := ts.Field("n", tree.FieldTypeString, "N")
			got := tree.InsertNew(tt.root, node, tt.parent, tt.index)
			if diff := cmp.Diff(tt.want, ts.Shape(got)); diff != "" {
				t.Fatalf("shape mismatch (-want +got):\n%s", diff)
			}
			ts.RequireValidTree(t, got)
		})
	}
}

func TestInsertNew_RejectsDuplicateID(t *testing.T) {
	root := abc()
	got := tree.InsertNew(root, ts.Field("b", tree.FieldTypeString, "dup"), tree.RootID, 0)
	if got != root {
		t.Fatalf("expected duplicate insert to return the same root, got %s", ts.Shape(got))
	}

	nested := ts.Column("box", "Box", ts.Field("c", tree.FieldTypeString, "dup"))
	if got := tree.InsertNew(root, nested, tree.RootID, 0); got != root {
		t.Fatalf("expected subtree with duplicate descendant to be rejected, got %s", ts.Shape(got))
	}
}

func TestInsertNew_SharesUntouchedSubtrees(t *testing.T) {
	left := ts.Column("left", "Left", ts.Field("x", tree.FieldTypeString, "X"))
	right := ts.Column("right", "Right", ts.Field("y", tree.FieldTypeString, "Y"))
	root := ts.Root(left, right)

	got := tree.InsertNew(root, ts.Field("n", tree.FieldTypeString, "N"), "right", 1)

	if got == root {
		t.Fatalf("expected a new root")
	}
	if got.Children[0] != left {
		t.Fatalf("untouched sibling was copied")
	}
	if got.Children[1] == right {
		t.Fatalf("edited container was not copied")
	}
	if got.Children[1].Children[0] != right.Children[0] {
		t.Fatalf("untouched child of edited container was copied")
	}
	if diff := cmp.Diff("root(left(x),right(y))", ts.Shape(root)); diff != "" {
		t.Fatalf("previous root was mutated (-want +got):\n%s", diff)
	}
}

func TestMove(t *testing.T) {
	nested := func() *tree.Node {
		return ts.Root(
			ts.Field("a", tree.FieldTypeString, "A"),
			ts.Column("box", "Box",
				ts.Field("x", tree.FieldTypeString, "X"),
				ts.Row("inner", "Inner", ts.Field("y", tree.FieldTypeNumber, "Y")),
			),
		)
	}

	tests := []struct {
		name   string
		root   *tree.Node
		id     string
		parent string
		slot   int
		want   string
	}{
		{name: "forward by one", root: abc(), id: "a", parent: tree.RootID, slot: 2, want: "root(b,a,c)"},
		{name: "forward to end", root: abc(), id: "a", parent: tree.RootID, slot: 3, want: "root(b,c,a)"},
		{name: "backward to start", root: abc(), id: "c", parent: tree.RootID, slot: 0, want: "root(c,a,b)"},
		{name: "backward by one", root: abc(), id: "c", parent: tree.RootID, slot: 1, want: "root(a,c,b)"},
		{name: "forward overflow clamps", root: abc(), id: "b", parent: tree.RootID, slot: 99, want: "root(a,c,b)"},
		{name: "into nested container", root: nested(), id: "a", parent: "box", slot: 1, want: "root(box(x,a,inner(y)))"},
		{name: "into deeper container", root: nested(), id: "a", parent: "inner", slot: 0, want: "root(box(x,inner(a,y)))"},
		{name: "out to root", root: nested(), id: "y", parent: tree.RootID, slot: 0, want: "root(y,a,box(x,inner()))"},
		{name: "container with subtree", root: nested(), id: "inner", parent: tree.RootID, slot: 1, want: "root(a,inner(y),box(x))"},
		{name: "field destination appends to root", root: nested(), id: "x", parent: "a", slot: 0, want: "root(a,box(inner(y)),x)"},
		{name: "unknown destination appends to root", root: nested(), id: "y", parent: "ghost", slot: 0, want: "root(a,box(x,inner()),y)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ts.Shape(tt.root)
			got := tree.Move(tt.root, tt.id, tt.parent, tt.slot)
			if diff := cmp.Diff(tt.want, ts.Shape(got)); diff != "" {
				t.Fatalf("shape mismatch (-want +got):\n%s", diff)
			}
			if after := ts.Shape(tt.root); after != before {
				t.Fatalf("move mutated the previous tree: %s -> %s", before, after)
			}
			ts.RequireValidTree(t, got)
		})
	}
}

func TestMove_NoOps(t *testing.T) {
	root := ts.Root(
		ts.Field("a", tree.FieldTypeString, "A"),
		ts.Column("box", "Box", ts.Row("inner", "Inner", ts.Field("y", tree.FieldTypeNumber, "Y"))),
		ts.Field("c", tree.FieldTypeString, "C"),
	)

	tests := []struct {
		name   string
		id     string
		parent string
		slot   int
	}{
		{name: "same slot", id: "box", parent: tree.RootID, slot: 1},
		{name: "slot right after itself", id: "box", parent: tree.RootID, slot: 2},
		{name: "into itself", id: "box", parent: "box", slot: 0},
		{name: "into own descendant", id: "box", parent: "inner", slot: 0},
		{name: "missing node", id: "ghost", parent: tree.RootID, slot: 0},
		{name: "root", id: tree.RootID, parent: "box", slot: 0},
		{name: "only child stays", id: "y", parent: "inner", slot: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tree.Move(root, tt.id, tt.parent, tt.slot); got != root {
				t.Fatalf("expected identical root, got %s", ts.Shape(got))
			}
		})
	}
}

func TestRename(t *testing.T) {
	root := ts.Root(ts.Column("box", "Box", ts.Field("x", tree.FieldTypeString, "X")))

	renamed := tree.Rename(root, "x", "A")
	renamed = tree.Rename(renamed, "x", "B")

	if got := tree.Find(renamed, "x").Title; got != "B" {
		t.Fatalf("expected title B, got %q", got)
	}
	if got := tree.Find(root, "x").Title; got != "X" {
		t.Fatalf("previous tree was mutated: %q", got)
	}
	if tree.Rename(renamed, "x", "B") != renamed {
		t.Fatalf("unchanged title should keep the same root")
	}
	if tree.Rename(renamed, "ghost", "B") != renamed {
		t.Fatalf("missing id should keep the same root")
	}

	containerRenamed := tree.Rename(root, "box", "Group")
	if containerRenamed.Children[0].Children[0] != root.Children[0].Children[0] {
		t.Fatalf("children of renamed container should be shared")
	}
}

func TestDeleteSubtree(t *testing.T) {
	root := ts.Root(
		ts.Field("a", tree.FieldTypeString, "A"),
		ts.Column("box", "Box",
			ts.Field("x", tree.FieldTypeString, "X"),
			ts.Field("y", tree.FieldTypeNumber, "Y"),
		),
	)

	got, removed := tree.DeleteSubtree(root, "box")
	if diff := cmp.Diff("root(a)", ts.Shape(got)); diff != "" {
		t.Fatalf("shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"box", "x", "y"}, removed); diff != "" {
		t.Fatalf("removed ids mismatch (-want +got):\n%s", diff)
	}
	if got.Children[0] != root.Children[0] {
		t.Fatalf("untouched sibling was copied")
	}

	leaf, removed := tree.DeleteSubtree(root, "y")
	if diff := cmp.Diff("root(a,box(x))", ts.Shape(leaf)); diff != "" {
		t.Fatalf("leaf delete mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y"}, removed); diff != "" {
		t.Fatalf("leaf removed ids mismatch (-want +got):\n%s", diff)
	}

	for _, id := range []string{"ghost", tree.RootID, ""} {
		same, removed := tree.DeleteSubtree(root, id)
		if same != root || len(removed) != 0 {
			t.Fatalf("delete %q: expected no-op, got %s removed=%v", id, ts.Shape(same), removed)
		}
	}
}
