package libdiff

import (
	"testing"

	"github.com/ydiff-project/ydiff/ir"
	"github.com/ydiff-project/ydiff/parse"
)

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return node
}

func diffTypes(children []*DiffNode) []DiffType {
	res := make([]DiffType, len(children))
	for i, c := range children {
		res[i] = c.Type
	}
	return res
}

// checkInvariant verifies HasDiff propagation on every node: with
// children it must be the OR over them, for leaves Type != Unchanged.
func checkInvariant(t *testing.T, n *DiffNode) {
	t.Helper()
	n.Walk(func(x *DiffNode) bool {
		want := x.Type != Unchanged
		if len(x.Children) != 0 {
			want = false
			for _, c := range x.Children {
				if c.HasDiff {
					want = true
					break
				}
			}
		}
		if x.HasDiff != want {
			t.Errorf("HasDiff invariant broken at %v: got %v, want %v", x.Key, x.HasDiff, want)
		}
		return true
	})
}
