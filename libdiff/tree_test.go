package libdiff

import (
	"strings"
	"testing"

	"github.com/ydiff-project/ydiff/ir"
)

func TestDiffSelfIsAllUnchanged(t *testing.T) {
	doc := mustParse(t, `
name: svc
replicas: 3
ports:
  - 80
  - 443
env:
  A: x
  B: null
nested:
  - deep:
      more: [1, 2, {k: v}]`)
	res := New().Diff(doc, doc)
	if res.HasDiff {
		t.Fatal("self diff reported differences")
	}
	res.Walk(func(n *DiffNode) bool {
		if n.Type != Unchanged || n.HasDiff {
			t.Errorf("self diff produced %s (hasDiff=%v)", n.Type, n.HasDiff)
		}
		return true
	})
	checkInvariant(t, res)
}

func TestKindMismatchIsTerminalModified(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"mapping-sequence", `{a: 1}`, `[1]`},
		{"mapping-scalar", `{a: 1}`, `5`},
		{"sequence-scalar", `[1]`, `x`},
		{"bool-string", `true`, `"true"`},
		{"null-number", `null`, `0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Diff(mustParse(t, tt.from), mustParse(t, tt.to))
			if res.Type != Modified {
				t.Errorf("got %s, want Modified", res.Type)
			}
			if len(res.Children) != 0 {
				t.Errorf("kind mismatch must not recurse, got %d children", len(res.Children))
			}
			if res.Left == nil || res.Right == nil {
				t.Error("kind mismatch must keep both raw values")
			}
		})
	}
}

func TestScalarStrictEquality(t *testing.T) {
	one := New().Diff(mustParse(t, `1`), mustParse(t, `"1"`))
	if one.Type != Modified {
		t.Error("number vs string must be Modified")
	}
	fl := New().Diff(mustParse(t, `1`), mustParse(t, `1.0`))
	if fl.Type != Modified {
		t.Error("int vs float must be Modified")
	}
	same := New().Diff(mustParse(t, `hello`), mustParse(t, `hello`))
	if same.Type != Unchanged || same.Left == nil || same.Right == nil {
		t.Error("equal scalars must be Unchanged with both payloads")
	}
}

func nestedDoc(depth int, leaf string) string {
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString(strings.Repeat("  ", i))
		b.WriteString("k:\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("leaf: ")
	b.WriteString(leaf)
	b.WriteString("\n")
	return b.String()
}

func TestDepthCapCollapses(t *testing.T) {
	// 200 levels deep with the difference only below the cap
	from := mustParse(t, nestedDoc(200, "1"))
	to := mustParse(t, nestedDoc(200, "2"))
	res := New().Diff(from, to)
	if !res.HasDiff {
		t.Fatal("deep difference not detected")
	}
	depth := 0
	n := res
	for len(n.Children) != 0 {
		if len(n.Children) != 1 {
			t.Fatalf("unexpected fanout at depth %d", depth)
		}
		n = n.Children[0]
		depth++
	}
	if depth != DefaultMaxDepth {
		t.Errorf("collapsed at depth %d, want %d", depth, DefaultMaxDepth)
	}
	if n.Type != Modified {
		t.Errorf("collapsed leaf: got %s, want Modified", n.Type)
	}
	if n.Left == nil || n.Right == nil {
		t.Error("collapsed leaf must keep both raw subtrees")
	}
	if n.Left.Type != ir.MappingType {
		t.Errorf("collapsed payload: got %s, want Mapping", n.Left.Type)
	}
	checkInvariant(t, res)
}

func TestDepthCapEqualSubtreesUnchanged(t *testing.T) {
	doc := nestedDoc(200, "1")
	res := New().Diff(mustParse(t, doc), mustParse(t, doc))
	if res.HasDiff {
		t.Fatal("equal deep documents reported a difference")
	}
}

func TestMaxDepthOption(t *testing.T) {
	from := mustParse(t, nestedDoc(10, "1"))
	to := mustParse(t, nestedDoc(10, "2"))
	res := New(MaxDepth(3)).Diff(from, to)
	depth := 0
	n := res
	for len(n.Children) != 0 {
		n = n.Children[0]
		depth++
	}
	if depth != 3 {
		t.Errorf("collapsed at depth %d, want 3", depth)
	}
}

func TestOneSidedRoot(t *testing.T) {
	doc := mustParse(t, `{a: [1, 2]}`)
	added := New().Diff(nil, doc)
	if added.Type != Added || len(added.Children) != 1 {
		t.Fatalf("got %s with %d children", added.Type, len(added.Children))
	}
	deleted := New().Diff(doc, nil)
	if deleted.Type != Deleted {
		t.Fatalf("got %s, want Deleted", deleted.Type)
	}
	if New().Diff(nil, nil) != nil {
		t.Error("nil vs nil must be nil")
	}
}

func TestStats(t *testing.T) {
	from := mustParse(t, "a: 1\nb: 2")
	to := mustParse(t, "a: 1\nb: 3\nc: 4")
	nodes := DiffMapping(from, to, New().Func()).Children
	s := NodeStats(nodes)
	if s.Additions != 1 || s.Deletions != 0 || s.Modified != 1 {
		t.Errorf("got %+v, want additions=1 deletions=0 modified=1", s)
	}
	if !s.Any() {
		t.Error("Any should be true")
	}
	self := DiffMapping(from, from, New().Func()).Children
	if NodeStats(self).Any() {
		t.Error("self diff should have empty stats")
	}
}
