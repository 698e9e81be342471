package ydiff

import (
	"testing"

	"github.com/ydiff-project/ydiff/ir"
	"github.com/ydiff-project/ydiff/libdiff"
	"github.com/ydiff-project/ydiff/parse"
)

type diffTest struct {
	name  string
	a     string
	b     string
	types map[string]libdiff.DiffType
}

var diffTests = []diffTest{
	{
		name: "modified and added members",
		a: `
a: 1
b: 2`,
		b: `
a: 1
b: 3
c: 4`,
		types: map[string]libdiff.DiffType{
			"a": libdiff.Unchanged,
			"b": libdiff.Modified,
			"c": libdiff.Added,
		},
	},
	{
		name: "deleted member",
		a: `
f1: a
f2: b`,
		b: `
f1: a`,
		types: map[string]libdiff.DiffType{
			"f1": libdiff.Unchanged,
			"f2": libdiff.Deleted,
		},
	},
	{
		name: "nested change marks parent modified",
		a: `
svc:
  port: 80`,
		b: `
svc:
  port: 8080`,
		types: map[string]libdiff.DiffType{
			"svc": libdiff.Modified,
		},
	},
	{
		name: "kind change on member",
		a: `
cfg:
  x: 1`,
		b: `
cfg: [1]`,
		types: map[string]libdiff.DiffType{
			"cfg": libdiff.Modified,
		},
	},
}

func TestDiff(t *testing.T) {
	for _, tt := range diffTests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			nodes := Diff(a, b)
			got := map[string]libdiff.DiffType{}
			for _, n := range nodes {
				if n.Key == nil {
					t.Fatal("mapping-root result node without key")
				}
				got[*n.Key] = n.Type
			}
			for k, want := range tt.types {
				if got[k] != want {
					t.Errorf("%s: got %s, want %s", k, got[k], want)
				}
			}
			if len(got) != len(tt.types) {
				t.Errorf("got %d nodes, want %d", len(got), len(tt.types))
			}
		})
	}
}

func TestDiffNonMappingRootsSingleton(t *testing.T) {
	nodes := Diff(mustParse(t, `[1, 2]`), mustParse(t, `[2, 1]`))
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if !nodes[0].HasDiff {
		t.Error("reordered sequence must differ")
	}
}

func TestDiffOptionsPropagate(t *testing.T) {
	a := mustParse(t, "k: [1, 2, 3]")
	b := mustParse(t, "k: [1, 3, 4]")
	nodes := Diff(a, b, libdiff.SequenceFallback(2))
	k := nodes[0]
	// positional fallback: second and third elements compare in place
	want := []libdiff.DiffType{libdiff.Unchanged, libdiff.Modified, libdiff.Modified}
	if len(k.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(k.Children), len(want))
	}
	for i, w := range want {
		if k.Children[i].Type != w {
			t.Errorf("element %d: got %s, want %s", i, k.Children[i].Type, w)
		}
	}
}

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return node
}
