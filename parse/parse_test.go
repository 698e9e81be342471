package parse

import (
	"errors"
	"testing"

	"github.com/ydiff-project/ydiff/ir"
)

func TestParseKeepsKeyOrder(t *testing.T) {
	node, err := Parse([]byte(`
z: 1
a: 2
m: 3`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.MappingType {
		t.Fatalf("got %s, want Mapping", node.Type)
	}
	want := []string{"z", "a", "m"}
	for i, w := range want {
		if node.Fields[i].String != w {
			t.Errorf("field %d: got %q, want %q", i, node.Fields[i].String, w)
		}
	}
}

func TestParseKinds(t *testing.T) {
	node, err := Parse([]byte(`
null_: ~
bool_: true
int_: -3
float_: 1.5
str_: hello
seq:
  - 1
  - two
nested:
  inner: 1`))
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		key  string
		want ir.Type
	}{
		{"null_", ir.NullType},
		{"bool_", ir.BoolType},
		{"int_", ir.NumberType},
		{"float_", ir.NumberType},
		{"str_", ir.StringType},
		{"seq", ir.SequenceType},
		{"nested", ir.MappingType},
	}
	for _, c := range checks {
		v := ir.Get(node, c.key)
		if v == nil {
			t.Fatalf("missing key %q", c.key)
		}
		if v.Type != c.want {
			t.Errorf("%s: got %s, want %s", c.key, v.Type, c.want)
		}
	}
	i := ir.Get(node, "int_")
	if i.Int64 == nil || *i.Int64 != -3 {
		t.Errorf("int_: got %v", i.Int64)
	}
	f := ir.Get(node, "float_")
	if f.Float64 == nil || *f.Float64 != 1.5 {
		t.Errorf("float_: got %v", f.Float64)
	}
}

func TestParseSinglePairMapping(t *testing.T) {
	node, err := Parse([]byte(`only: 1`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.MappingType || len(node.Fields) != 1 {
		t.Fatalf("got %s with %d fields", node.Type, len(node.Fields))
	}
}

func TestParseScalarRoot(t *testing.T) {
	node, err := Parse([]byte(`just a string`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.StringType || node.String != "just a string" {
		t.Fatalf("got %s %q", node.Type, node.String)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	node, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Fatalf("got %s, want Null", node.Type)
	}
}

func TestParseLines(t *testing.T) {
	node, err := Parse([]byte("a: 1\nb:\n  c: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := ir.Get(ir.Get(node, "b"), "c")
	if c.Line != 3 {
		t.Errorf("c line: got %d, want 3", c.Line)
	}
}

func TestParseAnchorAlias(t *testing.T) {
	node, err := Parse([]byte(`
base: &b
  x: 1
other: *b`))
	if err != nil {
		t.Fatal(err)
	}
	other := ir.Get(node, "other")
	if other == nil || other.Type != ir.MappingType {
		t.Fatalf("alias not resolved: %v", other)
	}
	if !ir.Equal(ir.Get(node, "base"), other) {
		t.Error("alias differs from anchor")
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	node, err := Parse([]byte("a: 1\nb: 2\na: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(node.Fields))
	}
	a := ir.Get(node, "a")
	if a.Int64 == nil || *a.Int64 != 3 {
		t.Errorf("a: got %v, want 3", a.Int64)
	}
	if node.Fields[0].String != "a" {
		t.Errorf("first key: got %q, want a", node.Fields[0].String)
	}
}

func TestParseSideError(t *testing.T) {
	_, perr := ParseSide(Left, []byte("a: ["))
	if perr == nil {
		t.Fatal("expected error")
	}
	if perr.Side != Left {
		t.Errorf("side: got %s, want LEFT", perr.Side)
	}
	if perr.Line == 0 {
		t.Errorf("expected a line number, got 0: %v", perr)
	}
	if !errors.Is(perr, ErrParse) {
		t.Error("expected ErrParse in chain")
	}
}

func TestParseBothIndependent(t *testing.T) {
	// invalid left, valid right: only a LEFT error
	_, _, errs := ParseBoth([]byte("a: ["), []byte("a: 1"))
	if len(errs) != 1 || errs[0].Side != Left {
		t.Fatalf("got %v, want single LEFT error", errs)
	}

	// both invalid: both sides reported
	_, _, errs = ParseBoth([]byte("a: ["), []byte("b: {"))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Side != Left || errs[1].Side != Right {
		t.Errorf("sides: got %s, %s", errs[0].Side, errs[1].Side)
	}

	// both valid: no errors, both trees returned
	l, r, errs := ParseBoth([]byte("a: 1"), []byte("a: 2"))
	if errs != nil {
		t.Fatal(errs)
	}
	if l == nil || r == nil {
		t.Fatal("missing trees")
	}
}
