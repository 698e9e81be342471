package libdiff

import (
	"hash/fnv"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ydiff-project/ydiff/ir"
)

// DiffSequence aligns two sequences.
//
// The primary algorithm computes a minimal edit script: each element
// is interned to a rune keyed by a structural summary and the rune
// sequences are aligned with Myers (O(N*D)).  Elements matched by the
// script are recursively diffed, so internal differences of matched
// containers still surface as Modified children.  Unmatched elements
// become Deleted or Added subtrees at their edit-script position.
//
// Above the limit, or when the summary space is exhausted, the edit
// script is replaced by index-by-index positional comparison, which is
// O(N) but cannot detect mid-sequence insertions or removals.
func DiffSequence(from, to *ir.Node, limit int, df DiffFunc) *DiffNode {
	if len(from.Values) > limit || len(to.Values) > limit {
		return diffSequenceByIndex(from, to, df)
	}
	in := newInterner()
	fromRunes, ok := in.internValues(from)
	if !ok {
		return diffSequenceByIndex(from, to, df)
	}
	toRunes, ok := in.internValues(to)
	if !ok {
		return diffSequenceByIndex(from, to, df)
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	children := make([]*DiffNode, 0, len(from.Values)+len(to.Values))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				children = append(children, MakeDeleted(from.Values[fi]))
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				children = append(children, MakeAdded(to.Values[ti]))
				ti++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				children = append(children, df(from.Values[fi], to.Values[ti]))
				fi++
				ti++
			}
		}
	}
	return parent(from, to, children)
}

func diffSequenceByIndex(from, to *ir.Node, df DiffFunc) *DiffNode {
	n := max(len(from.Values), len(to.Values))
	children := make([]*DiffNode, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(to.Values):
			children = append(children, MakeDeleted(from.Values[i]))
		case i >= len(from.Values):
			children = append(children, MakeAdded(to.Values[i]))
		default:
			children = append(children, df(from.Values[i], to.Values[i]))
		}
	}
	return parent(from, to, children)
}

// interner assigns one rune per distinct element summary.  Runes are
// handed out sequentially and must stay below the surrogate range,
// which diffmatchpatch cannot carry; overflowing reports failure and
// the caller falls back to positional comparison.
type interner struct {
	m map[string]rune
}

func newInterner() *interner {
	return &interner{m: map[string]rune{}}
}

const maxInternRune = 0xD7FF

func (in *interner) internValues(node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := in.m[sum]
		if !ok {
			r = rune(len(in.m))
			if r > maxInternRune {
				return nil, false
			}
			in.m[sum] = r
		}
		rs[i] = r
	}
	return rs, true
}

// summaryStr reduces an element to a matching key: scalars by type
// and value, containers by kind only so that the recursive diff of a
// matched pair decides what changed inside.  Long strings match by
// hash to keep the intern table small.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.MappingType, ir.SequenceType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return "Bool-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if len(node.String) > 64 {
			return "String#" + hashStr(node.String)
		}
		return "String-" + node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return "Number-i-" + strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return "Number-f-" + strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		}
		return "Number-r-" + node.Number
	default:
		panic("type")
	}
}

func hashStr(s string) string {
	h := fnv.New64()
	h.Write([]byte(s))
	return strconv.FormatUint(h.Sum64(), 16)
}
