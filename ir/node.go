// Package ir holds the parsed value tree consumed and produced by the
// diff engine.  Nodes are built by the parse package and are not
// mutated afterwards.
package ir

import (
	"sort"
	"strconv"
)

type Node struct {
	Type Type

	// Fields holds mapping keys in source order; Values holds the
	// member values of a mapping or sequence.  For mappings,
	// Fields[i] is the key of Values[i].
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string // raw number text as written
	Int64   *int64
	Float64 *float64

	// Line is the 1-based source line, 0 when synthetic.
	Line int
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Line = y.Line
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v, Number: strconv.FormatInt(v, 10)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f, Number: strconv.FormatFloat(f, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

type KeyVal struct {
	Key   string
	Value *Node
}

// FromKeyVals builds a mapping preserving the given key order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i, kv := range kvs {
		res.Fields[i] = FromString(kv.Key)
		res.Values[i] = kv.Value
	}
	return res
}

// FromMap builds a mapping with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Value: m[k]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: SequenceType, Values: vs}
}

// ToMap returns the key to value index of a mapping, nil otherwise.
func ToMap(node *Node) map[string]*Node {
	if node.Type != MappingType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func Get(y *Node, field string) *Node {
	if y.Type != MappingType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks the tree pre- and post-order.  f returns whether to
// descend; errors abort the walk.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if descend {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
