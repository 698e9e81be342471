// Package libdiff computes the structural difference tree of two
// parsed value trees.
package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/ydiff-project/ydiff/ir"
)

type DiffType int

const (
	Unchanged DiffType = iota
	Added
	Deleted
	Modified
)

func (t DiffType) String() string {
	switch t {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	case Modified:
		return "Modified"
	default:
		return fmt.Sprintf("DiffType(%d)", int(t))
	}
}

// DiffNode is one node of the output tree.
//
// Key is set for mapping members only; sequence elements and the
// synthetic root carry none.  Left and Right hold the compared raw
// values: both for Unchanged and Modified, only Right for Added, only
// Left for Deleted.  HasDiff holds the propagated invariant: with
// children it is the OR over them, for leaves it is Type != Unchanged.
type DiffNode struct {
	Key      *string
	Type     DiffType
	HasDiff  bool
	Children []*DiffNode
	Left     *ir.Node
	Right    *ir.Node
}

func (n *DiffNode) WithKey(key string) *DiffNode {
	n.Key = &key
	return n
}

func leaf(dt DiffType, left, right *ir.Node) *DiffNode {
	return &DiffNode{
		Type:    dt,
		HasDiff: dt != Unchanged,
		Left:    left,
		Right:   right,
	}
}

// parent classifies a container node from its children: Modified when
// anything beneath differs, Unchanged otherwise.
func parent(left, right *ir.Node, children []*DiffNode) *DiffNode {
	res := &DiffNode{
		Type:     Unchanged,
		Children: children,
		Left:     left,
		Right:    right,
	}
	for _, c := range children {
		if c.HasDiff {
			res.Type = Modified
			res.HasDiff = true
			break
		}
	}
	return res
}

// Walk visits n and its descendants pre-order; f returns whether to
// descend.
func (n *DiffNode) Walk(f func(n *DiffNode) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(f)
	}
}

type diffNodeJSON struct {
	Key      *string     `json:"key,omitempty"`
	DiffType DiffType    `json:"diff_type"`
	HasDiff  bool        `json:"has_diff"`
	Children []*DiffNode `json:"children"`
	Left     *ir.Node    `json:"left_value,omitempty"`
	Right    *ir.Node    `json:"right_value,omitempty"`
}

// MarshalJSON emits the wire form consumed by rendering hosts:
// {key?, diff_type, has_diff, children, left_value?, right_value?}.
func (n *DiffNode) MarshalJSON() ([]byte, error) {
	w := diffNodeJSON{
		Key:      n.Key,
		DiffType: n.Type,
		HasDiff:  n.HasDiff,
		Children: n.Children,
		Left:     n.Left,
		Right:    n.Right,
	}
	if w.Children == nil {
		w.Children = []*DiffNode{}
	}
	return json.Marshal(w)
}
