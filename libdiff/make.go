package libdiff

import "github.com/ydiff-project/ydiff/ir"

// MakeAdded builds a full recursive subtree from a value present only
// on the right side.  Every node is tagged Added so a host can render
// the inserted structure expandably instead of as one opaque leaf.
func MakeAdded(to *ir.Node) *DiffNode {
	return makeOneSided(to, Added)
}

// MakeDeleted is the left-side counterpart of MakeAdded.
func MakeDeleted(from *ir.Node) *DiffNode {
	return makeOneSided(from, Deleted)
}

func makeOneSided(node *ir.Node, dt DiffType) *DiffNode {
	res := &DiffNode{Type: dt, HasDiff: true}
	if dt == Added {
		res.Right = node
	} else {
		res.Left = node
	}
	switch node.Type {
	case ir.MappingType:
		res.Children = make([]*DiffNode, 0, len(node.Fields))
		for i := range node.Fields {
			child := makeOneSided(node.Values[i], dt).WithKey(node.Fields[i].String)
			res.Children = append(res.Children, child)
		}
	case ir.SequenceType:
		res.Children = make([]*DiffNode, 0, len(node.Values))
		for _, v := range node.Values {
			res.Children = append(res.Children, makeOneSided(v, dt))
		}
	}
	return res
}
