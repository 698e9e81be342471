package libdiff

import "github.com/ydiff-project/ydiff/ir"

// ReconstructLeft rebuilds the left-side value a diff subtree was
// computed from, using children where present and the Deleted/Left
// payloads at the leaves.  It returns nil for subtrees that exist only
// on the right.
func ReconstructLeft(n *DiffNode) *ir.Node {
	return reconstruct(n, true)
}

// ReconstructRight is the right-side counterpart of ReconstructLeft.
func ReconstructRight(n *DiffNode) *ir.Node {
	return reconstruct(n, false)
}

// LeftDocument rebuilds a whole document from a comparison result
// list (one node per top-level key for mapping roots, a singleton
// otherwise).
func LeftDocument(nodes []*DiffNode) *ir.Node {
	return document(nodes, true)
}

// RightDocument is the right-side counterpart of LeftDocument.
func RightDocument(nodes []*DiffNode) *ir.Node {
	return document(nodes, false)
}

func document(nodes []*DiffNode, left bool) *ir.Node {
	if len(nodes) == 1 && nodes[0].Key == nil {
		return reconstruct(nodes[0], left)
	}
	res := &ir.Node{Type: ir.MappingType}
	for _, n := range nodes {
		val := reconstruct(n, left)
		if val == nil || n.Key == nil {
			continue
		}
		res.Fields = append(res.Fields, ir.FromString(*n.Key))
		res.Values = append(res.Values, val)
	}
	return res
}

func reconstruct(n *DiffNode, left bool) *ir.Node {
	if left && n.Type == Added {
		return nil
	}
	if !left && n.Type == Deleted {
		return nil
	}
	payload := n.Right
	if left {
		payload = n.Left
	}
	if len(n.Children) == 0 || payload == nil {
		return payload
	}
	switch payload.Type {
	case ir.MappingType:
		res := &ir.Node{Type: ir.MappingType}
		for _, c := range n.Children {
			val := reconstruct(c, left)
			if val == nil || c.Key == nil {
				continue
			}
			res.Fields = append(res.Fields, ir.FromString(*c.Key))
			res.Values = append(res.Values, val)
		}
		return res
	case ir.SequenceType:
		res := &ir.Node{Type: ir.SequenceType}
		for _, c := range n.Children {
			if val := reconstruct(c, left); val != nil {
				res.Values = append(res.Values, val)
			}
		}
		return res
	default:
		return payload
	}
}
