package libdiff

import "github.com/ydiff-project/ydiff/ir"

// DiffFunc recurses into a matched pair of values.  It lets the
// tree-level differ thread depth accounting through the per-kind
// differs.
type DiffFunc func(from, to *ir.Node) *DiffNode

// KeyUnion computes the deterministic ordering over the union of both
// mappings' keys: left keys in their original order (shared and
// deleted), then keys only the right side has, in right order.  The
// chunked session API hands this list to the host and the per-key
// results concatenate in exactly this order.
func KeyUnion(from, to *ir.Node) []string {
	res := make([]string, 0, len(from.Fields)+len(to.Fields))
	seen := make(map[string]bool, len(from.Fields))
	for _, f := range from.Fields {
		res = append(res, f.String)
		seen[f.String] = true
	}
	for _, f := range to.Fields {
		if !seen[f.String] {
			res = append(res, f.String)
		}
	}
	return res
}

// DiffMapping aligns two mappings by key identity.  Members present
// on both sides recurse through df; one-sided members become full
// recursive Deleted or Added subtrees.  Unchanged members stay in the
// result so the host can render the whole document.
func DiffMapping(from, to *ir.Node, df DiffFunc) *DiffNode {
	toMap := ir.ToMap(to)
	fromMap := ir.ToMap(from)
	children := make([]*DiffNode, 0, len(from.Fields)+len(to.Fields))
	for i := range from.Fields {
		key := from.Fields[i].String
		if toVal, ok := toMap[key]; ok {
			children = append(children, df(from.Values[i], toVal).WithKey(key))
			continue
		}
		children = append(children, MakeDeleted(from.Values[i]).WithKey(key))
	}
	for i := range to.Fields {
		key := to.Fields[i].String
		if _, ok := fromMap[key]; ok {
			continue
		}
		children = append(children, MakeAdded(to.Values[i]).WithKey(key))
	}
	return parent(from, to, children)
}

// DiffMappingKey computes the subtree of a single key of the union,
// exactly as DiffMapping would have placed it.  It returns nil when
// neither side has the key.
func DiffMappingKey(from, to *ir.Node, key string, df DiffFunc) *DiffNode {
	fromVal := ir.Get(from, key)
	toVal := ir.Get(to, key)
	switch {
	case fromVal == nil && toVal == nil:
		return nil
	case fromVal == nil:
		return MakeAdded(toVal).WithKey(key)
	case toVal == nil:
		return MakeDeleted(fromVal).WithKey(key)
	default:
		return df(fromVal, toVal).WithKey(key)
	}
}
