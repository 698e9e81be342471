// Package ydiff computes a semantic difference tree between two
// parsed YAML documents.  The one-shot entry points live here; the
// chunked, per-key session API is in session.go.
package ydiff

import (
	"github.com/ydiff-project/ydiff/ir"
	"github.com/ydiff-project/ydiff/libdiff"
)

// Diff compares two parsed documents and returns the comparison
// result: one DiffNode per top-level key when both roots are
// mappings, a singleton list otherwise.
//
// Every node of the result is classified as Unchanged, Added, Deleted
// or Modified, with HasDiff propagated upward.  Structures present on
// one side only are expanded into full recursive one-sided subtrees.
func Diff(from, to *ir.Node, opts ...libdiff.Opt) []*libdiff.DiffNode {
	d := libdiff.New(opts...)
	if from != nil && to != nil &&
		from.Type == ir.MappingType && to.Type == ir.MappingType {
		return libdiff.DiffMapping(from, to, d.Func()).Children
	}
	return []*libdiff.DiffNode{d.Diff(from, to)}
}
