package libdiff

import "github.com/ydiff-project/ydiff/ir"

// DiffScalar compares two scalar values by strict type-and-value
// equality: no numeric coercion between Number and String and no null
// coercion.  Equal values yield an Unchanged leaf carrying the shared
// value on both sides; anything else is a Modified leaf with both raw
// values.
func DiffScalar(from, to *ir.Node) *DiffNode {
	if ir.Equal(from, to) {
		return leaf(Unchanged, from, to)
	}
	return leaf(Modified, from, to)
}
