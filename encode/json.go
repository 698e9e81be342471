package encode

import (
	"encoding/json"

	"github.com/ydiff-project/ydiff/libdiff"
)

// JSON marshals a comparison result into the wire form
// {key?, diff_type, has_diff, children, left_value?, right_value?}
// in one batch.
func JSON(nodes []*libdiff.DiffNode) ([]byte, error) {
	if nodes == nil {
		nodes = []*libdiff.DiffNode{}
	}
	return json.Marshal(nodes)
}

// JSONIndent is JSON with indentation for human inspection.
func JSONIndent(nodes []*libdiff.DiffNode) ([]byte, error) {
	if nodes == nil {
		nodes = []*libdiff.DiffNode{}
	}
	return json.MarshalIndent(nodes, "", "  ")
}
