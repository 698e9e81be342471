// Package encode renders comparison results for hosts: a whole result
// subtree is converted in one batch per call rather than node by
// node, keeping the host boundary cheap.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ydiff-project/ydiff/ir"
	"github.com/ydiff-project/ydiff/libdiff"
)

// Encode writes a human-readable rendition of a comparison result.
// Each line starts with a marker column: space for unchanged, '+' for
// added, '-' for deleted, '~' for modified.
func Encode(nodes []*libdiff.DiffNode, w io.Writer, opts ...EncodeOption) error {
	cfg := &config{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	e := &encoder{w: w, cfg: cfg}
	for _, n := range nodes {
		if err := e.node(n, 0); err != nil {
			return err
		}
	}
	return nil
}

type encoder struct {
	w   io.Writer
	cfg *config
}

func marker(dt libdiff.DiffType) byte {
	switch dt {
	case libdiff.Added:
		return '+'
	case libdiff.Deleted:
		return '-'
	case libdiff.Modified:
		return '~'
	default:
		return ' '
	}
}

func (e *encoder) line(dt libdiff.DiffType, depth int, content string) error {
	s := string(marker(dt)) + " " + strings.Repeat(e.cfg.indent, depth) + content
	if e.cfg.colors != nil {
		s = e.cfg.colors.colorize(dt, "%s", s)
	}
	_, err := fmt.Fprintln(e.w, s)
	return err
}

func (e *encoder) node(n *libdiff.DiffNode, depth int) error {
	label := "-"
	if n.Key != nil {
		label = *n.Key + ":"
	}
	if len(n.Children) != 0 {
		if err := e.line(n.Type, depth, label); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := e.node(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return e.line(n.Type, depth, label+" "+e.leafValue(n))
}

func (e *encoder) leafValue(n *libdiff.DiffNode) string {
	switch n.Type {
	case libdiff.Added:
		return valueString(n.Right)
	case libdiff.Deleted:
		return valueString(n.Left)
	case libdiff.Modified:
		return valueString(n.Left) + " -> " + valueString(n.Right)
	default:
		return valueString(n.Left)
	}
}

func valueString(v *ir.Node) string {
	if v == nil {
		return "null"
	}
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NumberType:
		if v.Number != "" {
			return v.Number
		}
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
		}
		return "0"
	case ir.StringType:
		if v.String == "" || strings.ContainsAny(v.String, "\n:#") {
			return strconv.Quote(v.String)
		}
		return v.String
	default:
		// container payloads on leaves come from kind mismatches
		// and depth-cap collapses; render them compactly
		d, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<%s>", v.Type)
		}
		return string(d)
	}
}
