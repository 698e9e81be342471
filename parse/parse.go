// Package parse turns YAML text into ir value trees.  It preserves
// mapping key order and tags every node with its source line, which
// the rest of the engine treats as opaque input.
package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/ydiff-project/ydiff/ir"
)

// Parse parses a single YAML document.
func Parse(data []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Docs) == 0 {
		return ir.Null(), nil
	}
	if len(f.Docs) > 1 {
		tok := f.Docs[1].GetToken()
		line := 0
		if tok != nil && tok.Position != nil {
			line = tok.Position.Line
		}
		return nil, fmt.Errorf("%w: [%d:1] multiple documents are not supported", ErrParse, line)
	}
	body := f.Docs[0].Body
	if body == nil {
		return ir.Null(), nil
	}
	c := &converter{anchors: map[string]*ir.Node{}}
	return c.node(body)
}

// ParseSide parses one input, tagging any failure with its side.
func ParseSide(side Side, data []byte) (*ir.Node, *Error) {
	node, err := Parse(data)
	if err != nil {
		return nil, sideError(side, err)
	}
	return node, nil
}

// ParseBoth parses the two inputs independently so that a failure on
// either side is detected regardless of the other's outcome.
func ParseBoth(left, right []byte) (*ir.Node, *ir.Node, Errors) {
	var errs Errors
	l, lerr := ParseSide(Left, left)
	if lerr != nil {
		errs = append(errs, lerr)
	}
	r, rerr := ParseSide(Right, right)
	if rerr != nil {
		errs = append(errs, rerr)
	}
	if len(errs) != 0 {
		return nil, nil, errs
	}
	return l, r, nil
}

type converter struct {
	anchors map[string]*ir.Node
}

func (c *converter) node(n ast.Node) (*ir.Node, error) {
	line := nodeLine(n)
	switch t := n.(type) {
	case *ast.NullNode:
		return &ir.Node{Type: ir.NullType, Line: line}, nil
	case *ast.BoolNode:
		return &ir.Node{Type: ir.BoolType, Bool: t.Value, Line: line}, nil
	case *ast.IntegerNode:
		return integerNode(t, line), nil
	case *ast.FloatNode:
		f := t.Value
		return &ir.Node{Type: ir.NumberType, Float64: &f, Number: rawText(n), Line: line}, nil
	case *ast.InfinityNode:
		f := t.Value
		return &ir.Node{Type: ir.NumberType, Float64: &f, Number: rawText(n), Line: line}, nil
	case *ast.NanNode:
		f := math.NaN()
		return &ir.Node{Type: ir.NumberType, Float64: &f, Number: rawText(n), Line: line}, nil
	case *ast.StringNode:
		return &ir.Node{Type: ir.StringType, String: t.Value, Line: line}, nil
	case *ast.LiteralNode:
		return &ir.Node{Type: ir.StringType, String: t.Value.Value, Line: line}, nil
	case *ast.MappingNode:
		return c.mapping(t.Values, line)
	case *ast.MappingValueNode:
		// a single-pair mapping parses as a bare MappingValueNode
		return c.mapping([]*ast.MappingValueNode{t}, line)
	case *ast.SequenceNode:
		res := &ir.Node{Type: ir.SequenceType, Line: line}
		res.Values = make([]*ir.Node, 0, len(t.Values))
		for _, v := range t.Values {
			cv, err := c.node(v)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, cv)
		}
		return res, nil
	case *ast.TagNode:
		return c.node(t.Value)
	case *ast.AnchorNode:
		val, err := c.node(t.Value)
		if err != nil {
			return nil, err
		}
		c.anchors[anchorName(t.Name)] = val
		return val, nil
	case *ast.AliasNode:
		name := anchorName(t.Value)
		val, ok := c.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: [%d:1] unknown anchor %q", ErrParse, line, name)
		}
		return val.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: [%d:1] unsupported node %T", ErrParse, line, n)
	}
}

func (c *converter) mapping(kvs []*ast.MappingValueNode, line int) (*ir.Node, error) {
	res := &ir.Node{Type: ir.MappingType, Line: line}
	index := map[string]int{}
	var merges []*ir.Node
	for _, kv := range kvs {
		if _, isMerge := kv.Key.(*ast.MergeKeyNode); isMerge {
			mv, err := c.node(kv.Value)
			if err != nil {
				return nil, err
			}
			if mv.Type != ir.MappingType {
				return nil, fmt.Errorf("%w: [%d:1] merge value is not a mapping", ErrParse, nodeLine(kv.Value))
			}
			merges = append(merges, mv)
			continue
		}
		key, err := c.key(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := c.node(kv.Value)
		if err != nil {
			return nil, err
		}
		if i, ok := index[key.String]; ok {
			// last occurrence wins, position of the first is kept
			res.Values[i] = val
			continue
		}
		index[key.String] = len(res.Fields)
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)
	}
	// merged fields never override explicit ones
	for _, mv := range merges {
		for i := range mv.Fields {
			if _, ok := index[mv.Fields[i].String]; ok {
				continue
			}
			index[mv.Fields[i].String] = len(res.Fields)
			res.Fields = append(res.Fields, mv.Fields[i])
			res.Values = append(res.Values, mv.Values[i])
		}
	}
	return res, nil
}

func (c *converter) key(n ast.Node) (*ir.Node, error) {
	line := nodeLine(n)
	switch t := n.(type) {
	case *ast.StringNode:
		return &ir.Node{Type: ir.StringType, String: t.Value, Line: line}, nil
	default:
		// non-string keys keep their textual form
		return &ir.Node{Type: ir.StringType, String: n.String(), Line: line}, nil
	}
}

func integerNode(t *ast.IntegerNode, line int) *ir.Node {
	res := &ir.Node{Type: ir.NumberType, Number: rawText(t), Line: line}
	switch v := t.Value.(type) {
	case int64:
		res.Int64 = &v
	case uint64:
		if v <= math.MaxInt64 {
			i := int64(v)
			res.Int64 = &i
		} else {
			f := float64(v)
			res.Float64 = &f
		}
	case int:
		i := int64(v)
		res.Int64 = &i
	}
	return res
}

func nodeLine(n ast.Node) int {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0
	}
	return tok.Position.Line
}

func rawText(n ast.Node) string {
	tok := n.GetToken()
	if tok == nil {
		return ""
	}
	return tok.Value
}

func anchorName(n ast.Node) string {
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	return n.String()
}
