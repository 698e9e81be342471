package ir

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON renders the node as plain JSON, preserving mapping key
// order.  Non-finite numbers, which JSON cannot carry, fall back to
// their raw source text as a string.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(y, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(y *Node, buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		return writeJSONNumber(y, buf)
	case StringType:
		return writeJSONString(y.String, buf)
	case SequenceType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(v, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(f.String, buf); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(y.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONNumber(y *Node, buf *bytes.Buffer) error {
	switch {
	case y.Int64 != nil:
		buf.WriteString(strconv.FormatInt(*y.Int64, 10))
	case y.Float64 != nil:
		f := *y.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return writeJSONString(y.Number, buf)
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		return writeJSONString(y.Number, buf)
	}
	return nil
}

func writeJSONString(s string, buf *bytes.Buffer) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
