package ir

import "math"

// Equal reports deep structural equality.  There is no coercion
// across kinds: a Number never equals a String, Null never equals an
// empty value, and integer and float numbers are distinct even when
// numerically close.  Mapping equality is order-sensitive, matching
// the order-preserving parse.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numberEqual(a, b)
	case MappingType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case SequenceType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

func numberEqual(a, b *Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Float64 != nil && b.Float64 != nil:
		if math.IsNaN(*a.Float64) && math.IsNaN(*b.Float64) {
			return true
		}
		return *a.Float64 == *b.Float64
	case a.Int64 == nil && a.Float64 == nil && b.Int64 == nil && b.Float64 == nil:
		return a.Number == b.Number
	default:
		return false
	}
}
