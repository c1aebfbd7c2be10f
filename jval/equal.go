package jval

import "cmp"

// Equal reports whether a and b hold the same variant with
// structurally equal payloads. Different kinds are never equal.
// Arrays are equal when they have the same length and equal elements
// in order. Objects are equal when they have the same key set and
// equal values per key; field order does not matter.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case NumberKind:
		// cmp.Compare rather than == keeps NaN payloads equal to
		// themselves, matching Compare.
		return cmp.Compare(a.num, b.num) == 0
	case StringKind:
		return a.str == b.str
	case ArrayKind:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(a.fields) != len(b.fields) {
			return false
		}
		byKey := make(map[string]Value, len(b.fields))
		for _, f := range b.fields {
			byKey[f.Key] = f.Val
		}
		for _, f := range a.fields {
			bv, ok := byKey[f.Key]
			if !ok || !Equal(f.Val, bv) {
				return false
			}
		}
		return true
	}
	return false
}
