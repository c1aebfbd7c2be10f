package jval

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values. The result is 0
// if a == b, -1 if a < b, and +1 if a > b. Values of different kinds
// order by kind declaration order: null < bool < number < string <
// array < object. Compare(a, b) == 0 exactly when Equal(a, b).
//
// The order exists so values can key ordered containers; it carries
// no semantic claim (a bool is not "less" than a number in any
// meaningful sense).
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case NumberKind:
		return cmp.Compare(a.num, b.num)
	case StringKind:
		return strings.Compare(a.str, b.str)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	}
	return 0
}

func compareArrays(a, b Value) int {
	lenA := len(a.elems)
	lenB := len(b.elems)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares field sequences in sorted key order, so
// field insertion order cannot influence the result.
func compareObjects(a, b Value) int {
	fieldsA := sortedFields(a)
	fieldsB := sortedFields(b)
	minLen := min(len(fieldsA), len(fieldsB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(fieldsA[i].Key, fieldsB[i].Key); c != 0 {
			return c
		}
		if c := Compare(fieldsA[i].Val, fieldsB[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(fieldsA), len(fieldsB))
}

// sortedFields returns the object's fields in sorted key order. The
// value's own field slice is never reordered.
func sortedFields(v Value) []Field {
	if slices.IsSortedFunc(v.fields, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	}) {
		return v.fields
	}
	res := slices.Clone(v.fields)
	slices.SortFunc(res, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return res
}
