package jval

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Value is a JSON-like tree value: one of null, bool, number,
// string, array or object. The zero Value is null. Values are
// created by the constructor functions, are immutable after
// construction, and are read through dispatch (Match, Walk) rather
// than field accessors.
//
// Array and object payloads are held behind slices, so a Value is a
// fixed-size struct regardless of the depth of the tree it roots.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	elems  []Value
	fields []Field
}

// Field is one key/value pair of an object.
type Field struct {
	Key string
	Val Value
}

// F builds a Field.
func F(key string, val Value) Field {
	return Field{Key: key, Val: val}
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func Number(f float64) Value {
	return Value{kind: NumberKind, num: f}
}

func String(s string) Value {
	return Value{kind: StringKind, str: s}
}

// Array builds an array value. The elements are copied, so later
// mutation of the argument slice does not affect the value.
func Array(elems ...Value) Value {
	res := Value{kind: ArrayKind}
	if len(elems) == 0 {
		return res
	}
	res.elems = make([]Value, len(elems))
	copy(res.elems, elems)
	return res
}

// Object builds an object value with the fields in the given order.
// Keys must be unique; a duplicate key panics.
func Object(fields ...Field) Value {
	res := Value{kind: ObjectKind}
	if len(fields) == 0 {
		return res
	}
	seen := make(map[string]bool, len(fields))
	res.fields = make([]Field, len(fields))
	for i, f := range fields {
		if seen[f.Key] {
			panic(fmt.Sprintf("jval: duplicate object key %q", f.Key))
		}
		seen[f.Key] = true
		res.fields[i] = f
	}
	return res
}

// ObjectOf builds an object value from a map, with fields in sorted
// key order.
func ObjectOf(m map[string]Value) Value {
	res := Value{kind: ObjectKind}
	if len(m) == 0 {
		return res
	}
	res.fields = make([]Field, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.fields = append(res.fields, Field{Key: key, Val: m[key]})
	}
	return res
}

// Kind returns the discriminant. It is O(1) and never fails.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value compactly for diagnostics. It is not a
// serialization format.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case NullKind:
		sb.WriteString("null")
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.b))
	case NumberKind:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case StringKind:
		sb.WriteString(strconv.Quote(v.str))
	case ArrayKind:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.render(sb)
		}
		sb.WriteByte(']')
	case ObjectKind:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(f.Key))
			sb.WriteString(": ")
			f.Val.render(sb)
		}
		sb.WriteByte('}')
	default:
		panic("kind")
	}
}
