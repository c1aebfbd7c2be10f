package jval

import (
	"fmt"
	"slices"
)

// Cases holds one typed handler per kind, plus an optional Default
// run when the active kind's handler is nil. Handlers receive the
// payload of the active variant; array and object handlers receive
// copies, so the value stays immutable.
type Cases[R any] struct {
	Null    func() R
	Bool    func(bool) R
	Number  func(float64) R
	String  func(string) R
	Array   func([]Value) R
	Object  func([]Field) R
	Default func(Value) R
}

// Match dispatches v to the handler for its kind. Exactly one
// handler runs. If the active kind has no handler and there is no
// Default, Match panics: dispatch never falls through silently. Use
// Cases.Missing to check coverage up front.
func Match[R any](v Value, cs Cases[R]) R {
	switch v.kind {
	case NullKind:
		if cs.Null != nil {
			return cs.Null()
		}
	case BoolKind:
		if cs.Bool != nil {
			return cs.Bool(v.b)
		}
	case NumberKind:
		if cs.Number != nil {
			return cs.Number(v.num)
		}
	case StringKind:
		if cs.String != nil {
			return cs.String(v.str)
		}
	case ArrayKind:
		if cs.Array != nil {
			return cs.Array(slices.Clone(v.elems))
		}
	case ObjectKind:
		if cs.Object != nil {
			return cs.Object(slices.Clone(v.fields))
		}
	}
	if cs.Default != nil {
		return cs.Default(v)
	}
	panic(fmt.Sprintf("jval: no case for %s value", v.kind))
}

// Missing returns the kinds with neither their own handler nor a
// Default to fall back on, in declaration order. An empty result
// means Match cannot panic.
func (cs Cases[R]) Missing() []Kind {
	if cs.Default != nil {
		return nil
	}
	var covered []Kind
	if cs.Null != nil {
		covered = append(covered, NullKind)
	}
	if cs.Bool != nil {
		covered = append(covered, BoolKind)
	}
	if cs.Number != nil {
		covered = append(covered, NumberKind)
	}
	if cs.String != nil {
		covered = append(covered, StringKind)
	}
	if cs.Array != nil {
		covered = append(covered, ArrayKind)
	}
	if cs.Object != nil {
		covered = append(covered, ObjectKind)
	}
	return Kinds.Missing(covered...)
}
