// Package jval provides a JSON-like heterogeneous tree value as a
// closed tagged union.
//
// # Overview
//
// A Value is one of six kinds: null, bool, number, string, array or
// object. Numbers are float64. Arrays are ordered sequences of
// values; objects are sequences of unique string-keyed fields whose
// order is preserved for traversal but irrelevant for equality.
//
// Values follow the union discipline of package variant: created
// only through constructors, immutable after construction, read only
// through dispatch. The zero Value is null.
//
// # Creating Values
//
//	v := jval.Object(
//	    jval.F("name", jval.String("ada")),
//	    jval.F("tags", jval.Array(jval.String("x"), jval.String("y"))),
//	    jval.F("age", jval.Number(36)),
//	)
//
// ObjectOf builds an object from a map with fields in sorted key
// order. Object panics on a duplicate key.
//
// # Reading Values
//
// Kind is the only direct query. Payloads are reached by dispatch:
//
//	n := jval.Match(v, jval.Cases[int]{
//	    Array:   func(es []jval.Value) int { return len(es) },
//	    Object:  func(fs []jval.Field) int { return len(fs) },
//	    Default: func(jval.Value) int { return 0 },
//	})
//
// A Cases value with a nil handler for the active kind and no
// Default panics at dispatch: coverage mistakes surface at the
// dispatch site, never as silent fallthrough. Cases.Missing reports
// uncovered kinds without dispatching.
//
// Walk drives a Visitor over a whole tree with an explicit stack.
//
// # Equality, Ordering, Hashing
//
// Equal is structural: arrays are order-sensitive, objects compare
// by key set. Compare is a total order consistent with Equal, which
// makes Value usable as an ordered-container key:
//
//	t := btree.NewFunc[jval.Value](jval.Compare)
//
// Hash returns a 64-bit hash consistent with Equal.
//
// # Thread Safety
//
// Values are immutable and safe to share between goroutines.
package jval
