// Package variant provides the core value discipline shared by the
// packages in this module: closed tagged unions with
// constructor-only creation, dispatch-only reads, and fail-fast
// handling of uncovered variants.
//
// # Overview
//
// A union type in this discipline has a fixed, closed set of
// variants. Each variant has a name and a payload shape. Values are
// created only through per-variant constructors, are immutable after
// construction, and expose no per-variant field accessors: the only
// way to read payload data is to dispatch on the discriminant.
//
// The union types in this module:
//
//   - Option (this package): the two-variant None/Some union
//   - jval.Value: the six-variant JSON-like tree value
//   - btree.Subtree: the two-variant Empty/Node tree position
//   - match.Pattern: the pattern language of the dispatch engine
//   - enum.Coding: pure enumerations with integer codes
//
// # Variant Sets
//
// A Set describes a union's closed variant set: its kinds in
// declaration order and their names. Sets are built once, at package
// init, with Def, and are read-only afterwards:
//
//	var Kinds = variant.NewSet[Kind]().
//	    Def(NullKind, "null").
//	    Def(BoolKind, "bool")
//
// Name is total and safe for diagnostics; FromName is partial.
// Missing reports which kinds a handler set fails to cover, which is
// how dispatch completeness checks are built.
//
// # Dispatch
//
// Reading a union means providing a handler per variant. Exactly one
// handler runs. A missing handler for the active variant is a
// programmer error and panics immediately; no dispatch in this
// module silently falls through.
//
// # Representation
//
// Every union has a single fixed-size representation regardless of
// the active variant. Recursive payloads are held behind pointers or
// slices so the footprint stays bounded. Two-variant unions whose
// non-empty variant carries one owning pointer fold the discriminant
// into that pointer: nil is the empty variant. Option is the
// canonical example; its footprint is exactly one pointer.
//
// # Thread Safety
//
// Values are immutable and safe to share once constructed. Builders
// (Set, enum.Coding) are single-writer: build at init, read
// afterwards.
package variant
