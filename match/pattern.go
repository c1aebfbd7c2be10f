package match

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/variantlab/variant"
	"github.com/variantlab/variant/debug"
	"github.com/variantlab/variant/jval"
)

type patternKind uint8

const (
	anyPattern patternKind = iota
	bindPattern
	eqPattern
	kindPattern
	arrayPattern
	objectPattern
	allOfPattern
	anyOfPattern
	notPattern
	asPattern
)

var patternKinds = variant.NewSet[patternKind]().
	Def(anyPattern, "any").
	Def(bindPattern, "bind").
	Def(eqPattern, "eq").
	Def(kindPattern, "kind").
	Def(arrayPattern, "array").
	Def(objectPattern, "object").
	Def(allOfPattern, "all-of").
	Def(anyOfPattern, "any-of").
	Def(notPattern, "not").
	Def(asPattern, "as")

// Pattern describes a shape a jval.Value may take. Patterns are built
// with the constructors in this package and are immutable; matching a
// value against one yields the bindings its Bind and As nodes capture.
type Pattern struct {
	kind    patternKind
	name    string
	lit     jval.Value
	valKind jval.Kind
	subs    []Pattern
	fields  []fieldPattern
}

type fieldPattern struct {
	key string
	pat Pattern
}

// Any matches every value and binds nothing.
func Any() Pattern {
	return Pattern{kind: anyPattern}
}

// Bind matches every value and captures it under name. Binding a name
// that is already bound in the same match only succeeds when the two
// values are equal.
func Bind(name string) Pattern {
	return Pattern{kind: bindPattern, name: name}
}

// Eq matches values structurally equal to v.
func Eq(v jval.Value) Pattern {
	return Pattern{kind: eqPattern, lit: v}
}

// Kind matches every value of kind k.
func Kind(k jval.Kind) Pattern {
	return Pattern{kind: kindPattern, valKind: k}
}

// ArrayOf matches arrays of exactly len(ps) elements, destructured
// positionally. ArrayOf() matches only the empty array.
func ArrayOf(ps ...Pattern) Pattern {
	return Pattern{kind: arrayPattern, subs: slices.Clone(ps)}
}

// ObjectWith matches objects containing at least the given fields,
// each value matching its pattern. Extra fields in the value are
// ignored. ObjectWith(nil) matches every object.
func ObjectWith(fields map[string]Pattern) Pattern {
	fps := make([]fieldPattern, 0, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		fps = append(fps, fieldPattern{key: key, pat: fields[key]})
	}
	return Pattern{kind: objectPattern, fields: fps}
}

// AllOf matches when every sub-pattern matches. AllOf() matches
// every value.
func AllOf(ps ...Pattern) Pattern {
	return Pattern{kind: allOfPattern, subs: slices.Clone(ps)}
}

// AnyOf matches when at least one sub-pattern matches, trying them in
// order and keeping the bindings of the first that does. AnyOf()
// matches nothing.
func AnyOf(ps ...Pattern) Pattern {
	return Pattern{kind: anyOfPattern, subs: slices.Clone(ps)}
}

// Not matches when p does not. Bindings made inside p are discarded.
func Not(p Pattern) Pattern {
	return Pattern{kind: notPattern, subs: []Pattern{p}}
}

// As matches when p matches and additionally captures the whole
// matched value under name.
func As(name string, p Pattern) Pattern {
	return Pattern{kind: asPattern, name: name, subs: []Pattern{p}}
}

// Match reports whether v matches p, returning the captured bindings.
// On no match the returned Bindings is nil.
func (p Pattern) Match(v jval.Value) (Bindings, bool) {
	b := make(Bindings)
	if !p.match(v, b) {
		return nil, false
	}
	return b, true
}

// match matches v against p, accumulating captures into b. On failure
// b may hold bindings from partially matched sub-patterns; callers
// discard it.
func (p *Pattern) match(v jval.Value, b Bindings) bool {
	if debug.Match() {
		debug.Logf("match %s against %s value\n", p, v.Kind())
	}
	switch p.kind {
	case anyPattern:
		return true

	case bindPattern:
		return b.bind(p.name, v)

	case eqPattern:
		return jval.Equal(v, p.lit)

	case kindPattern:
		return v.Kind() == p.valKind

	case arrayPattern:
		if v.Kind() != jval.ArrayKind {
			return false
		}
		elems := elemsOf(v)
		if len(elems) != len(p.subs) {
			return false
		}
		for i := range p.subs {
			if !p.subs[i].match(elems[i], b) {
				return false
			}
		}
		return true

	case objectPattern:
		if v.Kind() != jval.ObjectKind {
			return false
		}
		byKey := make(map[string]jval.Value)
		for _, f := range fieldsOf(v) {
			byKey[f.Key] = f.Val
		}
		for i := range p.fields {
			fv, ok := byKey[p.fields[i].key]
			if !ok {
				return false
			}
			if !p.fields[i].pat.match(fv, b) {
				return false
			}
		}
		return true

	case allOfPattern:
		for i := range p.subs {
			if !p.subs[i].match(v, b) {
				return false
			}
		}
		return true

	case anyOfPattern:
		for i := range p.subs {
			scratch := maps.Clone(b)
			if p.subs[i].match(v, scratch) {
				maps.Copy(b, scratch)
				return true
			}
		}
		return false

	case notPattern:
		scratch := maps.Clone(b)
		return !p.subs[0].match(v, scratch)

	case asPattern:
		if !p.subs[0].match(v, b) {
			return false
		}
		return b.bind(p.name, v)
	}
	panic(fmt.Sprintf("match: no case for %s pattern", patternKinds.Name(p.kind)))
}

// covers reports whether p matches every value of kind k, used by the
// conservative completeness check. Not is never considered covering.
func (p *Pattern) covers(k jval.Kind) bool {
	switch p.kind {
	case anyPattern, bindPattern:
		return true
	case kindPattern:
		return p.valKind == k
	case objectPattern:
		return k == jval.ObjectKind && len(p.fields) == 0
	case allOfPattern:
		for i := range p.subs {
			if !p.subs[i].covers(k) {
				return false
			}
		}
		return true
	case anyOfPattern:
		for i := range p.subs {
			if p.subs[i].covers(k) {
				return true
			}
		}
		return false
	case asPattern:
		return p.subs[0].covers(k)
	}
	return false
}

func (p Pattern) String() string {
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

func (p *Pattern) writeTo(sb *strings.Builder) {
	sb.WriteString(patternKinds.Name(p.kind))
	switch p.kind {
	case bindPattern:
		fmt.Fprintf(sb, "(%s)", p.name)
	case eqPattern:
		fmt.Fprintf(sb, "(%s)", p.lit)
	case kindPattern:
		fmt.Fprintf(sb, "(%s)", p.valKind)
	case arrayPattern, allOfPattern, anyOfPattern:
		sb.WriteByte('(')
		for i := range p.subs {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.subs[i].writeTo(sb)
		}
		sb.WriteByte(')')
	case objectPattern:
		sb.WriteByte('(')
		for i, f := range p.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.key)
			sb.WriteString(": ")
			f.pat.writeTo(sb)
		}
		sb.WriteByte(')')
	case notPattern:
		sb.WriteByte('(')
		p.subs[0].writeTo(sb)
		sb.WriteByte(')')
	case asPattern:
		fmt.Fprintf(sb, "(%s, ", p.name)
		p.subs[0].writeTo(sb)
		sb.WriteByte(')')
	}
}

func elemsOf(v jval.Value) []jval.Value {
	return jval.Match(v, jval.Cases[[]jval.Value]{
		Array:   func(elems []jval.Value) []jval.Value { return elems },
		Default: func(jval.Value) []jval.Value { return nil },
	})
}

func fieldsOf(v jval.Value) []jval.Field {
	return jval.Match(v, jval.Cases[[]jval.Field]{
		Object:  func(fields []jval.Field) []jval.Field { return fields },
		Default: func(jval.Value) []jval.Field { return nil },
	})
}
