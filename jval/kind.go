package jval

import (
	"fmt"

	"github.com/variantlab/variant"
)

// Kind is the discriminant of a Value. The declaration order of the
// kinds is also their comparison rank (see Compare).
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

// Kinds is the closed variant set of Value.
var Kinds = variant.NewSet[Kind]().
	Def(NullKind, "null").
	Def(BoolKind, "bool").
	Def(NumberKind, "number").
	Def(StringKind, "string").
	Def(ArrayKind, "array").
	Def(ObjectKind, "object")

func (k Kind) String() string {
	return Kinds.Name(k)
}

// IsLeaf reports whether values of this kind have no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := Kinds.FromName(string(d))
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
