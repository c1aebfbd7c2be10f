// Package enum provides integer-coded pure enumerations: closed
// unions whose variants carry no payload, with a total conversion to
// integer codes and a partial conversion back.
//
// Codes are assigned in declaration order starting at zero. AddCode
// assigns an explicit code and later Adds continue from it:
//
//	type status int
//	const (
//	    ok status = iota
//	    notModified
//	    notFound
//	)
//
//	var statuses = enum.NewCoding[status]().
//	    AddCode(ok, "ok", 200).
//	    AddCode(notModified, "not-modified", 304).
//	    AddCode(notFound, "not-found", 404)
//
// Code is total over members; FromCode is partial and returns a
// variant.Option. Build a Coding at package init; it is read-only
// afterwards.
package enum

import (
	"fmt"

	"github.com/variantlab/variant"
)

// Coding assigns integer codes to the variants of an enumeration.
type Coding[E comparable] struct {
	set    *variant.Set[E]
	codes  map[E]int
	byCode map[int]E
	next   int
}

func NewCoding[E comparable]() *Coding[E] {
	return &Coding[E]{
		set:    variant.NewSet[E](),
		codes:  map[E]int{},
		byCode: map[int]E{},
	}
}

// Add defines the next variant with the next code and returns the
// Coding for chaining. Duplicate variants and names panic.
func (c *Coding[E]) Add(v E, name string) *Coding[E] {
	return c.AddCode(v, name, c.next)
}

// AddCode defines a variant with an explicit code; subsequent Adds
// continue from code+1. Duplicate variants, names and codes panic.
func (c *Coding[E]) AddCode(v E, name string, code int) *Coding[E] {
	if prev, present := c.byCode[code]; present {
		panic(fmt.Sprintf("enum: code %d assigned twice (first to %v)", code, prev))
	}
	c.set.Def(v, name)
	c.codes[v] = code
	c.byCode[code] = v
	c.next = code + 1
	return c
}

// Code returns the code of v. Every member has a code, so the
// conversion is total; a non-member panics.
func (c *Coding[E]) Code(v E) int {
	code, ok := c.codes[v]
	if !ok {
		panic(fmt.Sprintf("enum: %v is not a member", v))
	}
	return code
}

// FromCode returns the variant assigned the given code, or None when
// the code is unassigned.
func (c *Coding[E]) FromCode(code int) variant.Option[E] {
	v, ok := c.byCode[code]
	if !ok {
		return variant.None[E]()
	}
	return variant.Some(v)
}

// Name returns the name of v, or "<unknown kind>" for a non-member.
func (c *Coding[E]) Name(v E) string {
	return c.set.Name(v)
}

// FromName returns the variant with the given name, or None.
func (c *Coding[E]) FromName(name string) variant.Option[E] {
	v, ok := c.set.FromName(name)
	if !ok {
		return variant.None[E]()
	}
	return variant.Some(v)
}

// Values returns the members in declaration order.
func (c *Coding[E]) Values() []E {
	return c.set.Kinds()
}

func (c *Coding[E]) Has(v E) bool {
	return c.set.Has(v)
}

func (c *Coding[E]) Len() int {
	return c.set.Len()
}
