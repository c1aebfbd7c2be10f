package btree

import (
	"cmp"
	"iter"

	"github.com/variantlab/variant"
)

// Tree is an unbalanced binary search tree. Elements are ordered by
// the comparison function fixed at construction; duplicates are kept
// and descend to the right. The zero-value-of-use constructor is New
// or NewFunc; a Tree must not be copied after first use.
type Tree[T any] struct {
	cmp  func(a, b T) int
	root *node[T]
	size int
}

// node is the non-empty variant of a tree position. The empty
// variant is the nil pointer; see Subtree.
type node[T any] struct {
	elem  T
	left  *node[T]
	right *node[T]
}

// New returns an empty tree ordered naturally.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by cmp, which must be a
// total order: negative for a < b, zero for equal, positive for
// a > b.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Insert adds v to the tree. Elements comparing equal to an existing
// element are kept; they descend to the right of it. The descent is
// iterative, so degenerate trees cannot overflow the call stack.
func (t *Tree[T]) Insert(v T) {
	link := &t.root
	for *link != nil {
		n := *link
		if t.cmp(v, n.elem) < 0 {
			link = &n.left
		} else {
			link = &n.right
		}
	}
	*link = &node[T]{elem: v}
	t.size++
}

// Contains reports whether some element of the tree compares equal
// to v.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root
	for n != nil {
		c := t.cmp(v, n.elem)
		if c == 0 {
			return true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Len returns the number of elements, duplicates included.
func (t *Tree[T]) Len() int {
	return t.size
}

// Min returns the smallest element, or None for an empty tree.
func (t *Tree[T]) Min() variant.Option[T] {
	if t.root == nil {
		return variant.None[T]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return variant.Some(n.elem)
}

// Max returns the largest element, or None for an empty tree.
func (t *Tree[T]) Max() variant.Option[T] {
	if t.root == nil {
		return variant.None[T]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return variant.Some(n.elem)
}

// InOrder returns the elements in ascending order as a lazy,
// restartable sequence: each range over it walks the tree afresh
// with its own iterator, and breaking out of the loop stops the
// walk.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.IterAscending()
		if !it.Valid() {
			return
		}
		if !yield(it.Value()) {
			return
		}
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// InOrderDesc is InOrder in descending order.
func (t *Tree[T]) InOrderDesc() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.IterDescending()
		if !it.Valid() {
			return
		}
		if !yield(it.Value()) {
			return
		}
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
