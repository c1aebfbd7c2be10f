package btree

// Subtree is a read-only view of a tree position: the two-variant
// union of an empty position and a node carrying an element and two
// child positions. The discriminant lives in the internal pointer
// (nil is empty), so a Subtree is one pointer wide.
//
// Subtrees are views, not copies: they observe the tree they came
// from, and inserting into it while holding one is the caller's
// race to avoid.
type Subtree[T any] struct {
	n *node[T]
}

// Root returns the view of the tree's root position. For an empty
// tree it is the empty variant.
func (t *Tree[T]) Root() Subtree[T] {
	return Subtree[T]{n: t.root}
}

// IsEmpty reports the discriminant.
func (s Subtree[T]) IsEmpty() bool {
	return s.n == nil
}

// Match dispatches on the position. Exactly one handler runs: empty
// for the empty variant, node with the element and both child
// positions otherwise. Both handlers are required; a nil handler
// panics.
func (s Subtree[T]) Match(empty func(), node func(elem T, left, right Subtree[T])) {
	if empty == nil || node == nil {
		panic("btree: Subtree.Match handler is nil")
	}
	if s.n == nil {
		empty()
		return
	}
	node(s.n.elem, Subtree[T]{n: s.n.left}, Subtree[T]{n: s.n.right})
}

// MatchSubtree dispatches on the position and returns the handler's
// result. Both handlers are required; a nil handler panics.
func MatchSubtree[T, R any](s Subtree[T], empty func() R, node func(elem T, left, right Subtree[T]) R) R {
	if empty == nil || node == nil {
		panic("btree: MatchSubtree handler is nil")
	}
	if s.n == nil {
		return empty()
	}
	return node(s.n.elem, Subtree[T]{n: s.n.left}, Subtree[T]{n: s.n.right})
}
