// Package btree provides an unbalanced generic binary search tree
// whose positions form a two-variant union: empty, or a node with an
// element and two child positions.
//
// # Overview
//
//	t := btree.New[int]()
//	for _, v := range []int{5, 3, 8, 1, 4} {
//	    t.Insert(v)
//	}
//	for v := range t.InOrder() {
//	    fmt.Println(v) // 1 3 4 5 8
//	}
//
// NewFunc takes an explicit total order, which lets any value type
// key the tree:
//
//	t := btree.NewFunc[jval.Value](jval.Compare)
//
// # Ordering and Duplicates
//
// Insert keeps duplicates: an element comparing equal to an existing
// one descends to its right, so Len grows with every Insert and
// InOrder yields equal elements adjacently in insertion order.
//
// There is no rebalancing. Height is O(n) for adversarial insertion
// orders and lookups degrade accordingly; the implementation is
// positionally safe in that case (all descents are iterative and
// iteration stacks are explicit), just slow.
//
// # Iteration
//
// InOrder and InOrderDesc return lazy, restartable sequences: each
// range builds a fresh iterator, so a consumer can stop early and
// range again from the start. IterAscending and IterDescending give
// caller-driven iterators with Valid/Value/Next.
//
// # The Empty/Node Union
//
// Tree.Root returns a Subtree, the read-only Empty/Node view of a
// position. Its discriminant is folded into a nil pointer, and its
// payload is reachable only through Subtree.Match or MatchSubtree.
// Structural algorithms over the tree shape are written against
// this view.
//
// # Thread Safety
//
// A Tree is externally synchronized: any number of concurrent
// readers, or one writer, but not both.
package btree
