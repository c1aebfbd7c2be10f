package btree

// Iterator provides caller-driven iteration over a Tree[T].
// Direction is fixed at creation. The iterator keeps an explicit
// stack of pending nodes, bounded by the tree height, and never
// recurses.
type Iterator[T any] struct {
	stack     []*node[T]
	ascending bool
	current   T
	valid     bool
}

// IterAscending returns an iterator positioned at the first element
// (minimum). Next() advances through elements in ascending order.
func (t *Tree[T]) IterAscending() *Iterator[T] {
	it := &Iterator[T]{
		stack:     make([]*node[T], 0, 16),
		ascending: true,
	}
	it.push(t.root)
	it.step()
	return it
}

// IterDescending returns an iterator positioned at the last element
// (maximum). Next() advances through elements in descending order.
func (t *Tree[T]) IterDescending() *Iterator[T] {
	it := &Iterator[T]{
		stack:     make([]*node[T], 0, 16),
		ascending: false,
	}
	it.push(t.root)
	it.step()
	return it
}

// push descends from n pushing the path toward the direction's first
// element.
func (it *Iterator[T]) push(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		if it.ascending {
			n = n.left
		} else {
			n = n.right
		}
	}
}

// step pops the next element into current and stages the subtree
// that follows it.
func (it *Iterator[T]) step() bool {
	if len(it.stack) == 0 {
		it.valid = false
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.current = n.elem
	it.valid = true
	if it.ascending {
		it.push(n.right)
	} else {
		it.push(n.left)
	}
	return true
}

// Next advances the iterator to the next element in the iterator's
// direction. It returns true if a valid element was found, false if
// iteration is complete.
func (it *Iterator[T]) Next() bool {
	if !it.valid {
		return false
	}
	return it.step()
}

// Value returns the current element.
// Panics if iterator is not valid.
func (it *Iterator[T]) Value() T {
	if !it.valid {
		panic("iterator is not valid")
	}
	return it.current
}

// Valid returns whether the iterator is positioned at a valid
// element.
func (it *Iterator[T]) Valid() bool {
	return it.valid
}
