package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/variantlab/variant/btree"
)

type treeFrame[T any] struct {
	sub   btree.Subtree[T]
	depth int
}

// nodeView is what a subtree dispatch reports back to the renderer.
type nodeView[T any] struct {
	empty bool
	leaf  bool
	elem  string
	left  btree.Subtree[T]
	right btree.Subtree[T]
}

// FdumpTree writes the structure of t to w, one node per line,
// children indented under their parent with the left child first.
// Empty subtrees print only when the sibling is not empty, so the
// shape stays unambiguous:
//
//	node 5
//	  node 3
//	    node 1
//	    node 4
//	  node 8
//
// Elements render with fmt %v.
func FdumpTree[T any](w io.Writer, t *btree.Tree[T], opts ...Option) error {
	st := newState(w, opts)
	stack := []treeFrame[T]{{sub: t.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		view := btree.MatchSubtree(f.sub,
			func() nodeView[T] {
				return nodeView[T]{empty: true}
			},
			func(elem T, left, right btree.Subtree[T]) nodeView[T] {
				return nodeView[T]{
					leaf:  left.IsEmpty() && right.IsEmpty(),
					elem:  fmt.Sprintf("%v", elem),
					left:  left,
					right: right,
				}
			})

		indent := strings.Repeat(st.indent, f.depth)
		if view.empty {
			if _, err := io.WriteString(w, indent+st.colors.kw("empty")+"\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, indent+st.colors.kw("node")+" "+view.elem+"\n"); err != nil {
			return err
		}
		if view.leaf {
			continue
		}
		// Right first so the left child pops first.
		stack = append(stack,
			treeFrame[T]{sub: view.right, depth: f.depth + 1},
			treeFrame[T]{sub: view.left, depth: f.depth + 1},
		)
	}
	return nil
}

// SdumpTree returns the rendering of t as a string. Output is plain
// unless Colors(true) is given.
func SdumpTree[T any](t *btree.Tree[T], opts ...Option) string {
	var sb strings.Builder
	FdumpTree(&sb, t, opts...)
	return sb.String()
}
