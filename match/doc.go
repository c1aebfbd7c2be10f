// Package match dispatches jval values through ordered pattern
// clauses.
//
// A Pattern describes a shape: a literal, a kind, an array or object
// destructuring, or a combination. Bind and As capture the values a
// pattern touches, and clauses hand those captures to their handlers:
//
//	shape, err := match.Dispatch(v,
//	    match.On(match.Eq(jval.Null()), func(match.Bindings) (string, error) {
//	        return "nothing", nil
//	    }),
//	    match.On(match.ArrayOf(match.Bind("x"), match.Bind("y")), func(b match.Bindings) (string, error) {
//	        x, _ := b.Value("x")
//	        y, _ := b.Value("y")
//	        return fmt.Sprintf("pair of %s and %s", x.Kind(), y.Kind()), nil
//	    }),
//	    match.On(match.Any(), func(match.Bindings) (string, error) {
//	        return "something else", nil
//	    }),
//	)
//
// Clauses are tried top to bottom and the first whose pattern matches
// and whose guards pass wins; later clauses never run. A value no
// clause takes makes Dispatch panic, so a clause list is either
// exhaustive (Check verifies this conservatively) or deliberately
// ends with a catch-all.
//
// Guards refine a clause beyond its pattern's shape. When takes a Go
// function over the bindings; WhenExpr compiles an expression such as
// "code >= 400" with github.com/expr-lang/expr and evaluates it
// against the bound names.
//
// Set VARIANT_DEBUG_MATCH=1, VARIANT_DEBUG_DISPATCH=1 or
// VARIANT_DEBUG_EVAL=1 to trace matching, clause selection or guard
// evaluation on stderr.
package match
