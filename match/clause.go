package match

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/variantlab/variant/debug"
	"github.com/variantlab/variant/govalue"
)

// Guard decides whether a clause whose pattern matched should run.
// Returning an error aborts the whole dispatch.
type Guard func(Bindings) (bool, error)

// Clause pairs a pattern with the handler to run when it matches.
// Build clauses with On and refine them with When or WhenExpr.
type Clause[R any] struct {
	pattern Pattern
	guards  []Guard
	handler func(Bindings) (R, error)
}

// On builds a clause running handler when p matches. The handler
// receives the bindings captured by the pattern.
func On[R any](p Pattern, handler func(Bindings) (R, error)) Clause[R] {
	if handler == nil {
		panic("match: clause handler is nil")
	}
	return Clause[R]{pattern: p, handler: handler}
}

// When adds a guard. The clause is taken only when the pattern matches
// and every guard returns true, checked in the order added.
func (c Clause[R]) When(g Guard) Clause[R] {
	if g == nil {
		panic("match: clause guard is nil")
	}
	c.guards = append(slices.Clip(c.guards), g)
	return c
}

// WhenExpr adds a guard compiled from an expression over the bound
// names, for example "code >= 400 && code < 500". Bound values appear
// in the expression environment as plain Go data the way govalue.To
// renders them. WhenExpr panics when the expression does not compile;
// evaluation errors surface from Dispatch.
func (c Clause[R]) WhenExpr(src string) Clause[R] {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		panic(fmt.Sprintf("match: bad guard expression %q: %v", src, err))
	}
	return c.When(func(b Bindings) (bool, error) {
		env := make(map[string]any, len(b))
		for name, v := range b {
			env[name] = govalue.To(v)
		}
		if debug.Eval() {
			debug.Logf("eval guard %q with env %v\n", src, env)
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return false, fmt.Errorf("match: guard %q: %w", src, err)
		}
		ok, isBool := res.(bool)
		if !isBool {
			return false, fmt.Errorf("match: guard %q returned %T, want bool", src, res)
		}
		return ok, nil
	})
}

// guarded reports whether the clause has at least one guard.
func (c Clause[R]) guarded() bool {
	return len(c.guards) > 0
}

// take runs the clause's guards against b.
func (c Clause[R]) take(b Bindings) (bool, error) {
	for _, g := range c.guards {
		ok, err := g(b)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
