package match

import (
	"fmt"

	"github.com/variantlab/variant/debug"
	"github.com/variantlab/variant/jval"
)

// Dispatch matches v against the clauses top to bottom and runs the
// handler of the first whose pattern matches and whose guards pass.
// Exactly one handler runs. Guard and handler errors are returned.
//
// If no clause takes v, Dispatch panics: a value falling through every
// clause means the clause list does not cover the value space, and
// that is a bug in the caller, not a condition to handle. Use Check to
// verify coverage up front, or end the list with an Any() clause.
func Dispatch[R any](v jval.Value, clauses ...Clause[R]) (R, error) {
	for i := range clauses {
		c := &clauses[i]
		b := make(Bindings)
		if !c.pattern.match(v, b) {
			continue
		}
		ok, err := c.take(b)
		if err != nil {
			var zero R
			return zero, err
		}
		if !ok {
			continue
		}
		if debug.Dispatch() {
			debug.Logf("dispatch: clause %d %s takes %s value\n", i, c.pattern, v.Kind())
		}
		return c.handler(b)
	}
	panic(fmt.Sprintf("match: no clause for %s value", v.Kind()))
}

// Check conservatively verifies that the clauses cover every jval
// kind: each kind must be covered by some unguarded clause whose
// pattern matches all values of that kind. A nil result means Dispatch
// cannot panic for any input.
func Check[R any](clauses ...Clause[R]) error {
	var covered []jval.Kind
	for i := range clauses {
		c := &clauses[i]
		if c.guarded() {
			continue
		}
		for _, k := range jval.Kinds.Kinds() {
			if c.pattern.covers(k) {
				covered = append(covered, k)
			}
		}
	}
	if missing := jval.Kinds.Missing(covered...); len(missing) > 0 {
		return fmt.Errorf("match: clauses do not cover %v", missing)
	}
	return nil
}
