package match

import (
	"maps"
	"slices"

	"github.com/variantlab/variant/jval"
)

// Bindings maps capture names to the values they matched.
type Bindings map[string]jval.Value

// Value returns the value bound to name.
func (b Bindings) Value(name string) (jval.Value, bool) {
	v, ok := b[name]
	return v, ok
}

// Names returns the bound names in sorted order.
func (b Bindings) Names() []string {
	return slices.Sorted(maps.Keys(b))
}

// bind records name -> v. Rebinding an existing name succeeds only
// when the new value equals the old one.
func (b Bindings) bind(name string, v jval.Value) bool {
	if old, ok := b[name]; ok {
		return jval.Equal(old, v)
	}
	b[name] = v
	return true
}
