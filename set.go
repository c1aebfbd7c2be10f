package variant

import "fmt"

// Set is the closed variant set of a union type: the kinds in
// declaration order and their names. Build with NewSet and Def at
// package init; a Set is read-only afterwards.
type Set[K comparable] struct {
	order []K
	names map[K]string
	kinds map[string]K
}

func NewSet[K comparable]() *Set[K] {
	return &Set[K]{
		names: map[K]string{},
		kinds: map[string]K{},
	}
}

// Def adds a kind to the set and returns the set for chaining.
// Defining a kind or a name twice panics.
func (s *Set[K]) Def(kind K, name string) *Set[K] {
	if _, present := s.names[kind]; present {
		panic(fmt.Sprintf("variant: kind %v defined twice", kind))
	}
	if _, present := s.kinds[name]; present {
		panic(fmt.Sprintf("variant: name %q defined twice", name))
	}
	s.order = append(s.order, kind)
	s.names[kind] = name
	s.kinds[name] = kind
	return s
}

// Name returns the name of k, or "<unknown kind>" if k is not a
// member. It is total and safe in diagnostics.
func (s *Set[K]) Name(k K) string {
	n, ok := s.names[k]
	if ok {
		return n
	}
	return "<unknown kind>"
}

// FromName returns the kind with the given name. The second result
// is false when no kind has that name.
func (s *Set[K]) FromName(name string) (K, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

func (s *Set[K]) Has(k K) bool {
	_, ok := s.names[k]
	return ok
}

// Kinds returns the kinds in declaration order.
func (s *Set[K]) Kinds() []K {
	res := make([]K, len(s.order))
	copy(res, s.order)
	return res
}

func (s *Set[K]) Len() int {
	return len(s.order)
}

// Missing returns the kinds of the set not present in covered, in
// declaration order. An empty result means covered spans the set.
func (s *Set[K]) Missing(covered ...K) []K {
	have := make(map[K]bool, len(covered))
	for _, k := range covered {
		have[k] = true
	}
	var res []K
	for _, k := range s.order {
		if !have[k] {
			res = append(res, k)
		}
	}
	return res
}
