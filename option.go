package variant

import "fmt"

// Option is the two-variant union None | Some(T). The discriminant
// is folded into the internal pointer: nil is None, so an Option is
// exactly one pointer wide. The zero value is None.
//
// Some copies its argument, so the payload cannot be mutated through
// the original after construction.
type Option[T any] struct {
	p *T
}

func Some[T any](v T) Option[T] {
	return Option[T]{p: &v}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports the discriminant. It never fails.
func (o Option[T]) IsSome() bool {
	return o.p != nil
}

// Get returns the payload in comma-ok form: the zero value and false
// for None.
func (o Option[T]) Get() (T, bool) {
	if o.p == nil {
		var zero T
		return zero, false
	}
	return *o.p, true
}

// Match dispatches on the discriminant. Exactly one handler runs.
// Both handlers are required; a nil handler panics.
func (o Option[T]) Match(none func(), some func(T)) {
	if none == nil || some == nil {
		panic("variant: Option.Match handler is nil")
	}
	if o.p == nil {
		none()
		return
	}
	some(*o.p)
}

// MatchOption dispatches on the discriminant and returns the
// handler's result. Both handlers are required; a nil handler
// panics.
func MatchOption[T, R any](o Option[T], none func() R, some func(T) R) R {
	if none == nil || some == nil {
		panic("variant: MatchOption handler is nil")
	}
	if o.p == nil {
		return none()
	}
	return some(*o.p)
}

// Equal reports whether a and b hold the same variant with equal
// payloads. Two Nones are equal; None never equals Some.
func Equal[T comparable](a, b Option[T]) bool {
	if (a.p == nil) != (b.p == nil) {
		return false
	}
	if a.p == nil {
		return true
	}
	return *a.p == *b.p
}

// EqualFunc is Equal with an explicit payload equality.
func EqualFunc[T any](a, b Option[T], eq func(a, b T) bool) bool {
	if (a.p == nil) != (b.p == nil) {
		return false
	}
	if a.p == nil {
		return true
	}
	return eq(*a.p, *b.p)
}

func (o Option[T]) String() string {
	if o.p == nil {
		return "none"
	}
	return fmt.Sprintf("some(%v)", *o.p)
}
