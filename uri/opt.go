package uri

import "fmt"

// Opt is an optional component value.
// It tells an absent component apart from an empty one,
// e.g. "http://h/?" has an empty query while "http://h/" has none.
type Opt[T any] struct {
	Val T
	Ok  bool
}

// Some returns a present value.
func Some[T any](v T) Opt[T] { return Opt[T]{Val: v, Ok: true} }

// None returns an absent value.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.Val, o.Ok }

// Or returns the value if present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.Ok {
		return o.Val
	}
	return def
}

func (o Opt[T]) String() string {
	if !o.Ok {
		return "<none>"
	}
	return fmt.Sprint(o.Val)
}

func optEq[T comparable](a, b Opt[T]) bool {
	return a.Ok == b.Ok && (!a.Ok || a.Val == b.Val)
}
