package combinator

import "github.com/ava12/combgo/view"

// Both runs p, discards its value, then runs q on the remainder and yields
// q's value. The composite fails if either sub-parser fails.
func Both[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return New(func(in view.View) (U, view.View, bool) {
		_, rest, ok := p.Parse(in)
		if !ok {
			var zero U
			return zero, in, false
		}
		return q.Parse(rest)
	})
}

// Bind runs p to get v, computes q = f(v), then runs q on the remainder and
// yields q's value. This is the monadic bind: the most general sequencing
// combinator. Select and KeepLeft are expressed in terms of it; Both could
// be, but is written directly.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return New(func(in view.View) (U, view.View, bool) {
		v, rest, ok := p.Parse(in)
		if !ok {
			var zero U
			return zero, in, false
		}
		return f(v).Parse(rest)
	})
}

// Select projects p's value through g.
func Select[T, U any](p Parser[T], g func(T) U) Parser[U] {
	return Bind(p, func(v T) Parser[U] {
		return Success(g(v))
	})
}

// KeepLeft sequences p then q and yields p's value.
func KeepLeft[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		return Both(q, Success(v))
	})
}

// KeepRight sequences p then q and yields q's value. Equivalent to Both.
func KeepRight[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Both(p, q)
}
