/*
Package combinator implements the parser-combinator algebra: a small set of
primitive parsers (Success, Failure, Item, Satisfy) and the combinators that
build larger parsers out of smaller ones (sequencing, alternation,
repetition, projection, and lazy self-reference).

A Parser[T] is a pure value: the same Parser may be applied to any number of
View inputs, concurrently, without observable state. Combinators compose by
holding copies of their sub-parsers; since a Parser is just a wrapped
function, holding one does not force anything. The one place construction
time does care about ordering is mutual and self recursion, which Lazy
exists to break. See Lazy's doc comment.
*/
package combinator

import "github.com/ava12/combgo/view"

// Parser is a pure, re-entrant function from an input view to either a
// produced value paired with the unconsumed suffix, or failure.
type Parser[T any] struct {
	run func(view.View) (T, view.View, bool)
}

// New wraps a raw parse function as a Parser. Most callers should reach for
// one of the primitives or combinators below instead of calling New
// directly.
func New[T any](run func(view.View) (T, view.View, bool)) Parser[T] {
	return Parser[T]{run: run}
}

// Parse runs p against v. ok is false on failure, in which case the
// returned value and view carry no meaning and must not be inspected.
func (p Parser[T]) Parse(v view.View) (value T, rest view.View, ok bool) {
	return p.run(v)
}

// ParseString is a convenience for running p against a plain string,
// wrapping and unwrapping the View for callers that don't need one
// otherwise.
func (p Parser[T]) ParseString(s string) (value T, rest string, ok bool) {
	value, restView, ok := p.run(view.New(s))
	return value, restView.String(), ok
}

// Success always succeeds without consuming input, yielding v.
func Success[T any](v T) Parser[T] {
	return New(func(in view.View) (T, view.View, bool) {
		return v, in, true
	})
}

// SuccessWith always succeeds without consuming input, lazily computing its
// value by calling f. Use this over Success when constructing v eagerly
// would be wasteful or has side effects that should happen per parse.
func SuccessWith[T any](f func() T) Parser[T] {
	return New(func(in view.View) (T, view.View, bool) {
		return f(), in, true
	})
}

// Failure always fails without consuming input.
func Failure[T any]() Parser[T] {
	return New(func(in view.View) (T, view.View, bool) {
		var zero T
		return zero, in, false
	})
}

// Item succeeds iff the input is nonempty, yielding the first rune and the
// one-rune-shorter suffix.
func Item() Parser[rune] {
	return New(func(in view.View) (rune, view.View, bool) {
		return in.Head()
	})
}

// Satisfy succeeds iff Item succeeds and the rune it yields satisfies pred.
func Satisfy(pred func(rune) bool) Parser[rune] {
	item := Item()
	return New(func(in view.View) (rune, view.View, bool) {
		r, rest, ok := item.Parse(in)
		if !ok || !pred(r) {
			var zero rune
			return zero, in, false
		}
		return r, rest, true
	})
}
