package combinator

import "github.com/ava12/combgo/view"

// PlusMany runs p once, then many (a parser yielding a slice), and prepends
// p's value to many's result. It is the building block OnceOrMore and Chain
// are expressed in terms of.
func PlusMany[T any](p Parser[T], many Parser[[]T]) Parser[[]T] {
	return Bind(p, func(first T) Parser[[]T] {
		return Select(many, func(rest []T) []T {
			return append([]T{first}, rest...)
		})
	})
}

// ZeroOrMore parses p repeatedly, greedily, for as long as it succeeds, and
// collects the results into a slice. It always succeeds, with an empty
// slice if p never matches. After ZeroOrMore succeeds, p must fail on the
// returned remainder; it never stops early while p could still match.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return New(func(in view.View) ([]T, view.View, bool) {
		var vals []T
		rest := in
		for {
			v, next, ok := p.Parse(rest)
			if !ok {
				return vals, rest, true
			}
			vals = append(vals, v)
			rest = next
		}
	})
}

// OnceOrMore parses p at least once, then as many further times as
// possible, collecting every value into a slice. It fails if p does not
// match at all.
func OnceOrMore[T any](p Parser[T]) Parser[[]T] {
	return PlusMany(p, Lazy(func() Parser[[]T] { return ZeroOrMore(p) }))
}

// All runs the given parsers in order, collecting their values into a
// slice of the same length as ps. It fails as soon as any one of them
// fails.
func All[T any](ps ...Parser[T]) Parser[[]T] {
	return New(func(in view.View) ([]T, view.View, bool) {
		vals := make([]T, 0, len(ps))
		rest := in
		for _, p := range ps {
			v, next, ok := p.Parse(rest)
			if !ok {
				return nil, in, false
			}
			vals = append(vals, v)
			rest = next
		}
		return vals, rest, true
	})
}

// Chain parses p, then zero or more occurrences of (sep, p), yielding the
// sequence of p's values with separators discarded. At least one p is
// required.
func Chain[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	tail := ZeroOrMore(Both(sep, p))
	return PlusMany(p, tail)
}

// OrDefault tries p; on failure it succeeds without consuming, yielding the
// zero value of T.
func OrDefault[T any](p Parser[T]) Parser[T] {
	var zero T
	return OneOrDefault(p, zero)
}

// OneOrDefault tries p; on failure it succeeds without consuming, yielding d.
func OneOrDefault[T any](p Parser[T], d T) Parser[T] {
	return Either(p, Success(d))
}
