package combinator

import "github.com/ava12/combgo/view"

// Either runs p; if it succeeds, its result is the composite's result.
// Otherwise q is run on the original input, and its result, success or
// failure, becomes the composite's result. This is first-match semantics:
// p never spuriously consumes on failure (failure is total), so q always
// sees the input exactly as it was before p ran.
func Either[T any](p, q Parser[T]) Parser[T] {
	return New(func(in view.View) (T, view.View, bool) {
		if v, rest, ok := p.Parse(in); ok {
			return v, rest, true
		}
		return q.Parse(in)
	})
}

// Best runs every parser in ps against the original input and, among those
// that succeed, yields the one whose remaining suffix is shortest, that is,
// the one that consumed the most. Ties are broken by the earliest index in
// ps. Best fails only if every parser in ps fails. It necessarily runs
// every alternative, so it is more expensive than Either.
func Best[T any](ps ...Parser[T]) Parser[T] {
	return New(func(in view.View) (T, view.View, bool) {
		var (
			bestValue T
			bestRest  view.View
			found     bool
		)
		for _, p := range ps {
			v, rest, ok := p.Parse(in)
			if !ok {
				continue
			}
			if !found || rest.Len() < bestRest.Len() {
				bestValue, bestRest, found = v, rest, true
			}
		}
		if !found {
			var zero T
			return zero, in, false
		}
		return bestValue, bestRest, true
	})
}
