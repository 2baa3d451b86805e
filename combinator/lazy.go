package combinator

import (
	"sync"

	"github.com/ava12/combgo/view"
)

// Lazy wraps a thunk producing a Parser[T] so that self- and mutually-
// recursive grammars can be built before all of their parts exist.
//
// Go evaluates a combinator's arguments eagerly, so writing
//
//	var a = Either(b, c)
//	var b = Both(Char('x'), a)
//
// does not compile: the two initializers refer to each other, which Go
// rejects as an initialization cycle. Assigning them in order inside init
// instead makes b capture whatever a held at that moment: its zero value,
// since a is assigned after b. Lazy breaks that by deferring the lookup:
//
//	var a, b Parser[rune]
//
//	func init() {
//		b = Both(Char('x'), Lazy(func() Parser[rune] { return a }))
//		a = Either(b, c)
//	}
//
// The closure captures the variable a, not its value, so Force reads
// whatever a holds the first time the parser is actually run, by which
// point package initialization has completed.
//
// The thunk runs at most once, even under concurrent first use: Force is
// safe to call from multiple goroutines racing to parse for the first time.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	l := &lazyCell[T]{thunk: thunk}
	return New(func(in view.View) (T, view.View, bool) {
		return l.Force().Parse(in)
	})
}

// lazyCell is a one-shot cell: Uninitialised -> (on first Force) ->
// Initialised, terminal. sync.Once guarantees the thunk fires exactly once
// and every caller observes the same resulting Parser.
type lazyCell[T any] struct {
	once   sync.Once
	thunk  func() Parser[T]
	parser Parser[T]
}

// Force evaluates the thunk on first call and returns its result on every
// call thereafter, including concurrent ones.
func (l *lazyCell[T]) Force() Parser[T] {
	l.once.Do(func() {
		l.parser = l.thunk()
		l.thunk = nil
	})
	return l.parser
}
