// Package view implements the non-owning input slice that every
// combinator.Parser reads from. A View is a cheap (string, start) pair;
// slicing it never copies bytes.
package view

import (
	"strings"
	"unicode/utf8"
)

// View is an immutable, non-owning reference to a contiguous region of a
// backing string. Consuming a prefix returns a shorter View over the same
// backing storage.
type View struct {
	base  string
	start int
}

// New wraps s in a View positioned at its first byte.
func New(s string) View {
	return View{base: s, start: 0}
}

// String returns the unconsumed remainder of the view.
func (v View) String() string {
	return v.base[v.start:]
}

// Len reports the number of unconsumed bytes.
func (v View) Len() int {
	return len(v.base) - v.start
}

// IsEmpty reports whether no bytes remain.
func (v View) IsEmpty() bool {
	return v.start >= len(v.base)
}

// Head returns the first rune of the view together with a View advanced
// past it. ok is false, and rest equals v, when the view is empty.
func (v View) Head() (r rune, rest View, ok bool) {
	if v.IsEmpty() {
		return 0, v, false
	}
	r, size := utf8.DecodeRuneInString(v.base[v.start:])
	return r, View{base: v.base, start: v.start + size}, true
}

// HasPrefix reports whether the view's remainder starts with s.
func (v View) HasPrefix(s string) bool {
	return strings.HasPrefix(v.base[v.start:], s)
}

// Advance returns a View with the first n bytes of the remainder consumed.
// n must not exceed v.Len().
func (v View) Advance(n int) View {
	return View{base: v.base, start: v.start + n}
}

// IsSuffixOf reports whether v shares w's backing storage and starts no
// earlier than w does. This is the suffix property every Parser must
// satisfy.
func (v View) IsSuffixOf(w View) bool {
	return v.base == w.base && v.start >= w.start
}
