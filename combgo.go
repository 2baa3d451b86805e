/*
Package combgo is a parser combinator library for recursive-descent
parsers over textual input, plus a BNF-to-parser compiler that turns a
grammar description into a live parser producing a labelled parse tree.

Consists of subpackages:
  - view: the non-owning input slice every parser reads from.
  - combinator: the Parser[T] abstraction, its primitives and combinators,
    and the common ready-made parsers (Char, String, Integer, Double, Bool).
  - pnode: the parse-tree data model a compiled BNF grammar produces.
  - bnf: the BNF grammar reader and the compiler from grammar to parser.
  - cmd/bnfcheck: a console utility that loads a grammar and main rule and
    reports whether a given input parses.

Typical usage is:

 1. Describe a grammar in the BNF dialect bnf.ParseGrammar reads.

 2. Compile it with bnf.Compile (or this package's FromBNF, an alias for
    the same function) to get a combinator.Parser[pnode.Node].

 3. Run the parser against an input string with Parse, or directly with the
    parser's own Parse/ParseString methods.

combgo.Parse is this package's façade: it accepts a full input string,
invokes the parser, and returns either the consumed value plus the unread
suffix, or a failure indication.
*/
package combgo

import (
	"github.com/ava12/combgo/bnf"
	"github.com/ava12/combgo/combinator"
	"github.com/ava12/combgo/pnode"
)

// Parse accepts a full input string, runs p against it, and returns either
// the consumed value and the unread suffix, or ok=false on failure.
func Parse[T any](p combinator.Parser[T], s string) (value T, rest string, ok bool) {
	return p.ParseString(s)
}

// MustParse is Parse, panicking instead of returning ok=false. It is meant
// for call sites, such as tests and examples, that already know the parse
// must succeed and would rather fail loudly than thread an unused bool
// through.
func MustParse[T any](p combinator.Parser[T], s string) (value T, rest string) {
	value, rest, ok := Parse(p, s)
	if !ok {
		panic("combgo: parse failed for input " + quoteForPanic(s))
	}
	return value, rest
}

func quoteForPanic(s string) string {
	const max = 40
	if len(s) > max {
		s = s[:max] + "..."
	}
	return "\"" + s + "\""
}

// FromBNF reads grammarText as BNF and compiles it into a parser rooted at
// mainRule. It is this package's own name for bnf.Compile.
func FromBNF(grammarText, mainRule string) (combinator.Parser[pnode.Node], error) {
	return bnf.Compile(grammarText, mainRule)
}
