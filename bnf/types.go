// Package bnf implements a parser, itself built from the combinator
// package, for a small BNF dialect, and a compiler that turns the parsed
// grammar into a live combinator.Parser[pnode.Node].
package bnf

// TermRule is a single element of an alternative: either a literal string
// matched verbatim, or a reference to another rule by name.
type TermRule struct {
	ruleRef bool
	text    string
}

// LiteralTerm builds a TermRule matching the literal text s verbatim.
func LiteralTerm(s string) TermRule { return TermRule{ruleRef: false, text: s} }

// RuleRefTerm builds a TermRule referring to the rule named name.
func RuleRefTerm(name string) TermRule { return TermRule{ruleRef: true, text: name} }

// IsRuleRef reports whether t refers to another rule rather than matching a
// literal.
func (t TermRule) IsRuleRef() bool { return t.ruleRef }

// Text returns the literal text if t is a literal term, or the referenced
// rule's name if t is a rule reference.
func (t TermRule) Text() string { return t.text }

// Alternative is one '|'-separated branch of a rule: an ordered
// concatenation of terms, all of which must match in sequence.
type Alternative []TermRule

// Rule pairs a rule name with its ordered alternatives, as read from BNF
// text before being folded into a RuleMap.
type Rule struct {
	Name         string
	Alternatives []Alternative
}

// RuleMap maps a rule name to its alternatives. Insertion order carries no
// meaning; lookup is purely by name. If a grammar defines the same rule
// name more than once, the alternatives of every definition are
// concatenated, in the order they appeared, as though written as one rule
// with a longer alternation.
type RuleMap map[string][]Alternative

// EOLRule is the name of the built-in rule every RuleMap produced by
// ParseGrammar carries, matching either a line feed or a carriage
// return followed by a line feed.
const EOLRule = "EOL"

func builtinEOL() []Alternative {
	return []Alternative{
		{LiteralTerm("\n")},
		{LiteralTerm("\r\n")},
	}
}

// withBuiltins returns a copy of rm with the built-in EOL rule added,
// without overwriting a user definition of EOL if one exists.
func withBuiltins(rm RuleMap) RuleMap {
	full := make(RuleMap, len(rm)+1)
	for name, alts := range rm {
		full[name] = alts
	}
	if _, ok := full[EOLRule]; !ok {
		full[EOLRule] = builtinEOL()
	}
	return full
}
