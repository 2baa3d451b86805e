package bnf

import (
	"strings"
	"unicode"

	"github.com/ava12/combgo/combinator"
)

// This file is the BNF reader itself, built entirely from the combinator
// package, mirroring:
//
//	Syntax      := Rule (OptWS EOL Rule)*
//	Rule        := RuleDef OptWS Expression
//	RuleDef     := RuleName "::="
//	RuleName    := OptWS '<' [A-Za-z0-9\-]+ '>' OptWS
//	Expression  := List (OptWS '|' OptWS List)*
//	List        := Term (OptWS Term)*
//	Term        := Literal | RuleName
//	Literal     := ''' [^']* ''' | '"' [^"]* '"'
//	OptWS       := (whitespace except \n, \r)*
//	EOL         := "\n" | "\r\n"

func runesToString(rs []rune) string { return string(rs) }

// isHorizontalSpace matches OptWS's notion of whitespace: anything the
// runtime considers a space character except the line terminators.
func isHorizontalSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n' && r != '\r'
}

func optWS() combinator.Parser[string] {
	return combinator.Select(combinator.ZeroOrMore(combinator.Satisfy(isHorizontalSpace)), runesToString)
}

func eol() combinator.Parser[string] {
	return combinator.Either(combinator.String("\r\n"), combinator.String("\n"))
}

// isRuleNameChar matches the BNF dialect's rule-name character class,
// [A-Za-z0-9\-], deliberately narrower than the runtime's general notion of
// letter/digit.
func isRuleNameChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}

// ruleName matches OptWS '<' [A-Za-z0-9\-]+ '>' OptWS, yielding the bare
// name without angle brackets or surrounding whitespace.
func ruleName() combinator.Parser[string] {
	body := combinator.Select(combinator.OnceOrMore(combinator.Satisfy(isRuleNameChar)), runesToString)
	opened := combinator.KeepRight(combinator.Char('<'), body)
	closed := combinator.KeepLeft(opened, combinator.Both(combinator.Char('>'), optWS()))
	return combinator.KeepRight(optWS(), closed)
}

// quoted matches a literal delimited by q on both sides, with no escape
// mechanism: q itself cannot appear inside.
func quoted(q rune) combinator.Parser[string] {
	body := combinator.Select(combinator.ZeroOrMore(combinator.Satisfy(func(r rune) bool { return r != q })), runesToString)
	return combinator.KeepLeft(combinator.KeepRight(combinator.Char(q), body), combinator.Char(q))
}

func literalText() combinator.Parser[string] {
	return combinator.Either(quoted('\''), quoted('"'))
}

func term() combinator.Parser[TermRule] {
	return combinator.Either(
		combinator.Select(literalText(), LiteralTerm),
		combinator.Select(ruleName(), RuleRefTerm),
	)
}

// list matches Term (OptWS Term)*.
func list() combinator.Parser[Alternative] {
	rest := combinator.ZeroOrMore(combinator.KeepRight(optWS(), term()))
	return combinator.Select(combinator.PlusMany(term(), rest), func(ts []TermRule) Alternative {
		return Alternative(ts)
	})
}

// expression matches List (OptWS '|' OptWS List)*.
func expression() combinator.Parser[[]Alternative] {
	sep := combinator.KeepRight(optWS(), combinator.KeepRight(combinator.Char('|'), combinator.KeepRight(optWS(), list())))
	return combinator.PlusMany(list(), combinator.ZeroOrMore(sep))
}

// ruleDef matches RuleName "::=".
func ruleDef() combinator.Parser[string] {
	return combinator.KeepLeft(ruleName(), combinator.String("::="))
}

// ruleStmt matches RuleDef OptWS Expression.
func ruleStmt() combinator.Parser[Rule] {
	return combinator.Bind(ruleDef(), func(name string) combinator.Parser[Rule] {
		return combinator.Select(combinator.KeepRight(optWS(), expression()), func(alts []Alternative) Rule {
			return Rule{Name: name, Alternatives: alts}
		})
	})
}

// syntax matches Rule (OptWS EOL Rule)*.
func syntax() combinator.Parser[[]Rule] {
	sep := combinator.KeepRight(optWS(), combinator.KeepRight(eol(), ruleStmt()))
	return combinator.PlusMany(ruleStmt(), combinator.ZeroOrMore(sep))
}

// ParseGrammar reads BNF text into a RuleMap, folding repeated definitions
// of the same rule name together and adding the built-in EOL rule. It fails
// if the text does not match the grammar above, or if anything other than
// trailing whitespace remains unconsumed.
func ParseGrammar(text string) (RuleMap, error) {
	// Leading/trailing blank lines around the grammar text are common in
	// Go raw string literals (a backtick immediately followed by a
	// newline) and carry no meaning; Syntax itself has no notion of a
	// leading OptWS EOL, so trim before matching it rather than rejecting
	// every grammar written that way.
	rules, rest, ok := syntax().ParseString(strings.TrimSpace(text))
	if !ok {
		return nil, newError("malformed grammar")
	}
	if strings.TrimSpace(rest) != "" {
		return nil, newError("unexpected trailing text starting at %q", rest)
	}

	rm := make(RuleMap, len(rules))
	for _, r := range rules {
		rm[r.Name] = append(rm[r.Name], r.Alternatives...)
	}
	return withBuiltins(rm), nil
}
